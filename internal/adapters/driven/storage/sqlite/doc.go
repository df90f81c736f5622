// Package sqlite provides a SQLite-backed alternative to the JSON file
// stores. Every mutation commits before returning, keeping the write-through
// persistence contract of the driven store ports.
package sqlite
