// Package file provides JSON file-backed store implementations. Each store
// owns one file, reads it once at open, and rewrites the whole file on every
// mutation. Writes go through an atomic rename so a crash mid-write never
// leaves a corrupt store behind.
package file
