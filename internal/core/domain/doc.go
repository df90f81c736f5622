// Package domain contains the core business entities of the tutor:
// knowledge sections, the learner profile, and intent extraction results.
// Domain types carry their own invariants (history bound, weak/completed
// exclusivity) and have no dependencies on adapters or infrastructure.
package domain
