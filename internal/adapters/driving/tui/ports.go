// Package tui provides the interactive terminal chat for the tutor.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the chat.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tutor answers questions and updates the profile.
	Tutor driving.TutorService

	// Profile renders the student context shown in the header.
	Profile driving.ProfileService
}
