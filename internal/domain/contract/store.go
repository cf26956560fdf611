package contract

import (
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
)

// ChecklistStore defines the contract for the persisted checklist document.
type ChecklistStore interface {
	// Load reads the persisted document. It never fails: an absent or
	// corrupt file yields a fresh default document for today.
	Load() *entity.Checklist

	// Save overwrites the whole backing document. Last write wins.
	Save(checklist *entity.Checklist) error
}

// Clock resolves the current calendar date in the configured zone.
type Clock interface {
	Today() string
}
