package contract

import (
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
)

// ChecklistService defines the contract for the daily check-in operations.
type ChecklistService interface {
	// EnsureToday applies the rollover rule: if the stored date is not
	// today, the completed set is cleared and the new date persisted.
	// Idempotent on an already-current document.
	EnsureToday() error

	// MarkDone records the user as done for today. alreadyDone is true if
	// the user had checked in before this call. ErrNotEligible is returned
	// when a role is configured and the user does not hold it.
	MarkDone(userID string) (alreadyDone bool, err error)

	// Summarize computes the done/remaining view from the live roster.
	Summarize() (entity.Summary, error)

	// SetRequiredRole sets the user group that gates eligibility.
	SetRequiredRole(roleID string) error

	// ForceReset clears today's completed set without touching the date.
	ForceReset() error

	// PingRemaining posts an in-channel message mentioning every remaining
	// member.
	PingRemaining(channelID string) error

	// CreatePanel posts the interactive status panel to the channel and
	// records its location for later refreshes.
	CreatePanel(channelID string) error

	// RefreshPanel updates the recorded panel message in place. No-op when
	// no panel was posted.
	RefreshPanel() error
}
