package clock

import (
	"log"
	"time"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain"
)

// Resolver converts wall-clock time into a calendar date in the fixed
// checklist zone. It deliberately ignores the process's local time zone.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

func New() *Resolver {
	loc, err := time.LoadLocation(domain.ChecklistTimezone)
	if err != nil {
		// Without the zone every date computation is wrong, so don't run.
		log.Fatalf("Failed to load time zone %s: %v", domain.ChecklistTimezone, err)
	}

	return &Resolver{
		loc: loc,
		now: time.Now,
	}
}

// Today returns the current calendar date in the checklist zone.
func (r *Resolver) Today() string {
	return r.now().In(r.loc).Format(domain.DateLayout)
}
