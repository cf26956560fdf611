package domain

// ChecklistTimezone is the zone all calendar dates are computed in. The
// daily reset happens at midnight in this zone regardless of the process's
// local time zone.
const ChecklistTimezone = "America/New_York"

// DateLayout is the persisted calendar-date format.
const DateLayout = "2006-01-02"

// StatusRemainingLimit caps how many remaining names the status reply shows.
const StatusRemainingLimit = 20
