package entity

// Member is one eligible user as resolved from the live roster.
type Member struct {
	ID          string
	DisplayName string
}

// Summary is the derived done/remaining view. It is computed fresh from the
// live roster on every request and never persisted.
//
// When RoleConfigured is false, eligibility is indeterminate: Total and
// RemainingCount carry no meaning, Remaining is empty and DoneCount is the
// raw size of the completed set.
type Summary struct {
	RoleConfigured bool
	Total          int
	DoneCount      int
	RemainingCount int
	Remaining      []Member
}

// EveryoneDone reports whether a determinate summary has nobody left.
func (s Summary) EveryoneDone() bool {
	return s.RoleConfigured && s.RemainingCount == 0
}
