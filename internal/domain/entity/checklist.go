package entity

// Checklist is the single persisted document: who has checked in today,
// which user group gates eligibility, and where the live panel message
// lives (if one was posted).
type Checklist struct {
	CurrentDate    string   `json:"currentDate"`
	Completed      []string `json:"completed"`
	RequiredRoleID string   `json:"requiredRoleId,omitempty"`
	PanelChannelID string   `json:"panelChannelId,omitempty"`
	PanelMessageID string   `json:"panelMessageId,omitempty"`
}

// NewChecklist returns a fresh document for the given date.
func NewChecklist(date string) *Checklist {
	return &Checklist{
		CurrentDate: date,
		Completed:   []string{},
	}
}

// IsDone reports whether the user already checked in today.
func (c *Checklist) IsDone(userID string) bool {
	for _, id := range c.Completed {
		if id == userID {
			return true
		}
	}
	return false
}

// MarkDone adds the user to today's completed set. Returns false if the
// user was already in it.
func (c *Checklist) MarkDone(userID string) bool {
	if c.IsDone(userID) {
		return false
	}
	c.Completed = append(c.Completed, userID)
	return true
}

// ResetFor starts a new day: clears the completed set and moves the
// document to the given date.
func (c *Checklist) ResetFor(date string) {
	c.CurrentDate = date
	c.Completed = []string{}
}

// HasPanel reports whether a panel message location is recorded.
func (c *Checklist) HasPanel() bool {
	return c.PanelChannelID != "" && c.PanelMessageID != ""
}

// SetPanel records the location of the posted panel message.
func (c *Checklist) SetPanel(channelID, messageTS string) {
	c.PanelChannelID = channelID
	c.PanelMessageID = messageTS
}
