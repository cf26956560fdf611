package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/contract"
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
	slackmsg "github.com/hamzakaisi/newera-gang-checker/internal/slack"
	"github.com/slack-go/slack"
)

// ErrNotEligible is returned by MarkDone when a gang role is configured and
// the user does not hold it.
var ErrNotEligible = errors.New("user does not hold the required gang role")

// ErrNoRoleConfigured is returned by PingRemaining when no gang role is set,
// so there is no roster to ping.
var ErrNoRoleConfigured = errors.New("no gang role configured")

type checklistService struct {
	store       contract.ChecklistStore
	slackClient contract.SlackAPI
	clock       contract.Clock
}

func newChecklist(store contract.ChecklistStore, slackClient contract.SlackAPI, clock contract.Clock) *checklistService {
	return &checklistService{
		store:       store,
		slackClient: slackClient,
		clock:       clock,
	}
}

func (s *checklistService) EnsureToday() error {
	checklist := s.store.Load()
	today := s.clock.Today()

	if checklist.CurrentDate == today {
		return nil
	}

	checklist.ResetFor(today)
	if err := s.store.Save(checklist); err != nil {
		return fmt.Errorf("failed to persist rollover: %w", err)
	}

	log.Printf("Checklist rolled over to %s", today)
	s.refreshPanelBestEffort(checklist)

	return nil
}

func (s *checklistService) MarkDone(userID string) (bool, error) {
	if err := s.EnsureToday(); err != nil {
		return false, err
	}

	checklist := s.store.Load()

	if checklist.RequiredRoleID != "" {
		members, ok := s.resolveRole(checklist.RequiredRoleID)
		if ok && !hasMember(members, userID) {
			return false, ErrNotEligible
		}
		// Role not resolvable: fail soft, everyone is eligible.
	}

	if !checklist.MarkDone(userID) {
		return true, nil
	}

	if err := s.store.Save(checklist); err != nil {
		return false, fmt.Errorf("failed to persist check-in: %w", err)
	}

	s.refreshPanelBestEffort(checklist)

	return false, nil
}

func (s *checklistService) Summarize() (entity.Summary, error) {
	if err := s.EnsureToday(); err != nil {
		return entity.Summary{}, err
	}

	return s.summarize(s.store.Load()), nil
}

func (s *checklistService) SetRequiredRole(roleID string) error {
	if err := s.EnsureToday(); err != nil {
		return err
	}

	checklist := s.store.Load()
	checklist.RequiredRoleID = roleID

	if err := s.store.Save(checklist); err != nil {
		return fmt.Errorf("failed to persist gang role: %w", err)
	}

	s.refreshPanelBestEffort(checklist)

	return nil
}

func (s *checklistService) ForceReset() error {
	if err := s.EnsureToday(); err != nil {
		return err
	}

	checklist := s.store.Load()
	// Not a rollover: the date stays, only the completed set is cleared.
	checklist.Completed = []string{}

	if err := s.store.Save(checklist); err != nil {
		return fmt.Errorf("failed to persist reset: %w", err)
	}

	s.refreshPanelBestEffort(checklist)

	return nil
}

func (s *checklistService) PingRemaining(channelID string) error {
	if err := s.EnsureToday(); err != nil {
		return err
	}

	summary := s.summarize(s.store.Load())
	if !summary.RoleConfigured {
		return ErrNoRoleConfigured
	}

	var text string
	if summary.EveryoneDone() {
		text = "🎉 Everyone is done for today!"
	} else {
		mentions := make([]string, 0, len(summary.Remaining))
		for _, member := range summary.Remaining {
			mentions = append(mentions, fmt.Sprintf("<@%s>", member.ID))
		}
		text = fmt.Sprintf("⏰ Still waiting on your check-in: %s", strings.Join(mentions, ", "))
	}

	if _, _, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to ping remaining members: %w", err)
	}

	return nil
}

func (s *checklistService) CreatePanel(channelID string) error {
	if err := s.EnsureToday(); err != nil {
		return err
	}

	checklist := s.store.Load()
	summary := s.summarize(checklist)

	_, timestamp, err := s.slackClient.PostMessage(channelID,
		slack.MsgOptionBlocks(slackmsg.BuildPanelBlocks(checklist.CurrentDate, summary)...))
	if err != nil {
		return fmt.Errorf("failed to post panel: %w", err)
	}

	checklist.SetPanel(channelID, timestamp)
	if err := s.store.Save(checklist); err != nil {
		return fmt.Errorf("failed to persist panel location: %w", err)
	}

	return nil
}

func (s *checklistService) RefreshPanel() error {
	checklist := s.store.Load()
	if !checklist.HasPanel() {
		return nil
	}

	summary := s.summarize(checklist)
	_, _, _, err := s.slackClient.UpdateMessage(checklist.PanelChannelID, checklist.PanelMessageID,
		slack.MsgOptionBlocks(slackmsg.BuildPanelBlocks(checklist.CurrentDate, summary)...))
	if err != nil {
		return fmt.Errorf("failed to update panel: %w", err)
	}

	return nil
}

// refreshPanelBestEffort keeps the live panel in sync after a mutation.
// Failures here never fail the mutation that triggered them.
func (s *checklistService) refreshPanelBestEffort(checklist *entity.Checklist) {
	if !checklist.HasPanel() {
		return
	}

	summary := s.summarize(checklist)
	_, _, _, err := s.slackClient.UpdateMessage(checklist.PanelChannelID, checklist.PanelMessageID,
		slack.MsgOptionBlocks(slackmsg.BuildPanelBlocks(checklist.CurrentDate, summary)...))
	if err != nil {
		log.Printf("Failed to refresh panel message: %v", err)
	}
}

// summarize computes the done/remaining view for the given document. With no
// resolvable role the view is indeterminate: DoneCount is the raw size of
// the completed set, uncapped.
func (s *checklistService) summarize(checklist *entity.Checklist) entity.Summary {
	if checklist.RequiredRoleID == "" {
		return entity.Summary{DoneCount: len(checklist.Completed)}
	}

	members, ok := s.resolveRole(checklist.RequiredRoleID)
	if !ok {
		return entity.Summary{DoneCount: len(checklist.Completed)}
	}

	remaining := []entity.Member{}
	doneCount := 0
	for _, member := range members {
		if checklist.IsDone(member.ID) {
			doneCount++
		} else {
			remaining = append(remaining, member)
		}
	}

	return entity.Summary{
		RoleConfigured: true,
		Total:          len(members),
		DoneCount:      doneCount,
		RemainingCount: len(remaining),
		Remaining:      remaining,
	}
}

// resolveRole fetches the role's current member set from Slack, sorted by
// display name (case-insensitive, ties keep roster order). ok is false when
// the role cannot be resolved, e.g. it was deleted.
func (s *checklistService) resolveRole(roleID string) ([]entity.Member, bool) {
	userIDs, err := s.slackClient.GetUserGroupMembers(roleID)
	if err != nil {
		log.Printf("Failed to resolve gang role %s: %v", roleID, err)
		return nil, false
	}

	members := make([]entity.Member, 0, len(userIDs))
	if len(userIDs) > 0 {
		users, err := s.slackClient.GetUsersInfo(userIDs...)
		if err != nil {
			// Names are cosmetic; fall back to raw IDs rather than degrading
			// the whole view.
			log.Printf("Failed to fetch member profiles: %v", err)
			for _, id := range userIDs {
				members = append(members, entity.Member{ID: id, DisplayName: id})
			}
		} else {
			for _, user := range *users {
				members = append(members, entity.Member{ID: user.ID, DisplayName: displayName(user)})
			}
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		return strings.ToLower(members[i].DisplayName) < strings.ToLower(members[j].DisplayName)
	})

	return members, true
}

func displayName(user slack.User) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	return user.Name
}

func hasMember(members []entity.Member, userID string) bool {
	for _, member := range members {
		if member.ID == userID {
			return true
		}
	}
	return false
}
