package slack

import (
	"fmt"
	"testing"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStatus(t *testing.T) {
	t.Run("Should show raw count when no role is configured", func(t *testing.T) {
		got := FormatStatus(entity.Summary{DoneCount: 3})

		assert.Contains(t, got, "*Done today:* 3")
		assert.Contains(t, got, "No gang role configured")
	})

	t.Run("Should show counts and remaining names", func(t *testing.T) {
		got := FormatStatus(entity.Summary{
			RoleConfigured: true,
			Total:          3,
			DoneCount:      1,
			RemainingCount: 2,
			Remaining: []entity.Member{
				{ID: "UBO", DisplayName: "Bo"},
				{ID: "UZED", DisplayName: "Zed"},
			},
		})

		assert.Contains(t, got, "*Done today:* 1/3")
		assert.Contains(t, got, "*Remaining:* 2")
		assert.Contains(t, got, "• Bo")
		assert.Contains(t, got, "• Zed")
	})

	t.Run("Should celebrate when everyone is done", func(t *testing.T) {
		got := FormatStatus(entity.Summary{RoleConfigured: true, Total: 2, DoneCount: 2})

		assert.Contains(t, got, "Everyone is done for today!")
	})

	t.Run("Should truncate past the name limit", func(t *testing.T) {
		remaining := make([]entity.Member, 23)
		for i := range remaining {
			remaining[i] = entity.Member{
				ID:          fmt.Sprintf("U%03d", i),
				DisplayName: fmt.Sprintf("member-%03d", i),
			}
		}

		got := FormatStatus(entity.Summary{
			RoleConfigured: true,
			Total:          23,
			RemainingCount: 23,
			Remaining:      remaining,
		})

		assert.Contains(t, got, "member-019")
		assert.NotContains(t, got, "member-020")
		assert.Contains(t, got, "…and 3 more")
	})
}

func TestFormatRemaining(t *testing.T) {
	t.Run("Should explain when no role is configured", func(t *testing.T) {
		got := FormatRemaining(entity.Summary{DoneCount: 2})

		assert.Contains(t, got, "No gang role configured")
	})

	t.Run("Should list every remaining member", func(t *testing.T) {
		got := FormatRemaining(entity.Summary{
			RoleConfigured: true,
			Total:          3,
			DoneCount:      1,
			RemainingCount: 2,
			Remaining: []entity.Member{
				{ID: "UBO", DisplayName: "Bo"},
				{ID: "UZED", DisplayName: "Zed"},
			},
		})

		assert.Contains(t, got, "*Still missing (2):*")
		assert.Contains(t, got, "• Bo")
		assert.Contains(t, got, "• Zed")
	})

	t.Run("Should celebrate when everyone is done", func(t *testing.T) {
		got := FormatRemaining(entity.Summary{RoleConfigured: true, Total: 2, DoneCount: 2})

		assert.Equal(t, "🎉 Everyone is done for today!", got)
	})
}

func TestBuildPanelBlocks(t *testing.T) {
	blocks := BuildPanelBlocks("2024-06-15", entity.Summary{
		RoleConfigured: true,
		Total:          3,
		DoneCount:      1,
		RemainingCount: 2,
		Remaining: []entity.Member{
			{ID: "UBO", DisplayName: "Bo"},
			{ID: "UZED", DisplayName: "Zed"},
		},
	})

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*slack.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "2024-06-15")

	status, ok := blocks[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, status.Text.Text, "*Done today:* 1/3")

	actions, ok := blocks[2].(*slack.ActionBlock)
	require.True(t, ok)
	require.Len(t, actions.Elements.ElementSet, 5)

	gotActionIDs := make([]string, 0, 5)
	for _, element := range actions.Elements.ElementSet {
		button, ok := element.(*slack.ButtonBlockElement)
		require.True(t, ok)
		gotActionIDs = append(gotActionIDs, button.ActionID)
	}

	assert.Equal(t, []string{ActionDone, ActionStatus, ActionRemaining, ActionPing, ActionHelp}, gotActionIDs)
}
