package slack

import (
	"fmt"
	"strings"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain"
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Action IDs for the panel buttons.
const (
	ActionDone      = "gang_done"
	ActionStatus    = "gang_status"
	ActionRemaining = "gang_remaining"
	ActionPing      = "gang_ping"
	ActionHelp      = "gang_help"
)

// FormatStatus renders the status reply: counts plus the first few
// remaining names.
func FormatStatus(summary entity.Summary) string {
	if !summary.RoleConfigured {
		return fmt.Sprintf("✅ *Done today:* %d\n_No gang role configured — use `/gang setgangrole @group` to track who's remaining._",
			summary.DoneCount)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ *Done today:* %d/%d\n", summary.DoneCount, summary.Total)
	fmt.Fprintf(&b, "⏳ *Remaining:* %d", summary.RemainingCount)

	if summary.EveryoneDone() {
		b.WriteString("\n🎉 Everyone is done for today!")
		return b.String()
	}

	b.WriteString("\n")
	for i, member := range summary.Remaining {
		if i >= domain.StatusRemainingLimit {
			fmt.Fprintf(&b, "…and %d more", summary.RemainingCount-domain.StatusRemainingLimit)
			break
		}
		fmt.Fprintf(&b, "• %s\n", member.DisplayName)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatRemaining renders the full list of members still missing.
func FormatRemaining(summary entity.Summary) string {
	if !summary.RoleConfigured {
		return "_No gang role configured — use `/gang setgangrole @group` to track who's remaining._"
	}

	if summary.EveryoneDone() {
		return "🎉 Everyone is done for today!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Still missing (%d):*\n", summary.RemainingCount)
	for _, member := range summary.Remaining {
		fmt.Fprintf(&b, "• %s\n", member.DisplayName)
	}

	return strings.TrimRight(b.String(), "\n")
}

// BuildPanelBlocks renders the live status panel: a summary section plus
// one button per command.
func BuildPanelBlocks(date string, summary entity.Summary) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("📋 Daily Gang Check-in — %s", date), true, false))

	status := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, FormatStatus(summary), false, false), nil, nil)

	buttons := slack.NewActionBlock("gang_panel",
		slack.NewButtonBlockElement(ActionDone, "done",
			slack.NewTextBlockObject(slack.PlainTextType, "✅ Mark done", true, false)).WithStyle(slack.StylePrimary),
		slack.NewButtonBlockElement(ActionStatus, "status",
			slack.NewTextBlockObject(slack.PlainTextType, "📊 Status", true, false)),
		slack.NewButtonBlockElement(ActionRemaining, "remaining",
			slack.NewTextBlockObject(slack.PlainTextType, "⏳ Who's left", true, false)),
		slack.NewButtonBlockElement(ActionPing, "ping",
			slack.NewTextBlockObject(slack.PlainTextType, "📣 Ping remaining", true, false)),
		slack.NewButtonBlockElement(ActionHelp, "help",
			slack.NewTextBlockObject(slack.PlainTextType, "❓ Help", true, false)),
	)

	return []slack.Block{header, status, buttons}
}
