package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdDone          CommandType = "done"
	CmdStatus        CommandType = "status"
	CmdRemaining     CommandType = "remaining"
	CmdSetGangRole   CommandType = "setgangrole"
	CmdForceReset    CommandType = "force-reset"
	CmdPingRemaining CommandType = "ping-remaining"
	CmdPanel         CommandType = "panel"
	CmdHelp          CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "done":
		cmd.Type = CmdDone
	case "status":
		cmd.Type = CmdStatus
	case "remaining", "left":
		cmd.Type = CmdRemaining
	case "setgangrole":
		cmd.Type = CmdSetGangRole
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "force-reset", "reset":
		cmd.Type = CmdForceReset
	case "ping-remaining", "ping":
		cmd.Type = CmdPingRemaining
	case "panel":
		cmd.Type = CmdPanel
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseUserGroupMention extracts the user group ID from a Slack mention like
// <!subteam^S0GANG|@gang>. A bare ID is passed through unchanged.
func ParseUserGroupMention(arg string) string {
	id := strings.TrimSpace(arg)
	id = strings.TrimPrefix(id, "<!subteam^")
	id = strings.TrimSuffix(id, ">")
	if idx := strings.Index(id, "|"); idx >= 0 {
		id = id[:idx]
	}
	return id
}

func GetHelpText() string {
	return `*Available commands:*

*Check-in:*
• ` + "`/gang done`" + ` - Mark yourself done for today
• ` + "`/gang status`" + ` - Show done/remaining counts
• ` + "`/gang remaining`" + ` - List everyone still missing

*Admin:*
• ` + "`/gang setgangrole @group`" + ` - Set the user group that must check in
• ` + "`/gang force-reset`" + ` - Clear today's check-ins
• ` + "`/gang ping-remaining`" + ` - Ping everyone still missing
• ` + "`/gang panel`" + ` - Post the interactive status panel

The checklist resets automatically at midnight (US Eastern).`
}
