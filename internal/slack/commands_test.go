package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name: "Should parse done",
			text: "done",
			want: CmdDone,
		},
		{
			name: "Should parse status",
			text: "status",
			want: CmdStatus,
		},
		{
			name: "Should parse remaining",
			text: "remaining",
			want: CmdRemaining,
		},
		{
			name: "Should accept left as alias for remaining",
			text: "left",
			want: CmdRemaining,
		},
		{
			name:     "Should parse setgangrole with argument",
			text:     "setgangrole <!subteam^S0GANG|@gang>",
			want:     CmdSetGangRole,
			wantArgs: []string{"<!subteam^S0GANG|@gang>"},
		},
		{
			name: "Should parse force-reset",
			text: "force-reset",
			want: CmdForceReset,
		},
		{
			name: "Should parse ping-remaining",
			text: "ping-remaining",
			want: CmdPingRemaining,
		},
		{
			name: "Should parse panel",
			text: "panel",
			want: CmdPanel,
		},
		{
			name: "Should default empty text to help",
			text: "   ",
			want: CmdHelp,
		},
		{
			name:    "Should reject unknown command",
			text:    "banana",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown command")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseUserGroupMention(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "Should extract ID from full mention",
			arg:  "<!subteam^S0GANG|@gang>",
			want: "S0GANG",
		},
		{
			name: "Should extract ID from mention without handle",
			arg:  "<!subteam^S0GANG>",
			want: "S0GANG",
		},
		{
			name: "Should pass through a bare ID",
			arg:  "S0GANG",
			want: "S0GANG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUserGroupMention(tt.arg))
		})
	}
}
