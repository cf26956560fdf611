package contract

import "github.com/slack-go/slack"

// SlackAPI defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackAPI interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// GetUsersInfo retrieves information for a batch of users
	GetUsersInfo(userIDs ...string) (*[]slack.User, error)

	// GetUserGroupMembers lists the user IDs holding a user group
	GetUserGroupMembers(groupID string) ([]string, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// PostEphemeral sends a message only the given user can see
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)

	// UpdateMessage edits a previously posted message in place
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
}
