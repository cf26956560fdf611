package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/contract"
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/service"
	slackcmd "github.com/hamzakaisi/newera-gang-checker/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient      contract.SlackAPI
	checklistService contract.ChecklistService
	signingSecret    string
	teamID           string
}

func New(slackClient contract.SlackAPI, checklistService contract.ChecklistService, signingSecret, teamID string) *SlackHandler {
	return &SlackHandler{
		slackClient:      slackClient,
		checklistService: checklistService,
		signingSecret:    signingSecret,
		teamID:           teamID,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if h.teamID != "" && s.TeamID != h.teamID {
		h.respond(w, h.createErrorResponse("This bot is not configured for this workspace"))
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.respond(w, h.handleCommand(cmd, &s))
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdDone:
		return h.handleDone(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdRemaining:
		return h.handleRemaining()
	case slackcmd.CmdSetGangRole:
		return h.handleSetGangRole(cmd, slashCmd)
	case slackcmd.CmdForceReset:
		return h.handleForceReset(slashCmd)
	case slackcmd.CmdPingRemaining:
		return h.handlePingRemaining(slashCmd)
	case slackcmd.CmdPanel:
		return h.handlePanel(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleDone(slashCmd *slack.SlashCommand) *slack.Msg {
	alreadyDone, err := h.checklistService.MarkDone(slashCmd.UserID)
	if errors.Is(err, service.ErrNotEligible) {
		return h.createErrorResponse("You don't hold the gang role, so there is nothing to check in for")
	}
	if err != nil {
		return h.createErrorResponse("Failed to record your check-in")
	}

	if alreadyDone {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "👍 You were already marked done for today.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ You're marked done for today!",
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	summary, err := h.checklistService.Summarize()
	if err != nil {
		return h.createErrorResponse("Failed to compute status")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatStatus(summary),
	}
}

func (h *SlackHandler) handleRemaining() *slack.Msg {
	summary, err := h.checklistService.Summarize()
	if err != nil {
		return h.createErrorResponse("Failed to compute remaining members")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatRemaining(summary),
	}
}

func (h *SlackHandler) handleSetGangRole(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if rejection := h.requireAdmin(slashCmd.UserID); rejection != nil {
		return rejection
	}

	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user group: `/gang setgangrole @group`")
	}

	roleID := slackcmd.ParseUserGroupMention(cmd.Args[0])
	if roleID == "" {
		return h.createErrorResponse("That does not look like a user group")
	}

	if err := h.checklistService.SetRequiredRole(roleID); err != nil {
		return h.createErrorResponse("Failed to save the gang role")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Gang role set to <!subteam^%s>. Members of this group are now expected to check in daily.", roleID),
	}
}

func (h *SlackHandler) handleForceReset(slashCmd *slack.SlashCommand) *slack.Msg {
	if rejection := h.requireAdmin(slashCmd.UserID); rejection != nil {
		return rejection
	}

	if err := h.checklistService.ForceReset(); err != nil {
		return h.createErrorResponse("Failed to reset today's check-ins")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Today's check-ins have been cleared.",
	}
}

func (h *SlackHandler) handlePingRemaining(slashCmd *slack.SlashCommand) *slack.Msg {
	if rejection := h.requireAdmin(slashCmd.UserID); rejection != nil {
		return rejection
	}

	err := h.checklistService.PingRemaining(slashCmd.ChannelID)
	if errors.Is(err, service.ErrNoRoleConfigured) {
		return h.createErrorResponse("No gang role configured, nobody to ping. Use `/gang setgangrole @group` first")
	}
	if err != nil {
		return h.createErrorResponse("Failed to ping remaining members")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "📣 Ping sent.",
	}
}

func (h *SlackHandler) handlePanel(slashCmd *slack.SlashCommand) *slack.Msg {
	if rejection := h.requireAdmin(slashCmd.UserID); rejection != nil {
		return rejection
	}

	if err := h.checklistService.CreatePanel(slashCmd.ChannelID); err != nil {
		return h.createErrorResponse("Failed to post the panel")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Panel posted. It will refresh itself as people check in.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// requireAdmin returns a rejection reply unless the user is a workspace
// admin or owner. An unverifiable principal is not authorized.
func (h *SlackHandler) requireAdmin(userID string) *slack.Msg {
	user, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		return h.createErrorResponse("Could not verify your permissions")
	}

	if !user.IsAdmin && !user.IsOwner {
		return h.createErrorResponse("This command requires workspace admin")
	}

	return nil
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
