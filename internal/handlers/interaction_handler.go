package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/service"
	slackcmd "github.com/hamzakaisi/newera-gang-checker/internal/slack"
	"github.com/slack-go/slack"
)

// HandleInteraction processes panel button presses. Buttons share the
// semantics of the matching slash commands; replies go out as ephemeral
// messages in the panel channel and the panel itself is refreshed in place
// by the service after every mutation.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

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

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions || len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	userID := callback.User.ID
	channelID := callback.Channel.ID

	switch action.ActionID {
	case slackcmd.ActionDone:
		h.buttonDone(channelID, userID)
	case slackcmd.ActionStatus:
		h.buttonStatus(channelID, userID)
	case slackcmd.ActionRemaining:
		h.buttonRemaining(channelID, userID)
	case slackcmd.ActionPing:
		h.buttonPing(channelID, userID)
	case slackcmd.ActionHelp:
		h.reply(channelID, userID, slackcmd.GetHelpText())
	default:
		log.Printf("Rejected unknown interaction action: %s", action.ActionID)
		h.reply(channelID, userID, "❌ Unknown action")
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) buttonDone(channelID, userID string) {
	alreadyDone, err := h.checklistService.MarkDone(userID)
	if errors.Is(err, service.ErrNotEligible) {
		h.reply(channelID, userID, "❌ You don't hold the gang role, so there is nothing to check in for")
		return
	}
	if err != nil {
		h.reply(channelID, userID, "❌ Failed to record your check-in")
		return
	}

	if alreadyDone {
		h.reply(channelID, userID, "👍 You were already marked done for today.")
		return
	}

	h.reply(channelID, userID, "✅ You're marked done for today!")
}

func (h *SlackHandler) buttonStatus(channelID, userID string) {
	summary, err := h.checklistService.Summarize()
	if err != nil {
		h.reply(channelID, userID, "❌ Failed to compute status")
		return
	}

	h.reply(channelID, userID, slackcmd.FormatStatus(summary))
}

func (h *SlackHandler) buttonRemaining(channelID, userID string) {
	summary, err := h.checklistService.Summarize()
	if err != nil {
		h.reply(channelID, userID, "❌ Failed to compute remaining members")
		return
	}

	h.reply(channelID, userID, slackcmd.FormatRemaining(summary))
}

func (h *SlackHandler) buttonPing(channelID, userID string) {
	if rejection := h.requireAdmin(userID); rejection != nil {
		h.reply(channelID, userID, rejection.Text)
		return
	}

	err := h.checklistService.PingRemaining(channelID)
	if errors.Is(err, service.ErrNoRoleConfigured) {
		h.reply(channelID, userID, "❌ No gang role configured, nobody to ping")
		return
	}
	if err != nil {
		h.reply(channelID, userID, "❌ Failed to ping remaining members")
	}
}

// reply sends an ephemeral message; delivery failures are logged and
// dropped, a lost reply never fails the interaction.
func (h *SlackHandler) reply(channelID, userID, text string) {
	if _, err := h.slackClient.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Failed to send ephemeral reply: %v", err)
	}
}
