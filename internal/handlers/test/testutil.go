package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hamzakaisi/newera-gang-checker/internal/handlers"
	"github.com/hamzakaisi/newera-gang-checker/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	TeamID        = "T123456789"
)

type ServiceMocks struct {
	ChecklistServiceMock *mocks.MockChecklistService
	SlackAPIMock         *mocks.MockSlackAPI
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ChecklistServiceMock: mocks.NewMockChecklistService(ctrl),
		SlackAPIMock:         mocks.NewMockSlackAPI(ctrl),
	}

	handler = handlers.New(m.SlackAPIMock, m.ChecklistServiceMock, SigningSecret, TeamID)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, teamID string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"test-channel"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, SigningSecret, body)

	return req
}

// CreateInteractionRequest creates a properly signed block-actions callback
// for a single panel button press.
func CreateInteractionRequest(t *testing.T, actionID, channelID, userID string) *http.Request {
	t.Helper()

	payload := map[string]any{
		"type": "block_actions",
		"user": map[string]any{"id": userID},
		"team": map[string]any{"id": TeamID},
		"channel": map[string]any{
			"id":   channelID,
			"name": "test-channel",
		},
		"actions": []map[string]any{
			{
				"type":      "button",
				"action_id": actionID,
				"block_id":  "gang_panel",
				"action_ts": "1718000000.000100",
			},
		},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	body := url.Values{"payload": {string(raw)}}.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/interactions", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, SigningSecret, body)

	return req
}

func signRequest(req *http.Request, signingSecret, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
