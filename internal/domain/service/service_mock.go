package service

import (
	"path/filepath"
	"testing"

	"github.com/hamzakaisi/newera-gang-checker/internal/store"
	"github.com/hamzakaisi/newera-gang-checker/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockSlackAPI *mocks.MockSlackAPI
	mockClock    *mocks.MockClock
}

// newChecklistTestMock builds a checklist service over a real file store in
// a per-test temp dir, with the gateway and clock mocked.
func newChecklistTestMock(t *testing.T) (m allMocks, s *checklistService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSlackAPI: mocks.NewMockSlackAPI(ctrl),
		mockClock:    mocks.NewMockClock(ctrl),
	}

	checklistStore := store.New(filepath.Join(t.TempDir(), "checklist.json"), m.mockClock)

	s = newChecklist(checklistStore, m.mockSlackAPI, m.mockClock)
	require.NotNil(t, s)

	return
}
