package store

import (
	"os"
	"testing"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_NoFile(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	checklist := s.Load()

	require.NotNil(t, checklist)
	assert.Equal(t, "2024-06-15", checklist.CurrentDate)
	assert.Empty(t, checklist.Completed)
	assert.NotNil(t, checklist.Completed)
	assert.Empty(t, checklist.RequiredRoleID)
	assert.False(t, checklist.HasPanel())
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	checklist := entity.NewChecklist("2024-06-15")
	checklist.MarkDone("U111")
	checklist.MarkDone("U222")
	checklist.RequiredRoleID = "S0GANG"
	checklist.SetPanel("C123", "1718000000.000100")

	require.NoError(t, s.Save(checklist))

	loaded := s.Load()
	assert.Equal(t, "2024-06-15", loaded.CurrentDate)
	assert.Equal(t, []string{"U111", "U222"}, loaded.Completed)
	assert.Equal(t, "S0GANG", loaded.RequiredRoleID)
	assert.Equal(t, "C123", loaded.PanelChannelID)
	assert.Equal(t, "1718000000.000100", loaded.PanelMessageID)
}

func TestStore_Load_CorruptFile(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0644))

	checklist := s.Load()

	assert.Equal(t, "2024-06-15", checklist.CurrentDate)
	assert.Empty(t, checklist.Completed)
}

func TestStore_Load_FileDeletedExternally(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	checklist := entity.NewChecklist("2024-06-14")
	checklist.MarkDone("U111")
	require.NoError(t, s.Save(checklist))

	require.NoError(t, os.Remove(s.path))

	loaded := s.Load()
	assert.Equal(t, "2024-06-15", loaded.CurrentDate)
	assert.Empty(t, loaded.Completed)
}

func TestStore_Load_MissingFields(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	require.NoError(t, os.WriteFile(s.path, []byte(`{}`), 0644))

	checklist := s.Load()

	assert.Equal(t, "2024-06-15", checklist.CurrentDate)
	assert.NotNil(t, checklist.Completed)
}

func TestStore_Save_Overwrites(t *testing.T) {
	s := SetupTestStore(t, "2024-06-15")

	first := entity.NewChecklist("2024-06-15")
	first.MarkDone("U111")
	require.NoError(t, s.Save(first))

	second := entity.NewChecklist("2024-06-15")
	require.NoError(t, s.Save(second))

	loaded := s.Load()
	assert.Empty(t, loaded.Completed)
}
