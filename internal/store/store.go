package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/contract"
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/entity"
)

// Store persists the checklist as a single JSON document at a fixed path.
// The whole document is rewritten on every save; concurrent saves are
// last-write-wins.
type Store struct {
	path  string
	clock contract.Clock
}

func New(path string, clock contract.Clock) *Store {
	return &Store{
		path:  path,
		clock: clock,
	}
}

// Load reads the persisted document. Any failure (absent file, unreadable
// file, malformed JSON) silently yields a fresh default document for today;
// data loss on corruption is the accepted recovery strategy.
func (s *Store) Load() *entity.Checklist {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read state file %s, starting fresh: %v", s.path, err)
		}
		return entity.NewChecklist(s.clock.Today())
	}

	checklist := &entity.Checklist{}
	if err := json.Unmarshal(data, checklist); err != nil {
		log.Printf("Failed to parse state file %s, starting fresh: %v", s.path, err)
		return entity.NewChecklist(s.clock.Today())
	}

	if checklist.Completed == nil {
		checklist.Completed = []string{}
	}
	if checklist.CurrentDate == "" {
		checklist.CurrentDate = s.clock.Today()
	}

	return checklist
}

// Save overwrites the backing document. The file is indented so it stays
// human-inspectable.
func (s *Store) Save(checklist *entity.Checklist) error {
	data, err := json.MarshalIndent(checklist, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal checklist: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
