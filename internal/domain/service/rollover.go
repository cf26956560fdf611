package service

import (
	"log"
	"time"

	"github.com/hamzakaisi/newera-gang-checker/internal/domain/contract"
)

// Rollover watches the clock so the checklist resets at midnight even when
// nobody is talking to the bot. Every handler also checks lazily; the
// watcher only covers quiet periods.
type Rollover struct {
	checklist contract.ChecklistService
	interval  time.Duration
	stopChan  chan struct{}
	running   bool
}

func newRollover(checklist contract.ChecklistService) *Rollover {
	return &Rollover{
		checklist: checklist,
		interval:  time.Minute,
		stopChan:  make(chan struct{}),
		running:   false,
	}
}

func (r *Rollover) Start() {
	if r.running {
		return
	}
	r.running = true
	log.Println("Rollover watcher starting...")
	go r.loop()
}

func (r *Rollover) Stop() {
	if !r.running {
		return
	}
	log.Println("Rollover watcher stopping...")
	close(r.stopChan)
	r.running = false
}

func (r *Rollover) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.checklist.EnsureToday(); err != nil {
				log.Printf("Rollover check failed: %v", err)
			}
		case <-r.stopChan:
			return
		}
	}
}
