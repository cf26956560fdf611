package service

import (
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/contract"
)

type Services struct {
	Checklist contract.ChecklistService
	Rollover  *Rollover
}

func New(store contract.ChecklistStore, slackClient contract.SlackAPI, clock contract.Clock) *Services {
	checklist := newChecklist(store, slackClient, clock)

	return &Services{
		Checklist: checklist,
		Rollover:  newRollover(checklist),
	}
}
