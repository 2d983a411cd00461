package usecase

import (
	"context"
	"strings"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// JournalUsecase tracks whether today's journal is done. An entry existing
// under today's date means done.
type JournalUsecase struct {
	store domain.RecordStore
	clock domain.Clock
	log   walog.Logger
}

func NewJournalUsecase(store domain.RecordStore, clock domain.Clock, log walog.Logger) *JournalUsecase {
	return &JournalUsecase{store: store, clock: clock, log: log}
}

// Today returns today's entry, or nil when there is none. An unreadable entry
// counts as none.
func (uc *JournalUsecase) Today(ctx context.Context) *domain.JournalEntry {
	var entry domain.JournalEntry
	ok, err := uc.store.Get(ctx, domain.RecordJournal, dateutil.FormatDate(uc.clock.Now()), &entry)
	if err != nil {
		uc.log.Warnf("Failed to read journal: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &entry
}

// Toggle marks today's journal done or not done and returns the new state.
func (uc *JournalUsecase) Toggle(ctx context.Context) (bool, error) {
	if entry := uc.Today(ctx); entry != nil {
		if err := uc.store.Remove(ctx, domain.RecordJournal, entry.Date); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := uc.Save(ctx, ""); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes today's entry. An empty note stores the plain completion text.
func (uc *JournalUsecase) Save(ctx context.Context, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		note = "Journal completed"
	}
	entry := domain.JournalEntry{
		Date:         dateutil.FormatDate(uc.clock.Now()),
		WhatWentWell: note,
		Gratitude:    []string{},
	}
	return uc.store.Put(ctx, domain.RecordJournal, entry.Date, entry)
}
