package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/repository"
)

type settingsService struct {
	slots    repository.SlotRepo
	observer Observer

	mu       sync.Mutex
	settings domain.AppSettings
}

// NewSettingsService creates a SettingsService backed by the given
// slot store. Call Load before first use.
func NewSettingsService(slots repository.SlotRepo, observer Observer) SettingsService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &settingsService{
		slots:    slots,
		observer: observer,
		settings: domain.DefaultSettings(),
	}
}

func (s *settingsService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = domain.DefaultSettings()

	value, ok, err := s.slots.Get(ctx, repository.SlotSettings)
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotSettings, Op: "read", Err: err.Error()})
		return
	}
	if !ok {
		return
	}

	// Fields absent from the payload keep their defaults; fields
	// present keep their stored value even when empty, so a cleared
	// menu URL stays cleared across restarts.
	var stored struct {
		CafeName *string `json:"cafeName"`
		MenuURL  *string `json:"googleSheetURL"`
	}
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotSettings, Op: "read", Err: err.Error()})
		return
	}
	if stored.CafeName != nil {
		s.settings.CafeName = *stored.CafeName
	}
	if stored.MenuURL != nil {
		s.settings.MenuURL = *stored.MenuURL
	}
}

func (s *settingsService) Get() domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *settingsService) Update(ctx context.Context, partial domain.AppSettings) domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.settings.Merge(partial)
	s.persistLocked(ctx)
	return s.settings
}

func (s *settingsService) ClearMenuURL(ctx context.Context) domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.MenuURL = ""
	s.persistLocked(ctx)
	return s.settings
}

func (s *settingsService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.settings)
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotSettings, Op: "write", Err: err.Error()})
		return
	}
	if err := s.slots.Set(ctx, repository.SlotSettings, string(data)); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotSettings, Op: "write", Err: err.Error()})
	}
}
