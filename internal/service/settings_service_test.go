package service

import (
	"context"
	"testing"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/repository"
	"github.com/ardi-the-water/denj/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_LoadWithoutPersistedValue(t *testing.T) {
	svc := NewSettingsService(testutil.NewTestSlots(t), nil)
	svc.Load(context.Background())

	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestSettings_UpdatePersistsAndReturnsMerged(t *testing.T) {
	slots := testutil.NewTestSlots(t)
	ctx := context.Background()

	svc := NewSettingsService(slots, nil)
	svc.Load(ctx)

	updated := svc.Update(ctx, domain.AppSettings{CafeName: "کافه دنج"})
	assert.Equal(t, "کافه دنج", updated.CafeName)
	assert.Equal(t, domain.DefaultSettings().MenuURL, updated.MenuURL)

	// A fresh service sees the persisted value merged over defaults.
	svc2 := NewSettingsService(slots, nil)
	svc2.Load(ctx)
	assert.Equal(t, "کافه دنج", svc2.Get().CafeName)
	assert.Equal(t, domain.DefaultSettings().MenuURL, svc2.Get().MenuURL)
}

func TestSettings_PartialPersistedPayloadKeepsDefaults(t *testing.T) {
	slots := testutil.NewTestSlots(t)
	ctx := context.Background()
	require.NoError(t, slots.Set(ctx, repository.SlotSettings, `{"cafeName":"X"}`))

	svc := NewSettingsService(slots, nil)
	svc.Load(ctx)

	assert.Equal(t, "X", svc.Get().CafeName)
	assert.Equal(t, domain.DefaultSettings().MenuURL, svc.Get().MenuURL)
}

func TestSettings_ClearMenuURL(t *testing.T) {
	slots := testutil.NewTestSlots(t)
	ctx := context.Background()

	svc := NewSettingsService(slots, nil)
	svc.Load(ctx)

	cleared := svc.ClearMenuURL(ctx)
	assert.Empty(t, cleared.MenuURL)
	assert.Equal(t, domain.DefaultSettings().CafeName, cleared.CafeName)

	// The cleared URL survives a restart; the default must not
	// resurface just because the stored value is empty.
	svc2 := NewSettingsService(slots, nil)
	svc2.Load(ctx)
	assert.Empty(t, svc2.Get().MenuURL)
}

func TestSettings_CorruptPayloadFallsBackToDefaults(t *testing.T) {
	slots := testutil.NewTestSlots(t)
	ctx := context.Background()
	require.NoError(t, slots.Set(ctx, repository.SlotSettings, `not json`))

	svc := NewSettingsService(slots, nil)
	svc.Load(ctx)

	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestSettings_ReadFailureFallsBackToDefaults(t *testing.T) {
	slots := testutil.NewFailingSlots()
	slots.FailReads = true

	svc := NewSettingsService(slots, nil)
	svc.Load(context.Background())

	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestSettings_WriteFailureKeepsInMemoryState(t *testing.T) {
	slots := testutil.NewFailingSlots()
	slots.FailWrites = true

	svc := NewSettingsService(slots, nil)
	svc.Load(context.Background())

	updated := svc.Update(context.Background(), domain.AppSettings{CafeName: "Y"})
	assert.Equal(t, "Y", updated.CafeName)
	assert.Equal(t, "Y", svc.Get().CafeName, "in-memory state stays authoritative")
}
