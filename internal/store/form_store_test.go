package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/internal/model"
)

func newTestStore(t *testing.T) (*FormStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "form.db")
	s, err := NewFormStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestLoad_Empty(t *testing.T) {
	s, _ := newTestStore(t)
	form, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RepurposeRequest{}, form)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	want := model.RepurposeRequest{
		SourceContent:  "line one\nline two \"quoted\"",
		TargetAudience: "Series A SaaS Founders",
		BrandVoice:     "Direct, skeptical, operator",
		PrimaryGoal:    "Authority & Leads",
	}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// 重新打开数据库后仍能读到
	require.NoError(t, s.Close())
	reopened, err := NewFormStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_Overwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, model.RepurposeRequest{SourceContent: "first", BrandVoice: "old"}))
	require.NoError(t, s.Save(ctx, model.RepurposeRequest{SourceContent: "second"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.RepurposeRequest{SourceContent: "second"}, got)
}

func TestLoad_UnparsableFallsBack(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.put(ctx, "{not json"))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.RepurposeRequest{}, got)
}
