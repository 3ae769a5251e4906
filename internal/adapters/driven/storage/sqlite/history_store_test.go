package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

var baseTime = time.Date(2025, 6, 1, 9, 30, 0, 123456789, time.UTC)

func testRecord(id string, at time.Time) domain.GenerationRecord {
	return domain.GenerationRecord{
		ID:       id,
		Database: "main-question-database.json",
		Mode:     domain.ModeSingle,
		Criteria: domain.Criteria{
			Difficulty:    "easy",
			DataStructure: "array",
			Pattern:       "two_pointers",
			Count:         2,
		},
		Format:    domain.FormatJSON,
		Output:    "out/questions.json",
		Titles:    []string{"Two Sum", "Valid Anagram"},
		CreatedAt: at,
	}
}

func TestHistoryStore_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	hs := setupTestStore(t).HistoryStore()

	want := testRecord("s1", baseTime)
	require.NoError(t, hs.Record(ctx, want))

	got, err := hs.Get(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Database, got.Database)
	assert.Equal(t, want.Mode, got.Mode)
	assert.Equal(t, want.Criteria, got.Criteria)
	assert.Equal(t, want.Format, got.Format)
	assert.Equal(t, want.Output, got.Output)
	assert.Equal(t, want.Titles, got.Titles)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestHistoryStore_OptionalFields(t *testing.T) {
	ctx := context.Background()
	hs := setupTestStore(t).HistoryStore()

	require.NoError(t, hs.Record(ctx, domain.GenerationRecord{
		ID:       "bare",
		Database: "db.json",
		Mode:     domain.ModeProgression,
		Format:   domain.FormatMarkdown,
	}))

	got, err := hs.Get(ctx, "bare")
	require.NoError(t, err)
	assert.Empty(t, got.Criteria.Difficulty)
	assert.Empty(t, got.Output)
	assert.Equal(t, []string{}, got.Titles)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	hs := setupTestStore(t).HistoryStore()

	_, err := hs.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_Record_Invalid(t *testing.T) {
	ctx := context.Background()
	hs := setupTestStore(t).HistoryStore()

	assert.ErrorIs(t, hs.Record(ctx, domain.GenerationRecord{}), domain.ErrInvalidInput)

	require.NoError(t, hs.Record(ctx, testRecord("dup", baseTime)))
	assert.Error(t, hs.Record(ctx, testRecord("dup", baseTime)))
}

func TestHistoryStore_List(t *testing.T) {
	ctx := context.Background()
	hs := setupTestStore(t).HistoryStore()

	require.NoError(t, hs.Record(ctx, testRecord("old", baseTime.Add(-time.Hour))))
	require.NoError(t, hs.Record(ctx, testRecord("new", baseTime.Add(time.Hour))))
	require.NoError(t, hs.Record(ctx, testRecord("mid-a", baseTime)))
	require.NoError(t, hs.Record(ctx, testRecord("mid-b", baseTime)))

	all, err := hs.List(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"new", "mid-b", "mid-a", "old"}, ids)

	limited, err := hs.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
	assert.Equal(t, "mid-b", limited[1].ID)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	records, err := setupTestStore(t).HistoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	hs := setupTestStore(t).HistoryStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, hs.Record(ctx, testRecord(fmt.Sprintf("s%d", i), baseTime)))
	}
	require.NoError(t, hs.Clear(ctx))

	records, err := hs.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.HistoryStore().Record(ctx, testRecord("kept", baseTime)))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.HistoryStore().Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, []string{"Two Sum", "Valid Anagram"}, got.Titles)
}
