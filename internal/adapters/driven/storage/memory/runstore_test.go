package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

func testReport(id string, started time.Time) domain.Report {
	return domain.Report{
		ID:          id,
		Root:        "/tmp/project",
		Language:    "golang",
		StartedAt:   started,
		ModuleCount: 3,
		EdgeCount:   2,
		Violations: []domain.Violation{
			{FromModule: "domain/a", FromLayer: domain.LayerDomain,
				ToModule: "presentation/b", ToLayer: domain.LayerPresentation},
		},
	}
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	report := testReport("run-1", time.Now())
	require.NoError(t, store.SaveRun(ctx, report))

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, report.Root, got.Root)
	assert.Len(t, got.Violations, 1)
}

func TestRunStore_SaveEmptyID(t *testing.T) {
	store := NewRunStore()

	err := store.SaveRun(context.Background(), domain.Report{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_GetMissing(t *testing.T) {
	store := NewRunStore()

	_, err := store.GetRun(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.SaveRun(ctx, testReport("run-old", base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveRun(ctx, testReport("run-new", base)))
	require.NoError(t, store.SaveRun(ctx, testReport("run-mid", base.Add(-time.Hour))))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-mid", runs[1].ID)
	assert.Equal(t, "run-old", runs[2].ID)

	// Summaries omit the violation list but keep the count.
	assert.Nil(t, runs[0].Violations)
	assert.Equal(t, 1, runs[0].ViolationCount)
}

func TestRunStore_ListLimit(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveRun(ctx,
			testReport(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunStore_Prune(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveRun(ctx,
			testReport(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))))
	}

	require.NoError(t, store.Prune(ctx, 2))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "e", runs[0].ID)
	assert.Equal(t, "d", runs[1].ID)
}

func TestRunStore_PruneNegativeKeep(t *testing.T) {
	store := NewRunStore()

	err := store.Prune(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
