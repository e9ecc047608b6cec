package tracker

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDB resets the singleton so each test gets a fresh database under
// a temp HOME.
func resetDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	db = nil
	dbErr = nil
	dbOnce = sync.Once{}
	return filepath.Join(dir, ".find-jobs-ai", "tracker.db")
}

func TestAdd_Basic(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	result, err := Add(ctx, AddInput{
		Title:      "Senior Backend Engineer",
		Company:    "Nimbus Stack",
		Location:   "Remote",
		Salary:     "$140k–$180k",
		MatchScore: 72,
		Status:     "applied",
		Notes:      "Looks promising",
	})
	require.NoError(t, err)
	assert.Positive(t, result.ID)
	assert.NotEmpty(t, result.Message)
}

func TestAdd_Defaults(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	result, err := Add(ctx, AddInput{Title: "Engineer", Company: "Driftline"})
	require.NoError(t, err)

	list, err := List(ctx, ListInput{Status: "saved"})
	require.NoError(t, err)
	require.Len(t, list.Postings, 1)
	assert.Equal(t, result.ID, list.Postings[0].ID)
	assert.Equal(t, StatusSaved, list.Postings[0].Status)
	assert.Zero(t, list.Postings[0].MatchScore)
}

func TestAdd_Validation(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input AddInput
	}{
		{"missing company", AddInput{Title: "Engineer"}},
		{"missing title", AddInput{Company: "Driftline"}},
		{"invalid status", AddInput{Title: "Engineer", Company: "Driftline", Status: "pondering"}},
		{"score too high", AddInput{Title: "Engineer", Company: "Driftline", MatchScore: 101}},
		{"score negative", AddInput{Title: "Engineer", Company: "Driftline", MatchScore: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(ctx, tt.input)
			assert.Error(t, err)
		})
	}
}

func TestList_FilterAndTotal(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	for _, status := range []string{"saved", "applied", "applied", "rejected"} {
		_, err := Add(ctx, AddInput{Title: "Engineer", Company: "Tesselate", Status: status})
		require.NoError(t, err)
	}

	all, err := List(ctx, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.Len(t, all.Postings, 4)

	applied, err := List(ctx, ListInput{Status: "applied"})
	require.NoError(t, err)
	assert.Equal(t, 2, applied.Total)
	assert.Len(t, applied.Postings, 2)

	_, err = List(ctx, ListInput{Status: "daydreaming"})
	assert.Error(t, err)
}

func TestList_Empty(t *testing.T) {
	resetDB(t)

	result, err := List(context.Background(), ListInput{})
	require.NoError(t, err)
	assert.NotNil(t, result.Postings)
	assert.Empty(t, result.Postings)
	assert.Zero(t, result.Total)
}

func TestUpdate(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	added, err := Add(ctx, AddInput{Title: "Engineer", Company: "Northbeam"})
	require.NoError(t, err)

	_, err = Update(ctx, UpdateInput{ID: added.ID, Status: "interview", Notes: "phone screen Friday"})
	require.NoError(t, err)

	list, err := List(ctx, ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Postings, 1)
	assert.Equal(t, StatusInterview, list.Postings[0].Status)
	assert.Equal(t, "phone screen Friday", list.Postings[0].Notes)

	_, err = Update(ctx, UpdateInput{ID: 0, Status: "applied"})
	assert.Error(t, err)

	_, err = Update(ctx, UpdateInput{ID: added.ID})
	assert.Error(t, err)

	_, err = Update(ctx, UpdateInput{ID: added.ID, Status: "limbo"})
	assert.Error(t, err)
}
