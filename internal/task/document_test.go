package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildDocumentEmpty(t *testing.T) {
	t.Parallel()

	_, _, err := BuildDocument(nil)
	require.ErrorIs(t, err, ErrNoTasks)

	_, _, err = BuildDocument([]Task{})
	require.ErrorIs(t, err, ErrNoTasks)
}

func TestBuildDocumentCounts(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{ID: "1", Subtasks: []Task{{ID: "1.1"}, {ID: "1.2"}}},
		{ID: "2"},
		{ID: "3", Subtasks: []Task{{ID: "3.1"}}},
	}

	_, stats, err := BuildDocument(tasks)
	require.NoError(t, err)
	require.Equal(t, Stats{Tasks: 3, Subtasks: 3}, stats)
}

func TestBuildDocumentIdempotent(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{ID: "1", Title: "A", Status: "done", Priority: "high"},
		{ID: "2", Title: "B", Subtasks: []Task{{ID: "2.1", Title: "C"}}},
	}

	first, _, err := BuildDocument(tasks)
	require.NoError(t, err)

	second, _, err := BuildDocument(tasks)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBuildDocumentGolden(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{
			ID:           "1",
			Title:        "A",
			Status:       "done",
			Priority:     "high",
			Description:  "d",
			Dependencies: []ID{"9"},
		},
		{
			ID:          "2",
			Title:       "B",
			Status:      "pending",
			Description: "e",
			Subtasks: []Task{
				{
					ID:           "2.1",
					Title:        "C",
					Status:       "pending",
					Description:  "f",
					Dependencies: []ID{"1"},
				},
			},
		},
	}

	doc, stats, err := BuildDocument(tasks)
	require.NoError(t, err)
	require.Equal(t, Stats{Tasks: 2, Subtasks: 1}, stats)

	want := "## Task 1: A\n" +
		"\n" +
		"**Priority/Status:** high priority - done\n" +
		"\n" +
		"**Description:** d\n" +
		"\n" +
		"## Task 2: B\n" +
		"\n" +
		"**Status:** pending\n" +
		"\n" +
		"**Description:** e\n" +
		"\n" +
		"**Subtasks (1):**\n" +
		"\n" +
		"### Subtask 2.1: C\n" +
		"\n" +
		"**Status:** pending\n" +
		"\n" +
		"**Description:** f\n" +
		"\n" +
		"**Dependencies:** 1\n"

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDocumentEmptySubtasksSameAsAbsent(t *testing.T) {
	t.Parallel()

	withEmpty, _, err := BuildDocument([]Task{{ID: "1", Title: "A", Subtasks: []Task{}}})
	require.NoError(t, err)

	without, _, err := BuildDocument([]Task{{ID: "1", Title: "A"}})
	require.NoError(t, err)

	require.Equal(t, without, withEmpty)
	require.NotContains(t, withEmpty, "**Subtasks")
}

func TestWriteDocumentOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.md")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))
	require.NoError(t, WriteDocument(path, "fresh\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "fresh\n", string(content))
}

func TestWriteDocumentFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.md")

	err := WriteDocument(path, "doc\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot write document")
}
