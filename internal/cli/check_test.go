package cli

import (
	"testing"
)

func TestCheckReportsCountsWithoutWriting(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTasks(`{"tasks":[{"id":1,"title":"A","subtasks":[{"id":"1.1"},{"id":"1.2"}]},{"id":2,"title":"B"}]}`)

	stdout := r.MustRun("check")

	AssertContains(t, stdout, "2 tasks, 2 subtasks")

	if r.FileExists(DocumentPath) {
		t.Error("check must not write the document")
	}
}

func TestCheckEmptyTasksFails(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTasks(`{"tasks":[]}`)

	stderr := r.MustFail("check")

	AssertContains(t, stderr, "no tasks found")
}

func TestCheckMissingInput(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("check")

	AssertContains(t, stderr, "tasks file not found")
}

func TestCheckWarnsOnDeepNesting(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTasks(`{"tasks":[{"id":1,"title":"A","subtasks":[{"id":"1.1","subtasks":[{"id":"1.1.1"}]}]}]}`)

	stdout, stderr, code := r.Run("check")

	if code != 1 {
		t.Errorf("exit code = %d, want 1 (warnings force non-zero exit)", code)
	}

	AssertContains(t, stderr, "warning:")
	AssertContains(t, stderr, "subtask 1.1 of task 1 has nested subtasks")

	// Counts are still reported alongside the warning.
	AssertContains(t, stdout, "1 tasks, 1 subtasks")
}

func TestCheckInputOverride(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteFile("elsewhere.json", `{"tasks":[{"id":1,"title":"A"}]}`)

	stdout := r.MustRun("check", "--input", "elsewhere.json")

	AssertContains(t, stdout, "1 tasks, 0 subtasks")
}

func TestCheckJWCCInput(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteTasks(`{
		// hand-maintained task file
		"tasks": [
			{"id": 1, "title": "A"},
		],
	}`)

	stdout := r.MustRun("check")

	AssertContains(t, stdout, "1 tasks, 0 subtasks")
}
