package task

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
)

// Stats reports how many records a render pass processed.
type Stats struct {
	Tasks    int
	Subtasks int
}

// BuildDocument renders the whole task tree into one Markdown document.
// Tasks render at the outer heading depth, subtasks under a
// "**Subtasks (n):**" summary line at the inner depth, in source order.
// Returns ErrNoTasks when the tree has no top-level tasks.
func BuildDocument(tasks []Task) (string, Stats, error) {
	if len(tasks) == 0 {
		return "", Stats{}, ErrNoTasks
	}

	var b strings.Builder

	var stats Stats

	for _, t := range tasks {
		b.WriteString(Format(t, DepthTask, RoleTask))

		stats.Tasks++

		if len(t.Subtasks) == 0 {
			continue
		}

		fmt.Fprintf(&b, "**Subtasks (%d):**\n\n", len(t.Subtasks))

		for _, st := range t.Subtasks {
			b.WriteString(Format(st, DepthSubtask, RoleSubtask))

			stats.Subtasks++
		}
	}

	// Blocks carry their own trailing blank line; the document ends
	// with a single newline and no extra separator.
	doc := strings.TrimRight(b.String(), "\n") + "\n"

	return doc, stats, nil
}

// WriteDocument writes doc to path, replacing any existing file in one
// rename so a failed run never leaves a truncated document behind.
func WriteDocument(path, doc string) error {
	writeErr := atomic.WriteFile(path, strings.NewReader(doc))
	if writeErr != nil {
		return fmt.Errorf("cannot write document %s: %w", path, writeErr)
	}

	return nil
}
