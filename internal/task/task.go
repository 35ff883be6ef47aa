// Package task loads task trees and renders them as Markdown documents.
package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// ID is a task identifier. Source files store IDs as either JSON numbers
// (top-level tasks) or strings (dotted subtask IDs like "1.2"), so both
// forms are accepted and kept as text. IDs are presentational only; no
// uniqueness is enforced, and a subtask ID is scoped to its parent.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*id = ID(s)

		return nil
	}

	var n json.Number

	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}

	*id = ID(n.String())

	return nil
}

// Task is one record in the task tree. Subtasks nest one level deep.
// Every field is optional in the source; the formatter substitutes a
// documented default for anything missing.
type Task struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Details      string `json:"details"`
	Priority     string `json:"priority"`
	TestStrategy string `json:"testStrategy"`
	Dependencies []ID   `json:"dependencies"`
	Subtasks     []Task `json:"subtasks"`
}

// tasksFile is the on-disk shape of the input document.
type tasksFile struct {
	Tasks []Task `json:"tasks"`
}

// LoadTasks reads and parses the tasks document at path. Files are
// parsed as JWCC, so comments and trailing commas in hand-maintained
// task files are tolerated.
func LoadTasks(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTasksFileNotFound, path)
		}

		return nil, fmt.Errorf("cannot read tasks file %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTasksFileInvalid, path, err)
	}

	var f tasksFile

	unmarshalErr := json.Unmarshal(standardized, &f)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTasksFileInvalid, path, unmarshalErr)
	}

	return f.Tasks, nil
}
