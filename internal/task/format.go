package task

import "strings"

// Role labels. The label controls heading text and the
// dependency-visibility rule.
const (
	RoleTask    = "Task"
	RoleSubtask = "Subtask"
)

// Heading depth markers for the two nesting levels.
const (
	DepthTask    = "##"
	DepthSubtask = "###"
)

// fieldDefaults is the substitution table for missing record fields.
// A missing field is never an error; it renders as its default.
var fieldDefaults = map[string]string{ //nolint:gochecknoglobals // package-level constant
	"id":          "Unknown",
	"title":       "No title available",
	"description": "No description available",
	"status":      "No status available",
	"details":     "",
}

func fieldOrDefault(value, field string) string {
	if value != "" {
		return value
	}

	return fieldDefaults[field]
}

// Format renders one task as a self-contained Markdown block. Pure; it
// never fails. Each emitted line is followed by a blank line.
//
// Two asymmetric rules are load-bearing and must not be "fixed":
//   - The Priority/Status form is picked by field presence, not by role.
//     A subtask carrying a priority renders the combined form.
//   - Dependencies are gated on roleLabel == RoleSubtask, not on
//     presence. Top-level tasks carry dependency lists in the source
//     that must never surface in the document.
func Format(t Task, headingDepth, roleLabel string) string {
	var b strings.Builder

	id := fieldOrDefault(string(t.ID), "id")
	title := fieldOrDefault(t.Title, "title")
	status := fieldOrDefault(t.Status, "status")
	description := fieldOrDefault(t.Description, "description")
	details := fieldOrDefault(t.Details, "details")

	b.WriteString(headingDepth + " " + roleLabel + " " + id + ": " + title + "\n\n")

	if t.Priority != "" {
		b.WriteString("**Priority/Status:** " + t.Priority + " priority - " + status + "\n\n")
	} else {
		b.WriteString("**Status:** " + status + "\n\n")
	}

	b.WriteString("**Description:** " + description + "\n\n")

	if details != "" {
		b.WriteString("**Details:** " + details + "\n\n")
	}

	if t.TestStrategy != "" {
		b.WriteString("**Test Strategy:** " + t.TestStrategy + "\n\n")
	}

	if len(t.Dependencies) > 0 && roleLabel == RoleSubtask {
		b.WriteString("**Dependencies:** " + joinIDs(t.Dependencies) + "\n\n")
	}

	return b.String()
}

func joinIDs(ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}

	return strings.Join(parts, ", ")
}
