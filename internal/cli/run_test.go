package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, []string{"taskdoc"}, nil)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout.String(), "Usage: taskdoc") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}

	if stderr.String() != "" {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunHelpFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"taskdoc", "--help"}},
		{name: "short flag", args: []string{"taskdoc", "-h"}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			code := Run(&stdout, &stderr, testCase.args, nil)

			if code != 0 {
				t.Errorf("exit code = %d, want 0", code)
			}

			out := stdout.String()
			if !strings.Contains(out, "render") || !strings.Contains(out, "print-config") {
				t.Errorf("stdout = %q, want command listing", out)
			}
		})
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("frobnicate")

	AssertContains(t, stderr, "unknown command: frobnicate")
	AssertContains(t, stderr, "Usage: taskdoc")
}

func TestRunUnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("--bogus", "render")

	AssertContains(t, stderr, "unknown flag")
}

func TestRunConfigFlagRequiresArg(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, []string{"taskdoc", "-c"}, nil)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "flag requires an argument") {
		t.Errorf("stderr = %q, want flag error", stderr.String())
	}
}

func TestRunExplicitConfigNotFound(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("-c", "missing.json", "render")

	AssertContains(t, stderr, "config file not found")
}

func TestRunConfigOverridesPaths(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.WriteFile(".taskdoc.json", `{
		// project config with relocated files
		"tasks_file": "plan/plan.json",
		"output_file": "plan/plan.md",
	}`)
	r.WriteFile("plan/plan.json", `{"tasks":[{"id":1,"title":"A"}]}`)

	r.MustRun("render")

	doc := r.ReadFile("plan/plan.md")

	AssertContains(t, doc, "## Task 1: A")
}

func TestRunStdoutEmptyOnError(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout, _, code := r.Run("render")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}
