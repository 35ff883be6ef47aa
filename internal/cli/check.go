package cli

import (
	"context"
	"fmt"

	"taskdoc/internal/task"

	flag "github.com/spf13/pflag"
)

// CheckCmd returns the check command.
func CheckCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.StringP("input", "i", "", "Tasks file to read (overrides config)")

	return &Command{
		Flags: fs,
		Usage: "check [flags]",
		Short: "Parse the tasks file and report counts",
		Long: "Read the tasks file and report how many tasks and subtasks would render,\n" +
			"without writing the document.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execCheck(io, cfg, fs)
		},
	}
}

func execCheck(io *IO, cfg *task.Config, fs *flag.FlagSet) error {
	inputPath, err := pathFlagOrConfig(fs, "input", cfg.TasksFileAbs, cfg.EffectiveCwd)
	if err != nil {
		return err
	}

	tasks, err := task.LoadTasks(inputPath)
	if err != nil {
		return err
	}

	_, stats, err := task.BuildDocument(tasks)
	if err != nil {
		return fmt.Errorf("%w: %s", err, inputPath)
	}

	// Rendering stops at two levels; flag anything deeper so it isn't
	// silently dropped from the document.
	for _, t := range tasks {
		for _, st := range t.Subtasks {
			if len(st.Subtasks) > 0 {
				io.Warnf("subtask %s of task %s has nested subtasks that will not render", st.ID, t.ID)
			}
		}
	}

	io.Printf("%s: %d tasks, %d subtasks\n", inputPath, stats.Tasks, stats.Subtasks)

	return nil
}
