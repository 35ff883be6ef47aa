package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"taskdoc/internal/task"

	flag "github.com/spf13/pflag"
)

var errEmptyPathFlag = errors.New("path flag cannot be empty")

// RenderCmd returns the render command.
func RenderCmd(cfg *task.Config) *Command {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringP("input", "i", "", "Tasks file to read (overrides config)")
	fs.StringP("output", "o", "", "Document to write (overrides config)")

	return &Command{
		Flags: fs,
		Usage: "render [flags]",
		Short: "Render the tasks file to a Markdown document",
		Long: "Read the tasks file, render every task and subtask, and write the document.\n" +
			"Nothing is written when reading or rendering fails.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execRender(io, cfg, fs)
		},
	}
}

func execRender(io *IO, cfg *task.Config, fs *flag.FlagSet) error {
	inputPath, err := pathFlagOrConfig(fs, "input", cfg.TasksFileAbs, cfg.EffectiveCwd)
	if err != nil {
		return err
	}

	outputPath, err := pathFlagOrConfig(fs, "output", cfg.OutputFileAbs, cfg.EffectiveCwd)
	if err != nil {
		return err
	}

	tasks, err := task.LoadTasks(inputPath)
	if err != nil {
		return err
	}

	doc, stats, err := task.BuildDocument(tasks)
	if err != nil {
		return fmt.Errorf("%w: %s", err, inputPath)
	}

	writeErr := task.WriteDocument(outputPath, doc)
	if writeErr != nil {
		return writeErr
	}

	io.Printf("Rendered %d tasks (%d subtasks) to %s\n", stats.Tasks, stats.Subtasks, outputPath)

	return nil
}

// pathFlagOrConfig returns the flag value resolved against the effective
// working directory when set, otherwise the configured absolute path.
func pathFlagOrConfig(fs *flag.FlagSet, name, configured, cwd string) (string, error) {
	if !fs.Changed(name) {
		return configured, nil
	}

	path, _ := fs.GetString(name)
	if path == "" {
		return "", fmt.Errorf("%w: --%s", errEmptyPathFlag, name)
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	return path, nil
}
