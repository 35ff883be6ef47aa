package task

import "errors"

// Error variables for loading, rendering, and configuration.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrTasksFilePathEmpty = errors.New("tasks-file cannot be empty")
	ErrOutputPathEmpty    = errors.New("output-file cannot be empty")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrTasksFileNotFound  = errors.New("tasks file not found")
	ErrTasksFileInvalid   = errors.New("invalid tasks file")
	ErrNoTasks            = errors.New("no tasks found in tasks file")
)
