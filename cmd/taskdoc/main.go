// Package main provides taskdoc, a renderer from task trees to Markdown documents.
package main

import (
	"os"
	"strings"

	"taskdoc/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
