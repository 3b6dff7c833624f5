// Package commands wires the CLI surface of taskmaster.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/taskmasterhq/taskmaster/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskmaster",
		Usage: "A local-first task tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
		},
		Commands: []*cli.Command{
			NewServeCommand(),
			NewTasksCommand(),
			NewTUICommand(),
			NewStatusCommand(),
		},
	}
}
