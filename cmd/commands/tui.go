package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/taskmasterhq/taskmaster/internal/tui"
)

// NewTUICommand returns the terminal UI command.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse tasks in the terminal",
		Action: func(_ context.Context, cmd *cli.Command) error {
			store, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(store)
		},
	}
}
