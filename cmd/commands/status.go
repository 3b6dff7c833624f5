package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewStatusCommand returns the status summary command.
func NewStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show collection and storage status",
		Action: runStatus,
	}
}

func runStatus(_ context.Context, cmd *cli.Command) error {
	store, cfg, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Storage:      %s (%s)\n", cfg.Storage.Driver, cfg.Storage.Path)
	fmt.Printf("Slot:         %s\n", cfg.Storage.Slot)
	fmt.Printf("Tasks:        %d\n", store.Len())
	fmt.Printf("  pending:     %d\n", len(store.Pending()))
	fmt.Printf("  in-progress: %d\n", len(store.InProgress()))
	fmt.Printf("  completed:   %d\n", len(store.Completed()))
	return nil
}
