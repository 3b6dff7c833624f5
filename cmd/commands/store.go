package commands

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/taskmasterhq/taskmaster/internal/config"
	"github.com/taskmasterhq/taskmaster/internal/storage"
	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// openStore loads the configuration, opens the configured slot, and seeds a
// store from it. The returned cleanup flushes pending writes and closes the
// slot; callers must invoke it before exiting.
func openStore(cmd *cli.Command) (*tasks.Store, *config.Config, func(), error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	slot, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.Slot)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	store := tasks.NewStore(slot)
	store.Load()

	cleanup := func() {
		store.Close()
		if c, ok := slot.(io.Closer); ok {
			c.Close()
		}
	}
	return store, cfg, cleanup, nil
}
