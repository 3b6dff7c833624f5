package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskmasterhq/taskmaster/internal/gateway"
)

// NewServeCommand returns the gateway server command.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP gateway",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Override the configured listen host",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Override the configured listen port",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	store, cfg, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.Int("port")
	}

	srv := gateway.NewServer(store, cfg)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
