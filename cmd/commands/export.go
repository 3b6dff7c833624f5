package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// yamlTask is the export/import wire form. CreatedAt travels as RFC 3339 so
// a dump survives editing in any text editor and re-imports losslessly.
type yamlTask struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	DueDate     string `yaml:"dueDate"`
	Status      string `yaml:"status"`
	CreatedAt   string `yaml:"createdAt"`
}

// NewExportCommand returns the tasks export subcommand.
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Dump the collection as YAML to stdout",
		Action: func(_ context.Context, cmd *cli.Command) error {
			store, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			list := store.All()
			out := make([]yamlTask, len(list))
			for i, t := range list {
				out[i] = yamlTask{
					ID:          t.ID,
					Title:       t.Title,
					Description: t.Description,
					DueDate:     t.DueDate,
					Status:      string(t.Status),
					CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
				}
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}
}

// NewImportCommand returns the tasks import subcommand.
func NewImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Replace the collection from a YAML dump",
		ArgsUsage: "<file>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: taskmaster tasks import <file>")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			var records []yamlTask
			if err := yaml.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("parse import file: %w", err)
			}

			list := make([]tasks.Task, 0, len(records))
			seen := make(map[string]struct{}, len(records))
			for i, r := range records {
				status, err := tasks.ParseStatus(r.Status)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
				createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
				if err != nil {
					return fmt.Errorf("record %d: parse createdAt: %w", i, err)
				}
				id := r.ID
				if id == "" {
					id = tasks.GenerateTaskID()
				}
				if _, dup := seen[id]; dup {
					return fmt.Errorf("record %d: duplicate id %s", i, id)
				}
				seen[id] = struct{}{}

				list = append(list, tasks.Task{
					ID:          id,
					Title:       r.Title,
					Description: r.Description,
					DueDate:     r.DueDate,
					Status:      status,
					CreatedAt:   createdAt,
				})
			}

			store, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			store.Replace(list)
			fmt.Printf("Imported %d task(s)\n", len(list))
			return nil
		},
	}
}
