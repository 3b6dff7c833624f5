package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// NewTasksCommand returns the tasks subcommand.
func NewTasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Manage tasks",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a task",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Task title", Required: true},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Task description"},
					&cli.StringFlag{Name: "due", Usage: "Due date (YYYY-MM-DD)", Required: true},
				},
				Action: runTasksAdd,
			},
			{
				Name:  "list",
				Usage: "List tasks",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "Filter: all, pending, in-progress, completed", Value: "all"},
					&cli.StringFlag{Name: "sort", Usage: "Sort key: created, title"},
					&cli.StringFlag{Name: "order", Usage: "Sort order: asc, desc"},
				},
				Action: runTasksList,
			},
			{
				Name:      "show",
				Usage:     "Show task details",
				ArgsUsage: "<task_id>",
				Action:    runTasksShow,
			},
			{
				Name:      "edit",
				Usage:     "Edit task fields",
				ArgsUsage: "<task_id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Usage: "New description"},
					&cli.StringFlag{Name: "due", Usage: "New due date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "status", Usage: "New status"},
				},
				Action: runTasksEdit,
			},
			{
				Name:      "status",
				Usage:     "Set a task's status",
				ArgsUsage: "<task_id> <pending|in-progress|completed>",
				Action:    runTasksStatus,
			},
			{
				Name:      "rm",
				Usage:     "Delete a task",
				ArgsUsage: "<task_id>",
				Action:    runTasksRemove,
			},
			NewExportCommand(),
			NewImportCommand(),
		},
		DefaultCommand: "list",
	}
}

func runTasksAdd(_ context.Context, cmd *cli.Command) error {
	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	t := store.Add(tasks.AddInput{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		DueDate:     cmd.String("due"),
	})
	fmt.Printf("Added %s (%s)\n", t.Title, t.ID)
	return nil
}

func runTasksList(_ context.Context, cmd *cli.Command) error {
	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	q, err := tasks.ParseQuery(cmd.String("status"), cmd.String("sort"), cmd.String("order"))
	if err != nil {
		return err
	}

	list := q.Apply(store.All())
	if len(list) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDUE\tTITLE")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Status, t.DueDate, t.Title)
	}
	return w.Flush()
}

func runTasksShow(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("usage: taskmaster tasks show <task_id>")
	}

	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	t, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}

	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Title:       %s\n", t.Title)
	fmt.Printf("Status:      %s\n", t.Status)
	fmt.Printf("Due:         %s\n", t.DueDate)
	fmt.Printf("Created:     %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	if t.Description != "" {
		fmt.Printf("\n%s\n", t.Description)
	}
	return nil
}

func runTasksEdit(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("usage: taskmaster tasks edit <task_id> [flags]")
	}

	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := store.Get(id); !ok {
		return fmt.Errorf("task not found: %s", id)
	}

	in := tasks.UpdateInput{ID: id}
	if cmd.IsSet("title") {
		v := cmd.String("title")
		in.Title = &v
	}
	if cmd.IsSet("description") {
		v := cmd.String("description")
		in.Description = &v
	}
	if cmd.IsSet("due") {
		v := cmd.String("due")
		in.DueDate = &v
	}
	if cmd.IsSet("status") {
		status, err := tasks.ParseStatus(cmd.String("status"))
		if err != nil {
			return err
		}
		in.Status = &status
	}

	store.Update(in)
	fmt.Printf("Updated %s\n", id)
	return nil
}

func runTasksStatus(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	raw := cmd.Args().Get(1)
	if id == "" || raw == "" {
		return fmt.Errorf("usage: taskmaster tasks status <task_id> <status>")
	}

	status, err := tasks.ParseStatus(raw)
	if err != nil {
		return err
	}

	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := store.Get(id); !ok {
		return fmt.Errorf("task not found: %s", id)
	}

	store.SetStatus(id, status)
	fmt.Printf("%s → %s\n", id, status)
	return nil
}

func runTasksRemove(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("usage: taskmaster tasks rm <task_id>")
	}

	store, _, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := store.Get(id); !ok {
		return fmt.Errorf("task not found: %s", id)
	}

	store.Delete(id)
	fmt.Printf("Deleted %s\n", id)
	return nil
}
