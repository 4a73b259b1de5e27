package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/output"
	"tasker/internal/service"
	"tasker/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasker` (no args) and `tasker list`.
type ListCmd struct {
	status   string
	priority string
	detailed bool
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

// SetPriority sets the priority filter (for testing).
func (c *ListCmd) SetPriority(p string) {
	c.priority = p
}

// SetDetailed sets the detailed flag (for testing).
func (c *ListCmd) SetDetailed(detailed bool) {
	c.detailed = detailed
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasker list [--status <pending|completed>] [--priority <low|medium|high>] [--detailed]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.BoolVar(&c.detailed, "detailed", false, "")
	fs.BoolVar(&c.detailed, "v", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// Validate filters
	if c.status != "" && c.status != "pending" && c.status != "completed" {
		fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
		return exitcode.UserError
	}

	var priority task.Priority
	if c.priority != "" {
		p, err := task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		priority = p
	}

	tasks, err := svc.Filter(func(t task.Task) bool {
		if c.status != "" && t.Completed != (c.status == "completed") {
			return false
		}
		if priority != "" && t.Priority != priority {
			return false
		}
		return true
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	var formatter output.Formatter = output.Simple{}
	if c.detailed {
		formatter = output.Detailed{}
	}
	formatter.FormatTasks(out, tasks)

	return exitcode.Success
}
