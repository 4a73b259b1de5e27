package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/service"
	"tasker/internal/task"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
// Flags left empty are not applied, so a field cannot be cleared, only
// overwritten.
type UpdateCmd struct {
	title       string
	description string
	priority    string
	dueDate     string
}

// SetTitle sets the new title (for testing).
func (c *UpdateCmd) SetTitle(title string) {
	c.title = title
}

// SetDescription sets the new description (for testing).
func (c *UpdateCmd) SetDescription(desc string) {
	c.description = desc
}

// SetPriority sets the new priority (for testing).
func (c *UpdateCmd) SetPriority(p string) {
	c.priority = p
}

// SetDueDate sets the new due date (for testing).
func (c *UpdateCmd) SetDueDate(due string) {
	c.dueDate = due
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return nil }
func (c *UpdateCmd) Synopsis() string  { return "Update a task" }
func (c *UpdateCmd) Usage() string {
	return "tasker update [--title <text>] [--desc <text>] [--priority <low|medium|high>] [--due <date>] <index>"
}
func (c *UpdateCmd) NeedsStore() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	index, err := ParseIndex(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	u := service.Update{}
	if c.title != "" {
		u.Title = &c.title
	}
	if c.description != "" {
		u.Description = &c.description
	}
	if c.priority != "" {
		p, err := task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		u.Priority = &p
	}
	if c.dueDate != "" {
		u.DueDate = &c.dueDate
	}

	if u.Title == nil && u.Description == nil && u.Priority == nil && u.DueDate == nil {
		fmt.Fprintln(errOut, "error: no updates specified")
		return exitcode.UserError
	}

	// Resolve the index to a task id; updates are id-addressed in the
	// service.
	t, err := svc.ByIndex(index)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	if t == nil {
		fmt.Fprintf(errOut, "error: task %d not found\n", index)
		return exitcode.UserError
	}

	found, err := svc.Update(t.ID, u)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	if !found {
		fmt.Fprintf(errOut, "error: task %d not found\n", index)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
