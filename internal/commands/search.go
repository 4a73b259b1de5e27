package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/output"
	"tasker/internal/service"
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd implements the search command.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return nil }
func (c *SearchCmd) Synopsis() string  { return "Search tasks by keyword" }
func (c *SearchCmd) Usage() string     { return "tasker search <keyword...>" }
func (c *SearchCmd) NeedsStore() bool  { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: keyword required")
		return exitcode.UserError
	}

	keyword := strings.Join(args, " ")
	if strings.TrimSpace(keyword) == "" {
		fmt.Fprintln(errOut, "error: keyword required")
		return exitcode.UserError
	}

	tasks, err := svc.Search(keyword)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(out, "no tasks matching %q\n", keyword)
		}
		return exitcode.Success
	}

	output.Simple{}.FormatTasks(out, tasks)
	return exitcode.Success
}
