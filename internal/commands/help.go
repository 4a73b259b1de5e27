package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasker help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasker                                             List all tasks
  tasker list [common flags] [--status <pending|completed>] [--priority <p>] [--detailed]
  tasker add [common flags] [--desc <text>] [--priority <p>] [--due <date>] <title...>
  tasker complete [common flags] <index>
  tasker update [common flags] [--title <text>] [--desc <text>] [--priority <p>] [--due <date>] <index>
  tasker rm [common flags] <index>
  tasker search [common flags] <keyword...>
  tasker stats [common flags]
  tasker help
  tasker version

Common flags:
  --file <path>    Override task file path
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
