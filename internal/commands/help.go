package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                              List all tasks
  ltask list [common flags] [--search <text>] [--tab all|done|todo] [<text...>]
  ltask ls [common flags] [--search <text>] [--tab all|done|todo] [<text...>]
  ltask add [common flags] <text...>
  ltask create [common flags] <text...>
  ltask edit [common flags] <ref> <text...>
  ltask toggle [common flags] <ref>
  ltask done [common flags] <ref>
  ltask rm [common flags] [--yes] <ref>
  ltask clear [common flags] [--yes] --done|--all
  ltask shell [common flags]
  ltask help
  ltask version

Task references:
  <n>              Position in the full list, newest first
  #<id>            Task id

Common flags:
  --config <dir>          Override config directory
  --quiet                 Suppress informational output
  --debug                 Print debug logs to stderr
  --backend file|sqlite   Storage backend
  --format json|yaml|toml Encoding used by the file backend

Flags go before arguments: ltask rm --yes 2
`
