package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/query"
	"ltask/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `ltask` (no args) and `ltask list [filters]`.
type ListCmd struct {
	search string
	tab    string
}

// SetSearch sets the search query (for testing).
func (c *ListCmd) SetSearch(q string) {
	c.search = q
}

// SetTab sets the status tab (for testing).
func (c *ListCmd) SetTab(tab string) {
	c.tab = tab
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "ltask list [--search <text>] [--tab all|done|todo] [<text...>]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
	fs.StringVar(&c.tab, "tab", "all", "")
	fs.StringVar(&c.tab, "t", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	tab := query.All
	if c.tab != "" {
		var err error
		tab, err = query.ParseTab(c.tab)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	// Positional words are a shorthand for --search
	search := c.search
	if len(args) > 0 {
		if search != "" {
			fmt.Fprintln(errOut, "error: cannot use both --search and search words")
			return exitcode.UserError
		}
		search = strings.Join(args, " ")
	}

	all := svc.Tasks(ctx)
	output.FormatTasks(out, all, query.Project(all, search, tab), cfg.Quiet)
	return exitcode.Success
}
