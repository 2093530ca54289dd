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
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command: bulk deletion of done tasks or of
// every task.
type ClearCmd struct {
	done bool
	all  bool
	yes  bool
}

// SetMode selects what clear deletes (for testing).
func (c *ClearCmd) SetMode(done, all bool) {
	c.done = done
	c.all = all
}

// SetYes skips the confirmation prompt (for testing).
func (c *ClearCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all done tasks, or all tasks" }
func (c *ClearCmd) Usage() string     { return "ltask clear [--yes] --done|--all" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.done, "done", false, "")
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if c.done == c.all {
		fmt.Fprintln(errOut, "error: specify one of --done or --all")
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	prompt := promptDeleteAll
	op := svc.DeleteAll
	if c.done {
		prompt = promptDeleteDone
		op = svc.DeleteCompleted
	}

	if !c.yes {
		if code, confirmed := confirmOrCancel(cfg, in, out, errOut, prompt); !confirmed {
			return code
		}
	}

	before := len(svc.Tasks(ctx))
	after, err := op(ctx)
	if err != nil {
		return storageFailure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "deleted %d\n", before-len(after))
	}
	return exitcode.Success
}
