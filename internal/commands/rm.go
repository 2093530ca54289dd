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

const (
	promptDeleteTask = "Are you sure you want to delete this task?"
	promptDeleteDone = "Are you sure you want to delete all done tasks?"
	promptDeleteAll  = "Are you sure you want to delete all tasks?"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "ltask rm [--yes] <ref>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	t, ok := lookupTask(ctx, svc, args, errOut)
	if !ok {
		return exitcode.UserError
	}

	if !c.yes {
		if code, confirmed := confirmOrCancel(cfg, in, out, errOut, promptDeleteTask); !confirmed {
			return code
		}
	}

	if _, err := svc.Delete(ctx, t.ID); err != nil {
		return storageFailure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// confirmOrCancel prompts on errOut. A declined prompt is not an error: it
// prints "cancelled" and succeeds, leaving the tasks untouched.
func confirmOrCancel(cfg *config.Config, in io.Reader, out, errOut io.Writer, prompt string) (int, bool) {
	confirmed, err := Confirm(in, errOut, prompt)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError, false
	}
	if !confirmed {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success, false
	}
	return exitcode.Success, true
}
