package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/query"
	"ltask/internal/service"
	"ltask/internal/task"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the interactive shell: one session holding a search
// query, a status tab and at most one task in edit mode.
type ShellCmd struct{}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return nil }
func (c *ShellCmd) Synopsis() string  { return "Start an interactive session" }
func (c *ShellCmd) Usage() string     { return "ltask shell" }
func (c *ShellCmd) NeedsStore() bool  { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if in == nil {
		in = strings.NewReader("")
	}

	sh := &shell{
		cfg:    cfg,
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		tab:    query.All,
		code:   exitcode.Success,
	}
	sh.render(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return sh.code
		}
		if !cfg.Quiet {
			fmt.Fprint(out, "> ")
		}
		line, err := sh.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if quit := sh.exec(ctx, line); quit {
				return sh.code
			}
		}
		if errors.Is(err, io.EOF) {
			if !cfg.Quiet {
				fmt.Fprintln(out)
			}
			return sh.code
		}
		if err != nil {
			fmt.Fprintf(errOut, "error: read input: %v\n", err)
			return exitcode.UserError
		}
	}
}

// shell is the state of one interactive session.
type shell struct {
	cfg    *config.Config
	svc    service.Service
	in     *bufio.Reader // shared with confirmation prompts
	out    io.Writer
	errOut io.Writer

	search string
	tab    query.Tab
	edit   task.EditSession

	// code is StorageError once any write has failed, Success otherwise.
	code int
}

// exec runs one input line and reports whether the session should end.
func (s *shell) exec(ctx context.Context, line string) bool {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "ls", "list":
		s.show(ctx)
	case "add":
		s.add(ctx, rest)
	case "edit":
		s.begin(ctx, rest)
	case "text":
		s.stage(rest)
	case "save":
		s.commit(ctx)
	case "cancel":
		s.edit.Cancel()
		s.ok()
	case "toggle", "done":
		s.toggle(ctx, rest)
	case "rm":
		s.remove(ctx, rest)
	case "clear":
		s.clear(ctx, rest)
	case "search":
		s.search = rest
		s.render(ctx)
	case "tab":
		tab, err := query.ParseTab(rest)
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			return false
		}
		s.tab = tab
		s.render(ctx)
	default:
		fmt.Fprintf(s.errOut, "error: unknown command: %s\n", name)
	}
	return false
}

func (s *shell) add(ctx context.Context, text string) {
	if text == "" {
		fmt.Fprintln(s.errOut, "error: text required")
		return
	}
	if _, err := s.svc.Add(ctx, text); err != nil {
		s.fail(err)
		return
	}
	s.render(ctx)
}

func (s *shell) begin(ctx context.Context, ref string) {
	t, ok := lookupTask(ctx, s.svc, strings.Fields(ref), s.errOut)
	if !ok {
		return
	}
	s.edit.Begin(s.svc.Tasks(ctx), t.ID)
	s.render(ctx)
}

func (s *shell) stage(text string) {
	if _, active := s.edit.Active(); !active {
		fmt.Fprintln(s.errOut, "error: no task in edit mode")
		return
	}
	s.edit.SetBuffer(text)
	s.ok()
}

func (s *shell) commit(ctx context.Context) {
	id, active := s.edit.Active()
	if !active {
		fmt.Fprintln(s.errOut, "error: no task in edit mode")
		return
	}
	staged := s.edit.Buffer()
	if strings.TrimSpace(staged) == "" {
		fmt.Fprintln(s.errOut, "error: text required")
		return
	}
	// A failed write leaves the session open with the staged text.
	if _, err := s.svc.Edit(ctx, id, staged); err != nil {
		s.fail(err)
		return
	}
	s.edit.Cancel()
	s.render(ctx)
}

func (s *shell) toggle(ctx context.Context, ref string) {
	t, ok := lookupTask(ctx, s.svc, strings.Fields(ref), s.errOut)
	if !ok {
		return
	}
	if _, err := s.svc.Toggle(ctx, t.ID); err != nil {
		s.fail(err)
		return
	}
	s.render(ctx)
}

func (s *shell) remove(ctx context.Context, ref string) {
	t, ok := lookupTask(ctx, s.svc, strings.Fields(ref), s.errOut)
	if !ok {
		return
	}
	if !s.confirm(promptDeleteTask) {
		return
	}
	if _, err := s.svc.Delete(ctx, t.ID); err != nil {
		s.fail(err)
		return
	}
	if id, active := s.edit.Active(); active && id == t.ID {
		s.edit.Cancel()
	}
	s.render(ctx)
}

func (s *shell) clear(ctx context.Context, mode string) {
	prompt := promptDeleteAll
	op := s.svc.DeleteAll
	switch strings.ToLower(mode) {
	case "done":
		prompt = promptDeleteDone
		op = s.svc.DeleteCompleted
	case "all":
	default:
		fmt.Fprintln(s.errOut, "error: specify one of done or all")
		return
	}
	if !s.confirm(prompt) {
		return
	}
	after, err := op(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if id, active := s.edit.Active(); active && after.Index(id) < 0 {
		s.edit.Cancel()
	}
	s.render(ctx)
}

// confirm asks on the session's own reader so the answer line is not
// mistaken for a command.
func (s *shell) confirm(prompt string) bool {
	ok, err := Confirm(s.in, s.out, prompt)
	if err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}
	if !ok && !s.cfg.Quiet {
		fmt.Fprintln(s.out, "cancelled")
	}
	return ok
}

// render redraws the view after a change. Quiet sessions only draw on ls.
func (s *shell) render(ctx context.Context) {
	if s.cfg.Quiet {
		return
	}
	s.show(ctx)
}

func (s *shell) show(ctx context.Context) {
	all := s.svc.Tasks(ctx)
	output.FormatHeader(s.out, s.search, string(s.tab))
	output.FormatTasks(s.out, all, query.Project(all, s.search, s.tab), false)
	if id, active := s.edit.Active(); active {
		fmt.Fprintf(s.out, "editing %d: %s\n", all.Index(id)+1, s.edit.Buffer())
	}
	output.FormatSummary(s.out, all)
}

func (s *shell) ok() {
	if !s.cfg.Quiet {
		fmt.Fprintln(s.out, "ok")
	}
}

func (s *shell) fail(err error) {
	storageFailure(s.errOut, err)
	s.code = exitcode.StorageError
}

const shellHelp = `Commands:
  ls                 Show the current view
  add <text>         Create a task
  edit <ref>         Put a task in edit mode
  text <text>        Replace the text being edited
  save               Apply the edit
  cancel             Leave edit mode without changes
  toggle <ref>       Mark a task completed, or reopen it
  rm <ref>           Delete a task
  clear done|all     Delete done tasks, or all tasks
  search [text]      Filter by text; no text clears the filter
  tab all|done|todo  Filter by status
  help               Show this help
  quit               Leave the shell
`
