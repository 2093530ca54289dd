package commands

import (
	"context"
	"fmt"
	"io"

	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/task"
)

// lookupTask parses the reference in args and resolves it against the current
// collection. On failure it reports to errOut and returns false.
func lookupTask(ctx context.Context, svc service.Service, args []string, errOut io.Writer) (task.Task, bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, false
	}

	t, err := ref.Resolve(svc.Tasks(ctx))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, false
	}
	return t, true
}

// storageFailure reports a failed write.
func storageFailure(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}
