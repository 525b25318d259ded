package run

import "github.com/flarebyte/t9search/internal/search"

const (
	exitCodeSuccess  = 0
	exitCodeExecErr  = 1
	exitCodeNotFound = 2
)

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }

// evaluateSearchExit turns a finished report into the command's exit status.
// "Not found" is a normal outcome unless strict is set.
func evaluateSearchExit(rep search.Report, strict bool) error {
	if strict && rep.NotFound() {
		return runExitError{code: exitCodeNotFound, msg: "not found"}
	}
	return nil
}
