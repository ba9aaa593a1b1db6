// Package child implements a supervised, gated child process: the target
// program is forked but held motionless on a private pipe until the
// supervisor releases it, so instrumentation can attach before the first
// instruction of target code runs.
package child

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/probekit/go-gate/pkg/cmdline"
	"github.com/probekit/go-gate/pkg/forkexec"
	"github.com/probekit/go-gate/pkg/lookpath"
)

const (
	// maxArgs bounds the argument vector, reserving a slot for the execve
	// terminator and a safety margin. Policy constant, not derived.
	maxArgs = 256

	// gateRelease is the single byte ever written across the gate pipe.
	gateRelease = 'g'
)

// Process is one gated child process. Create it with New. Mutating
// operations (Run, Terminate, Close) are not safe for concurrent use;
// callers must serialize access.
type Process struct {
	pid   int
	pipeW *os.File
	state State

	// exit cause, mutually exclusive, set once upon confirmed termination
	exitCode int
	termSig  syscall.Signal
	exited   bool
	signaled bool
}

// New tokenizes and validates cmd, then forks the gated child. On return
// the child is alive but blocked on the gate until Run is called. The
// caller must eventually call Close, which guarantees the process is
// terminated and reaped no matter how far the lifecycle progressed.
func New(cmd string) (*Process, error) {
	args := cmdline.Split(cmd, ' ')
	if err := validate(args); err != nil {
		return nil, err
	}

	// both ends are close-on-exec so neither survives the image
	// replacement in the child
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gate pipe")
	}

	runner := forkexec.Runner{
		Args:   args,
		Env:    os.Environ(),
		SyncFD: r.Fd(),
	}
	pid, err := runner.Start()
	// the supervisor never reads from the gate; its copy of the read end
	// is closed whatever the fork outcome
	r.Close()
	if err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "failed to fork gated child %q", args[0])
	}

	return &Process{
		pid:   pid,
		pipeW: w,
		state: StateForked,
	}, nil
}

// validate checks the argument vector and replaces args[0] with its
// resolved executable path. It runs before any OS process exists; failure
// has no process-level side effects.
func validate(args []string) error {
	if len(args) == 0 {
		return errors.New("empty command")
	}

	paths := lookpath.Resolve(args[0])
	switch len(paths) {
	case 0:
		return &NotFoundError{Name: args[0]}
	case 1:
		args[0] = paths[0]
	default:
		return &AmbiguousPathError{Name: args[0], Matches: len(paths)}
	}

	if len(args) >= maxArgs-1 {
		return &TooManyArgsError{Count: len(args), Max: maxArgs - 1}
	}
	return nil
}

// Run releases the gate so the child replaces itself with the target
// program. It may be called once, while the child is still gated. A
// failed write force-terminates the child so no half-gated process
// survives.
func (p *Process) Run() error {
	if !p.IsAlive() {
		return ErrChildDied
	}
	if p.state != StateForked {
		return errors.Errorf("cannot release gate in state %q", p.state)
	}

	if _, err := p.pipeW.Write([]byte{gateRelease}); err != nil {
		p.Terminate(true)
		return errors.Wrapf(err, "failed to write release byte to pid %d", p.pid)
	}
	p.state = StateRunning

	// the write end must not leak into the running child's lifetime
	p.closePipe()
	return nil
}

// IsAlive re-probes the child with a non-blocking reap unless it is
// already known dead. The only state transition it may cause is to Died.
func (p *Process) IsAlive() bool {
	if p.state != StateDied {
		p.checkChild(false)
	}
	return p.state != StateDied
}

// Terminate signals the child and reaps it: SIGTERM with a non-blocking
// reap when force is false, SIGKILL with a blocking reap when force is
// true, so a forced terminate never leaves an unreaped process behind.
// Once the child is dead it is a no-op.
func (p *Process) Terminate(force bool) {
	// the child may have died in the meantime
	p.checkChild(false)
	if p.state == StateDied {
		return
	}

	// assertion: a pid this low means the bookkeeping was corrupted
	// earlier, not that the child is special
	if p.pid <= 1 {
		panic(errors.Errorf("BUG: child pid %d", p.pid))
	}

	sig := unix.SIGTERM
	if force {
		sig = unix.SIGKILL
	}
	unix.Kill(p.pid, sig)
	p.checkChild(force)
}

// Close closes the write end of the gate if still open, then force
// terminates the child if it is still alive. Safe to call repeatedly;
// after it returns no process or descriptor is leaked.
func (p *Process) Close() error {
	p.closePipe()
	if p.IsAlive() {
		p.Terminate(true)
	}
	return nil
}

// closePipe closes the gate write end exactly once.
func (p *Process) closePipe() {
	if p.pipeW != nil {
		p.pipeW.Close()
		p.pipeW = nil
	}
}

// Pid returns the child's process id. It is assigned once and immutable.
func (p *Process) Pid() int {
	return p.pid
}

// State returns the current lifecycle state.
func (p *Process) State() State {
	return p.state
}

// ExitCode returns the child's exit code. The second return is false
// unless the child died by exiting normally.
func (p *Process) ExitCode() (int, bool) {
	return p.exitCode, p.exited
}

// TermSignal returns the signal that killed the child. The second return
// is false unless the child died by a signal.
func (p *Process) TermSignal() (syscall.Signal, bool) {
	return p.termSig, p.signaled
}
