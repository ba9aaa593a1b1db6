package child

import (
	"fmt"
	"log"

	"golang.org/x/sys/unix"
)

// checkChild reaps exit status from the child, blocking only when block
// is set. A recoverable interruption is retried transparently; a pid of 0
// from the non-blocking probe means the child is still alive. An invalid
// argument failure indicates inconsistent pid bookkeeping and panics.
// Any other wait failure is downgraded to "presumed dead" with a warning,
// trading strict correctness for forward progress; keep that policy if
// this code is reworked.
func (p *Process) checkChild(block bool) {
	var (
		wstatus unix.WaitStatus
		pid     int
		err     error
	)

	flags := unix.WNOHANG
	if block {
		flags = 0
	}
	for {
		pid, err = unix.Wait4(p.pid, &wstatus, flags, nil)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		if err == unix.EINVAL {
			panic(fmt.Sprintf("BUG: wait4(%d) EINVAL", p.pid))
		}
		log.Printf("wait4(%d) returned unexpected error: %v, marking the child as dead", p.pid, err)
		p.state = StateDied
		return
	}
	if pid == 0 {
		// still alive
		return
	}

	p.checkWstatus(wstatus)
}

// checkWstatus records the exit cause. Stop and continue statuses carry
// no termination information and cause no transition.
func (p *Process) checkWstatus(wstatus unix.WaitStatus) {
	switch {
	case wstatus.Exited():
		p.exitCode = wstatus.ExitStatus()
		p.exited = true
	case wstatus.Signaled():
		p.termSig = wstatus.Signal()
		p.signaled = true
	default:
		return
	}
	p.state = StateDied
}
