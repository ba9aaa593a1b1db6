package forkexec

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Reference to src/syscall/exec_linux.go
//
//go:norace
func forkAndExecInChild(r *Runner, argv0 *byte, argv, env []*byte) (r1 uintptr, err1 syscall.Errno) {
	var gate byte

	pipe := r.SyncFD

	// Acquire the fork lock so that no other threads
	// create new fds that are not yet close-on-exec
	// before we fork.
	syscall.ForkLock.Lock()

	// About to call fork.
	// No more allocation or calls of non-assembly functions.
	beforeFork()

	r1, _, err1 = syscall.RawSyscall6(syscall.SYS_CLONE, uintptr(syscall.SIGCHLD), 0, 0, 0, 0, 0)
	if err1 != 0 || r1 != 0 {
		// in parent process, immediate return
		return
	}

	// In child process
	afterForkInChild()
	// Notice: cannot call any GO functions beyond this point

	// Receive SIGTERM if the supervisor dies first, otherwise the blocked
	// child would be orphaned waiting on a gate nobody can release
	_, _, err1 = syscall.RawSyscall6(syscall.SYS_PRCTL, syscall.PR_SET_PDEATHSIG,
		uintptr(syscall.SIGTERM), 0, 0, 0, 0)
	if err1 != 0 {
		childExit(StatusPdeathsigFailed)
	}

	// Block until the supervisor writes the release byte. A short or
	// failed read means supervisor setup failed before the release
	r1, _, err1 = syscall.RawSyscall(syscall.SYS_READ, pipe, uintptr(unsafe.Pointer(&gate)), 1)
	if err1 != 0 || r1 != 1 {
		childExit(StatusGateReadFailed)
	}

	syscall.RawSyscall(syscall.SYS_CLOSE, pipe, 0, 0)

	// Replace the process image with the target program, inheriting the
	// supervisor's environment
	syscall.RawSyscall6(unix.SYS_EXECVEAT, uintptr(_AT_FDCWD),
		uintptr(unsafe.Pointer(argv0)),
		uintptr(unsafe.Pointer(&argv[0])),
		uintptr(unsafe.Pointer(&env[0])), 0, 0)

	childExit(StatusExecFailed)
	// cannot reach this point
	return
}

// childExit terminates the forked child with one of the reserved
// internal failure statuses.
//
//go:norace
func childExit(status uintptr) {
	for {
		syscall.RawSyscall(syscall.SYS_EXIT_GROUP, status, 0, 0)
	}
}
