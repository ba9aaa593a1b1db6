package forkexec

import (
	"golang.org/x/sys/unix"
)

// Exit statuses in a reserved range distinguish failures of the gate
// protocol itself from exit codes of the target program. They are policy
// constants, not derived values.
const (
	// StatusPdeathsigFailed: prctl(PR_SET_PDEATHSIG) failed in the child
	StatusPdeathsigFailed = 10
	// StatusGateReadFailed: short or failed read of the release byte
	StatusGateReadFailed = 11
	// StatusExecFailed: execve of the target program failed
	StatusExecFailed = 12
)

var (
	// go does not allow constant uintptr to be negative...
	_AT_FDCWD = unix.AT_FDCWD
)
