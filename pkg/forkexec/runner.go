package forkexec

// Runner is the configuration for a gated child including the resolved
// exec path, argv and the read end of the gate descriptor.
type Runner struct {
	// argv and env for execve syscall for the child process.
	// Args[0] must be a resolved executable path.
	Args []string
	Env  []string

	// SyncFD is the read end of the gate. The child blocks reading a
	// single byte from it before execve while the supervisor retains the
	// write end. Both ends are expected to be close-on-exec so neither
	// leaks into the target program image.
	SyncFD uintptr
}
