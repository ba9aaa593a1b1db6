// Package forkexec creates a gated child process: the child is forked
// holding the read end of a private synchronization descriptor and blocks
// before execve until the supervisor writes a single release byte.
//
// pipe2, execveat requires kernel >= 3.19
package forkexec
