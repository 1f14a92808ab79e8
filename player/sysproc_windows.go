//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr returns no special attributes: there are no Unix-style process
// groups to configure on Windows.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// killProcess terminates the engine process directly; no group to sweep.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
