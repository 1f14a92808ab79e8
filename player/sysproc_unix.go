//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr places the spawned engine in its own process group so shutdown
// can take down anything it forked along with it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcess sweeps the engine's process group, then the leader itself.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
