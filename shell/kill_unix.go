//go:build !windows

package shell

import (
	"os/exec"
	"syscall"
)

// setProcGroup places the child in its own process group so that
// termination on timeout reaches descendants spawned by the interpreter.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// kill forcibly terminates the process group. Falls back to killing the
// immediate child if the group signal fails.
func (p *process) kill() {
	if p.cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-p.cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = p.cmd.Process.Kill()
	}
}
