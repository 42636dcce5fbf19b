//go:build windows

package shell

import "os/exec"

func setProcGroup(cmd *exec.Cmd) {}

// kill forcibly terminates the immediate child. Windows offers no portable
// process-group signal here, so descendants spawned by the interpreter may
// outlive it.
func (p *process) kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}
