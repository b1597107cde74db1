//go:build !windows

package automation

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

type process struct {
	pid  int
	name string
}

// listProcesses enumerates running processes via ps.
func listProcesses() ([]process, error) {
	out, err := exec.Command("ps", "-eo", "pid=,comm=").Output()
	if err != nil {
		return nil, err
	}

	var procs []process
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		procs = append(procs, process{pid: pid, name: strings.Join(fields[1:], " ")})
	}
	return procs, nil
}

// terminateProcess sends SIGTERM, letting the target shut down cleanly.
func terminateProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

// executableName returns the name as launched on this platform.
func executableName(name string) string {
	return name
}

// installDirs lists directories searched for applications not on PATH.
func installDirs() []string {
	return []string{
		"/usr/bin",
		"/usr/local/bin",
		"/opt",
		"/Applications",
	}
}

// launchArgs builds the argv for launching a command. On macOS, bare app
// names that are not on PATH go through the Launch Services opener.
func launchArgs(command string) []string {
	if runtime.GOOS == "darwin" && !strings.ContainsRune(command, '/') {
		if _, err := exec.LookPath(command); err != nil {
			return []string{"open", "-a", command}
		}
	}
	return []string{command}
}

// setSysProcAttr detaches the child into its own process group so closing
// the agent never takes launched applications down with it.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
