//go:build windows

package automation

import (
	"encoding/csv"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

type process struct {
	pid  int
	name string
}

// listProcesses enumerates running processes via tasklist.
func listProcesses() ([]process, error) {
	out, err := exec.Command("tasklist", "/fo", "csv", "/nh").Output()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(out)))
	reader.FieldsPerRecord = -1

	var procs []process
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		pid, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		procs = append(procs, process{pid: pid, name: rec[0]})
	}
	return procs, nil
}

// terminateProcess asks the process to exit via taskkill.
func terminateProcess(pid int) error {
	return exec.Command("taskkill", "/pid", strconv.Itoa(pid)).Run()
}

// executableName returns the name with the .exe suffix applied.
func executableName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".exe") {
		return name
	}
	return name + ".exe"
}

// installDirs lists directories searched for applications not on PATH.
func installDirs() []string {
	return []string{
		os.Getenv("PROGRAMFILES"),
		os.Getenv("PROGRAMFILES(X86)"),
		os.Getenv("APPDATA"),
		os.Getenv("LOCALAPPDATA"),
	}
}

// launchArgs builds the argv for launching a command.
func launchArgs(command string) []string {
	return []string{command}
}

// setSysProcAttr places the child in a new process group so it can outlive
// the agent.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
