package automation

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// OpenApp launches an application without waiting for it to exit.
// Resolution order: alias table, direct executable name, then a search
// across the platform's standard installation directories.
func (l *Local) OpenApp(name string) Outcome {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return failure("no application name given")
	}

	if command, ok := l.aliases.Apps[lower]; ok {
		if err := launch(command); err != nil {
			return failure(fmt.Sprintf("Failed to open %s: %v", name, err))
		}
		return success(fmt.Sprintf("Opened %s", name))
	}

	// Direct executable on PATH.
	if _, err := exec.LookPath(lower); err == nil {
		if err := launch(lower); err != nil {
			return failure(fmt.Sprintf("Failed to open %s: %v", name, err))
		}
		return success(fmt.Sprintf("Opened %s", name))
	}

	// Search standard install directories.
	for _, base := range installDirs() {
		if base == "" {
			continue
		}
		for _, candidate := range []string{
			filepath.Join(base, executableName(name)),
			filepath.Join(base, name, executableName(name)),
		} {
			if _, err := os.Stat(candidate); err == nil {
				if err := launch(candidate); err != nil {
					return failure(fmt.Sprintf("Failed to open %s: %v", name, err))
				}
				return success(fmt.Sprintf("Opened %s", name))
			}
		}
	}

	return failure(fmt.Sprintf("Application '%s' not found", name))
}

// CloseApp terminates every running process whose name matches the resolved
// alias or contains the requested name as a substring.
func (l *Local) CloseApp(name string) Outcome {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return failure("no application name given")
	}

	targets := []string{lower, strings.ToLower(executableName(lower))}
	if command, ok := l.aliases.Apps[lower]; ok {
		targets = append(targets, strings.ToLower(command))
	}

	procs, err := listProcesses()
	if err != nil {
		return failure(fmt.Sprintf("Failed to close %s: %v", name, err))
	}

	closed := 0
	for _, p := range procs {
		procName := strings.ToLower(p.name)
		for _, target := range targets {
			if target != "" && strings.Contains(procName, target) {
				if terminateProcess(p.pid) == nil {
					closed++
				}
				break
			}
		}
	}

	if closed == 0 {
		return failure(fmt.Sprintf("No running instances of '%s' found", name))
	}
	return success(fmt.Sprintf("Closed %d instance(s) of %s", closed, name))
}

// launch starts a command detached from the agent.
func launch(command string) error {
	args := launchArgs(command)
	cmd := exec.Command(args[0], args[1:]...)
	setSysProcAttr(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background so it never becomes a zombie.
	go cmd.Wait()
	return nil
}
