//go:build !linux && !darwin && !windows

package automation

import "fmt"

func injectText(text string) error {
	return fmt.Errorf("keyboard automation not available on this platform")
}

func injectKey(parts []string) error {
	return fmt.Errorf("keyboard automation not available on this platform")
}
