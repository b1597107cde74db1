package automation

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// NormalizeURL prefixes https:// when the URL carries no scheme.
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}

// OpenWebsite opens a URL in the platform's default browser.
func (l *Local) OpenWebsite(url string) Outcome {
	url = NormalizeURL(url)
	if url == "https://" {
		return failure("no URL given")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return failure(fmt.Sprintf("Failed to open %s: %v", url, err))
	}
	go cmd.Wait()

	return success(fmt.Sprintf("Opened %s", url))
}
