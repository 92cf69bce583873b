package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// goos is swappable in tests to exercise the per-platform branches.
var goos = func() string { return runtime.GOOS }

// OpenBrowser opens url in the default system browser. Backs the
// 'artists open' command, which points it at an artist's profile page.
//
// Supports macOS, Linux, and Windows.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch os := goos(); os {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", os)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
