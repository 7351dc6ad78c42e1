package plugin

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// notify posts a macOS notification through osascript. It works under
// every host flavor; SwiftBar users may prefer the richer
// swiftbar.Notification.
func notify(title, body string) error {
	script := fmt.Sprintf("display notification %q with title %q sound name %q",
		body, title, "Funky")
	return exec.Command("osascript", "-e", script).Run()
}

func pluginTitle() string {
	exe, err := os.Executable()
	if err != nil {
		return "bitbar plugin"
	}
	return filepath.Base(exe)
}
