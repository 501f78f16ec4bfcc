// Package browser opens URLs in the user's default browser, fire-and-forget.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the platform's URL handler. The caller relies on no return
// contract beyond "the attempt was made"; the spawned process is not waited
// on.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
