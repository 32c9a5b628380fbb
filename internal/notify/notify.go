// ABOUTME: User-facing notification sink for critical storage failures
// ABOUTME: Writes bold colored messages to stderr so they survive piped output

package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints notifications to a writer, stderr by default.
type Console struct {
	Out io.Writer
}

// NewConsole creates a stderr-backed console notifier.
func NewConsole() *Console {
	return &Console{Out: os.Stderr}
}

// Notify prints a titled warning.
func (c *Console) Notify(title, message string) {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	bold := color.New(color.Bold, color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", bold("⚠ "+title+":"), message)
}
