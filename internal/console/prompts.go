package console

import (
	"fmt"
	"io"
	"strings"

	"ethela-storefront/internal/manager"
)

type writerNotifier struct {
	w io.Writer
}

func (n writerNotifier) Notify(note manager.Notification) {
	switch note.Level {
	case manager.LevelError:
		fmt.Fprintf(n.w, "✗ %s: %s\n", note.Title, note.Description)
	default:
		if note.Description != "" {
			fmt.Fprintf(n.w, "✓ %s: %s\n", note.Title, note.Description)
			return
		}
		fmt.Fprintf(n.w, "✓ %s\n", note.Title)
	}
}

// promptConfirmer asks on the console unless assumeYes is set.
type promptConfirmer struct {
	a         *app
	assumeYes bool
}

func (c promptConfirmer) Confirm(prompt string) bool {
	if c.assumeYes {
		return true
	}
	answer, err := c.a.readLine(prompt + " [y/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
