package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// osc52Out receives the OSC 52 sequence when no system clipboard exists.
var osc52Out io.Writer = os.Stderr

// copyToClipboard copies text to the system clipboard, falling back to an
// OSC 52 escape for terminals over SSH or without xclip/xsel.
func copyToClipboard(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}

	if _, err := osc52.New(text).WriteTo(osc52Out); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
