// Package clipboardx wraps the system clipboard with fallbacks for
// environments where no clipboard utility is available (headless
// sessions, SSH). An in-process copy always succeeds, so cut/paste
// works inside one editor session no matter what.
package clipboardx

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

var internalClipboard string

// Write stores text in the clipboard. It reports whether any external
// destination (system clipboard or OSC52) accepted it; the in-process
// fallback is updated regardless.
func Write(text string) bool {
	internalClipboard = text
	ok := false
	if err := clipboard.WriteAll(text); err == nil {
		ok = true
	}
	if writeOSC52(text) {
		ok = true
	}
	return ok
}

// Read returns the clipboard content, preferring the system clipboard
// and falling back to the in-process copy.
func Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return internalClipboard
}

// writeOSC52 sends the text to the controlling terminal as an OSC 52
// sequence, which terminals forward to the local clipboard even over
// SSH. Written straight to the tty so it bypasses any screen buffer.
func writeOSC52(text string) bool {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	defer tty.Close()
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err = fmt.Fprintf(tty, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
