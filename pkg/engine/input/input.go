package input

import (
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	// Read second byte
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		// Read third byte (the actual key code)
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		// Unknown escape sequence - discard it
		return ""
	}

	// A bare ESC followed by a non-sequence byte: treat as escape
	return "escape"
}

// ReadKey reads a single key press from stdin and returns its raw code
// (e.g. "space", "enter", "arrow_up", "q"). The terminal is put into raw
// mode only for the duration of the read so normal printing still works
// between reads. Ctrl+C exits the process.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	// Escape sequences (arrows) and bare escape
	if b == 0x1b {
		if code := tryReadArrowKey(b); code != "" {
			return code
		}
		return "escape"
	}

	// Ctrl+C
	if b == 3 {
		term.Restore(int(os.Stdin.Fd()), oldState)
		os.Exit(0)
	}

	switch b {
	case ' ':
		return "space"
	case '\n', '\r':
		return "enter"
	}

	// Printable characters map to their lowercase form
	if b >= 32 && b < 127 {
		return strings.ToLower(string(b))
	}

	return ""
}

// ReadIntent reads one key press from the terminal and maps it through the
// tiered input layers to a high-level Intent.
func ReadIntent() Intent {
	raw := RawInput{Device: DeviceTerminal, Code: ReadKey()}
	return MapToIntent(NewDebouncedInput(raw))
}
