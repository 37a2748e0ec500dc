package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiChoice is the presentation Run settled on, plus a line to show the player
// when the requested one was unavailable.
type uiChoice struct {
	interactive bool
	notice      string
}

// stdoutIsTTY is replaced in tests.
var stdoutIsTTY = writerIsTTY

// chooseUI maps the -ui value to a presentation. The empty mode means auto.
func chooseUI(mode string, out io.Writer) (uiChoice, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", uiAuto:
		return uiChoice{interactive: stdoutIsTTY(out)}, nil
	case uiLive:
		if stdoutIsTTY(out) {
			return uiChoice{interactive: true}, nil
		}
		return uiChoice{notice: "The interactive quiz needs a terminal; playing in plain mode."}, nil
	case uiPlain:
		return uiChoice{}, nil
	}
	return uiChoice{}, fmt.Errorf("invalid ui mode %q: want %s, %s or %s", mode, uiAuto, uiLive, uiPlain)
}

func writerIsTTY(out io.Writer) bool {
	file, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}
