package session

import (
	"errors"
	"fmt"
	"strings"

	"src.elv.sh/elvcalc/pkg/calc"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
	"src.elv.sh/elvcalc/pkg/ui"
)

// Kind is the kind of a Reply.
type Kind int

// Possible values of Kind.
const (
	// A computation or command succeeded; Text describes the outcome.
	Success Kind = iota
	// The input could not be handled; Err is the reason.
	Failure
	// Text is an informational message.
	Notice
	// Entries is a window of the history.
	Listing
	// The session was ended by a quit command or the end of input.
	Farewell
	// The session was ended by an interrupt.
	Goodbye
)

// Reply is the response of a Session to one line of input.
type Reply struct {
	Kind    Kind
	Text    string
	Err     error
	Entries []storedefs.Entry
}

const rulerWidth = 40

// Render renders the reply as one or more lines of text, each terminated by
// "\n". The reply is styled with VT escape sequences if color is true.
func (r Reply) Render(color bool) string {
	var sb strings.Builder
	line := func(t ui.Text) {
		sb.WriteString(t.Render(color))
		sb.WriteByte('\n')
	}
	switch r.Kind {
	case Success:
		line(ui.T("✅ "+r.Text, ui.FgGreen))
	case Failure:
		line(ui.T("❌ "+failureMessage(r.Err), ui.FgRed))
	case Notice:
		line(ui.T(r.Text))
	case Listing:
		sb.WriteByte('\n')
		line(ui.T("📋 Calculation History:", ui.Bold))
		ruler := ui.T(strings.Repeat("-", rulerWidth), ui.Dim)
		line(ruler)
		for i, entry := range r.Entries {
			line(ui.T(fmt.Sprintf("%2d. %s = ", i+1, entry.Label)).
				Concat(ui.T(calc.FormatResult(entry.Result), ui.FgCyan)))
		}
		line(ruler)
	case Farewell:
		line(ui.T("👋 Thanks for using elvcalc!"))
	case Goodbye:
		sb.WriteByte('\n')
		line(ui.T("👋 Goodbye!"))
	}
	return sb.String()
}

func failureMessage(err error) string {
	if errors.Is(err, calc.ErrFormat) {
		// The hint stands on its own.
		msg := calc.ErrFormat.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	return "Error: " + err.Error()
}
