package shell

import (
	"fmt"
	"io"
	"os"

	"src.elv.sh/elvcalc/pkg/session"
	"src.elv.sh/elvcalc/pkg/sys"
	"src.elv.sh/elvcalc/pkg/ui"
)

// Can be overridden in tests.
var notifyInterrupts = sys.NotifyInterrupts

// Configuration for the interactive mode.
type interactCfg struct {
	Prompt string
	Banner bool
	Color  bool
}

type readResult struct {
	line string
	err  error
}

// Runs the read loop until the session terminates, the input ends, or an
// interrupt signal arrives. The prompt and the banner are only shown when
// stdin is a terminal.
func interact(fds [3]*os.File, sess *session.Session, cfg *interactCfg) {
	prompt := ""
	if sys.IsATTY(fds[0].Fd()) {
		if cfg.Banner {
			fmt.Fprint(fds[1], banner(cfg.Color))
		}
		prompt = "\n" + cfg.Prompt
	}
	ed := newLineReader(fds[0], fds[1], prompt)

	sigCh, stop := notifyInterrupts()
	defer stop()

	// Lines are read in a separate goroutine so that an interrupt can end the
	// session while a read is blocked. A line is only read when requested on
	// next, so that the prompt never runs ahead of the output.
	next := make(chan struct{})
	results := make(chan readResult, 1)
	defer close(next)
	go func() {
		for range next {
			line, err := ed.ReadLine()
			results <- readResult{line, err}
		}
	}()

	for sess.State() == session.Running {
		next <- struct{}{}
		var reply session.Reply
		select {
		case res := <-results:
			switch {
			case res.err == io.EOF:
				reply = sess.EndOfInput()
			case res.err != nil:
				logger.Printf("session %s: read: %v", sess.ID(), res.err)
				fmt.Fprintln(fds[2], "Cannot read input:", res.err)
				reply = sess.EndOfInput()
			default:
				reply = sess.Handle(res.line)
			}
		case sig := <-sigCh:
			logger.Printf("session %s: received %s", sess.ID(), sys.SignalName(sig))
			reply = sess.Interrupt()
		}
		fmt.Fprint(fds[1], reply.Render(cfg.Color))
	}
}

func banner(color bool) string {
	return ui.T("🧮 elvcalc", ui.Bold).Render(color) + "\n" +
		"Enter 'quit' to exit, 'history' for history, 'clear' to clear history\n" +
		"Supports: +, -, ×, ÷, ^, √, sin(degrees)\n"
}
