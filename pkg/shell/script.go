package shell

import (
	"fmt"
	"os"

	"src.elv.sh/elvcalc/pkg/session"
	"src.elv.sh/elvcalc/pkg/sys"
)

// Handles each argument as one line of input, stopping early if the session
// terminates. It returns 2 if any line failed, and 0 otherwise. An interrupt
// ends the session before the next line, and the exit status is then 0.
func script(fds [3]*os.File, sess *session.Session, lines []string, color bool) int {
	sigCh, stop := notifyInterrupts()
	defer stop()

	exit := 0
	for _, line := range lines {
		select {
		case sig := <-sigCh:
			logger.Printf("session %s: received %s", sess.ID(), sys.SignalName(sig))
			fmt.Fprint(fds[1], sess.Interrupt().Render(color))
			return 0
		default:
		}
		reply := sess.Handle(line)
		fmt.Fprint(fds[1], reply.Render(color))
		if reply.Kind == session.Failure {
			exit = 2
		}
		if sess.State() == session.Terminated {
			break
		}
	}
	return exit
}
