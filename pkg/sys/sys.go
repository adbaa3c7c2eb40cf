// Package sys provide system utilities with the same API across OSes.
package sys

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 16

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifyInterrupts returns a channel on which signals that request the
// termination of an interactive session are delivered, and a function that
// stops the delivery.
func NotifyInterrupts() (<-chan os.Signal, func()) {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh, interruptSignals...)
	return sigCh, func() { signal.Stop(sigCh) }
}

// SignalName returns the conventional name of a signal, like "SIGINT".
func SignalName(sig os.Signal) string { return signalName(sig) }
