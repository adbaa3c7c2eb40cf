package sys

import "os"

var interruptSignals = []os.Signal{os.Interrupt}

func signalName(sig os.Signal) string {
	if sig == os.Interrupt {
		return "SIGINT"
	}
	return sig.String()
}
