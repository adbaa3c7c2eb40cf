// Package shell is the entry point for the terminal interface of elvcalc.
package shell

import (
	"fmt"
	"os"

	"src.elv.sh/elvcalc/pkg/logutil"
	"src.elv.sh/elvcalc/pkg/prog"
	"src.elv.sh/elvcalc/pkg/session"
	"src.elv.sh/elvcalc/pkg/store"
	"src.elv.sh/elvcalc/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It is always suitable, and should be the
// last subprogram in a composite program.
type Program struct {
	codeInArg bool
	rc        string
	store     string
	color     string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c",
		false, "take expressions from command-line arguments, one per argument")
	fs.StringVar(&p.rc, "rc", "", "path to a YAML settings file")
	fs.StringVar(&p.store, "store",
		"", "history store to use, one of memory (default) or bolt")
	fs.StringVar(&p.color, "color",
		"", "when to color output, one of auto (default), always or never")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 && !p.codeInArg {
		return prog.BadUsage("arguments are only supported with -c")
	}

	settings, err := LoadSettings(p.rc)
	if err != nil {
		return err
	}
	settings = settings.override(Settings{Store: p.store, Color: p.color})
	if err := settings.validate(); err != nil {
		return prog.BadUsage(err.Error())
	}

	st, err := store.Open(settings.Store, "")
	if err != nil {
		return fmt.Errorf("cannot open history store: %w", err)
	}
	sess := session.New(st)
	defer func() {
		if err := sess.Close(); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		}
	}()

	color := useColor(settings.Color, fds[1])
	logger.Printf("session %s: store %s, color %v", sess.ID(), settings.Store, color)

	if p.codeInArg {
		return prog.Exit(script(fds, sess, args, color))
	}
	interact(fds, sess, &interactCfg{
		Prompt: settings.Prompt, Banner: settings.Banner, Color: color})
	return nil
}

func useColor(mode string, out *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return sys.IsATTY(out.Fd())
	}
}
