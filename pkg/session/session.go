// Package session implements a calculator session: the history ledger of the
// session, and the handling of one line of input at a time.
package session

import (
	"errors"

	"github.com/google/uuid"
	"src.elv.sh/elvcalc/pkg/calc"
	"src.elv.sh/elvcalc/pkg/logutil"
	"src.elv.sh/elvcalc/pkg/parse"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[session] ")

// HistoryWindow is the maximum number of entries shown by the history command.
const HistoryWindow = 10

// State is the state of a Session.
type State int

// Possible values of State.
const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// ErrTerminated is reported when a line is handled after the session has
// terminated.
var ErrTerminated = errors.New("session has terminated")

// Session is a calculator session. It is not safe for concurrent use.
type Session struct {
	id    string
	store storedefs.Store
	state State
}

// New creates a Session that records its history in the given Store. The
// Session takes ownership of the Store and closes it in Close.
func New(store storedefs.Store) *Session {
	s := &Session{id: uuid.Must(uuid.NewV7()).String(), store: store}
	logger.Printf("session %s started", s.id)
	return s
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string { return s.id }

// State returns the state of the session.
func (s *Session) State() State { return s.state }

// Handle handles one line of input. Errors caused by the input are reported
// in the Reply and never terminate the session.
func (s *Session) Handle(line string) Reply {
	if s.state == Terminated {
		return failure(ErrTerminated)
	}
	node, err := parse.Parse(line)
	if err != nil {
		logger.Printf("session %s: parse %q: %v", s.id, line, err)
		return failure(err)
	}
	switch node := node.(type) {
	case *parse.Command:
		return s.command(node.Name)
	case *parse.Call:
		var r calc.Result
		switch node.Func {
		case parse.Sqrt:
			r, err = calc.Sqrt(node.Arg)
		case parse.Sin:
			r = calc.Sin(node.Arg)
		}
		if err != nil {
			return failure(err)
		}
		return s.record(r, r.Label)
	case *parse.Expr:
		r, err := calc.Apply(node.Op, node.Left, node.Right)
		if err != nil {
			return failure(err)
		}
		return s.record(r,
			calc.FormatNum(node.Left)+" "+node.Op+" "+calc.FormatNum(node.Right))
	}
	panic("unreachable")
}

// Interrupt terminates the session in response to an interrupt signal.
func (s *Session) Interrupt() Reply {
	s.state = Terminated
	logger.Printf("session %s interrupted", s.id)
	return Reply{Kind: Goodbye}
}

// EndOfInput terminates the session when there is no more input.
func (s *Session) EndOfInput() Reply {
	s.state = Terminated
	logger.Printf("session %s reached end of input", s.id)
	return Reply{Kind: Farewell}
}

// Close releases the history store of the session.
func (s *Session) Close() error {
	logger.Printf("session %s closed", s.id)
	return s.store.Close()
}

func (s *Session) command(name string) Reply {
	switch name {
	case parse.Quit:
		s.state = Terminated
		logger.Printf("session %s quit", s.id)
		return Reply{Kind: Farewell}
	case parse.History:
		entries, err := s.store.LastEntries(HistoryWindow)
		if err != nil {
			logger.Printf("session %s: read history: %v", s.id, err)
			return failure(err)
		}
		if len(entries) == 0 {
			return Reply{Kind: Notice, Text: "No calculations yet!"}
		}
		return Reply{Kind: Listing, Entries: entries}
	case parse.Clear:
		if err := s.store.Clear(); err != nil {
			logger.Printf("session %s: clear history: %v", s.id, err)
			return failure(err)
		}
		return Reply{Kind: Success, Text: "History cleared!"}
	}
	panic("unreachable")
}

// Records a result in the history, and returns a reply with the given echo
// of the computation.
func (s *Session) record(r calc.Result, echo string) Reply {
	if _, err := s.store.AddEntry(r.Label, r.Value); err != nil {
		logger.Printf("session %s: add history entry: %v", s.id, err)
		return failure(err)
	}
	return Reply{Kind: Success, Text: echo + " = " + calc.FormatResult(r.Value)}
}

func failure(err error) Reply { return Reply{Kind: Failure, Err: err} }
