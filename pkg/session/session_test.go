package session

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"src.elv.sh/elvcalc/pkg/calc"
	"src.elv.sh/elvcalc/pkg/must"
	"src.elv.sh/elvcalc/pkg/store"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
)

var ruler = strings.Repeat("-", 40) + "\n"

var handleTests = []struct {
	name  string
	lines []string
	want  string
}{
	{
		name:  "addition",
		lines: []string{"5 + 3"},
		want:  "✅ 5.0 + 3.0 = 8.0000\n",
	},
	{
		name:  "multiplication glyph is echoed as ASCII",
		lines: []string{"2 × 3", "9 ÷ 4"},
		want:  "✅ 2.0 * 3.0 = 6.0000\n✅ 9.0 / 4.0 = 2.2500\n",
	},
	{
		name:  "power with fractional exponent",
		lines: []string{"2 ^ 0.5"},
		want:  "✅ 2.0 ^ 0.5 = 1.4142\n",
	},
	{
		name:  "division by zero keeps the session running",
		lines: []string{"10 / 0", "10 / 4"},
		want:  "❌ Error: cannot divide by zero\n✅ 10.0 / 4.0 = 2.5000\n",
	},
	{
		name:  "square root",
		lines: []string{"√16"},
		want:  "✅ √16.0 = 4.0000\n",
	},
	{
		name:  "square root of negative number",
		lines: []string{"√-4"},
		want:  "❌ Error: cannot calculate square root of negative number -4.0\n",
	},
	{
		name:  "sine in degrees",
		lines: []string{"sin(30)"},
		want:  "✅ sin(30.0°) = 0.5000\n",
	},
	{
		name:  "malformed sine",
		lines: []string{"sin(30"},
		want:  "❌ Error: cannot parse \"sin(30\" as function call\n",
	},
	{
		name:  "unknown operator",
		lines: []string{"5 % 3"},
		want:  "❌ Error: unknown operator: %\n",
	},
	{
		name:  "non-numeric operand",
		lines: []string{"five + 3"},
		want:  "❌ Error: cannot parse \"five\" as number\n",
	},
	{
		name:  "wrong token count",
		lines: []string{"5+3", ""},
		want: "❌ Format: '5 + 3' or '√16' or 'sin(30)'\n" +
			"❌ Format: '5 + 3' or '√16' or 'sin(30)'\n",
	},
	{
		name:  "clear on empty history, then history",
		lines: []string{"clear", "history"},
		want:  "✅ History cleared!\nNo calculations yet!\n",
	},
	{
		name:  "history",
		lines: []string{"5 + 3", "2 * 3", "HISTORY"},
		want: "✅ 5.0 + 3.0 = 8.0000\n✅ 2.0 * 3.0 = 6.0000\n" +
			"\n📋 Calculation History:\n" + ruler +
			" 1. 5.0 + 3.0 = 8.0000\n" +
			" 2. 2.0 × 3.0 = 6.0000\n" + ruler,
	},
	{
		name:  "quit",
		lines: []string{"quit"},
		want:  "👋 Thanks for using elvcalc!\n",
	},
	{
		name:  "lines after quit are rejected",
		lines: []string{"q", "1 + 1"},
		want:  "👋 Thanks for using elvcalc!\n❌ Error: session has terminated\n",
	},
}

func TestHandle(t *testing.T) {
	for _, test := range handleTests {
		t.Run(test.name, func(t *testing.T) {
			s := New(store.NewMemStore())
			defer s.Close()
			var sb strings.Builder
			for _, line := range test.lines {
				sb.WriteString(s.Handle(line).Render(false))
			}
			if diff := cmp.Diff(test.want, sb.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandle_HistoryLedger(t *testing.T) {
	for _, kind := range store.Kinds {
		t.Run(kind, func(t *testing.T) {
			st := must.OK1(store.Open(kind, t.TempDir()))
			s := New(st)
			defer s.Close()

			for i := 1; i <= 12; i++ {
				s.Handle(fmt.Sprintf("%d + 1", i))
				// Failed computations are not recorded.
				s.Handle(fmt.Sprintf("%d / 0", i))
			}
			s.Handle("√-1")
			s.Handle("nonsense")
			if n := must.OK1(st.Len()); n != 12 {
				t.Errorf("history has %d entries, want 12", n)
			}

			reply := s.Handle("history")
			if reply.Kind != Listing || len(reply.Entries) != HistoryWindow {
				t.Fatalf("history reply %+v, want listing of %d entries",
					reply, HistoryWindow)
			}
			out := reply.Render(false)
			// The window starts at the third computation, numbered from 1.
			if !strings.Contains(out, " 1. 3.0 + 1.0 = 4.0000\n") ||
				!strings.Contains(out, "10. 12.0 + 1.0 = 13.0000\n") ||
				strings.Contains(out, ". 1.0 + 1.0 =") ||
				strings.Contains(out, ". 2.0 + 1.0 =") ||
				strings.Contains(out, "11. ") {
				t.Errorf("history listing is:\n%s", out)
			}

			s.Handle("clear")
			if n := must.OK1(st.Len()); n != 0 {
				t.Errorf("history has %d entries after clear, want 0", n)
			}
		})
	}
}

func TestHandle_StateTransitions(t *testing.T) {
	s := New(store.NewMemStore())
	if s.State() != Running {
		t.Errorf("new session is %v", s.State())
	}
	s.Handle("10 / 0")
	if s.State() != Running {
		t.Errorf("session is %v after failed computation", s.State())
	}
	if r := s.Handle("Exit"); r.Kind != Farewell || s.State() != Terminated {
		t.Errorf("exit -> %+v, state %v", r, s.State())
	}

	s = New(store.NewMemStore())
	if r := s.Interrupt(); r.Kind != Goodbye || s.State() != Terminated {
		t.Errorf("Interrupt -> %+v, state %v", r, s.State())
	}
	if got := s.Interrupt().Render(false); got != "\n👋 Goodbye!\n" {
		t.Errorf("goodbye renders as %q", got)
	}

	s = New(store.NewMemStore())
	if r := s.EndOfInput(); r.Kind != Farewell || s.State() != Terminated {
		t.Errorf("EndOfInput -> %+v, state %v", r, s.State())
	}
}

func TestHandle_FailureErrors(t *testing.T) {
	s := New(store.NewMemStore())
	var domainErr calc.DomainError
	if r := s.Handle("√-9"); !errors.As(r.Err, &domainErr) || domainErr.Operand != -9 {
		t.Errorf("√-9 -> error %v, want DomainError", r.Err)
	}
	var opErr calc.UnknownOperator
	if r := s.Handle("1 x 2"); !errors.As(r.Err, &opErr) || opErr.Op != "x" {
		t.Errorf("1 x 2 -> error %v, want UnknownOperator", r.Err)
	}
	if r := s.Handle("1 2"); !errors.Is(r.Err, calc.ErrFormat) {
		t.Errorf("1 2 -> error %v, want ErrFormat", r.Err)
	}
	if r := s.Handle("7 / 0"); !errors.Is(r.Err, calc.ErrDivisionByZero) {
		t.Errorf("7 / 0 -> error %v, want ErrDivisionByZero", r.Err)
	}
}

func TestID(t *testing.T) {
	s1, s2 := New(store.NewMemStore()), New(store.NewMemStore())
	id, err := uuid.Parse(s1.ID())
	if err != nil || id.Version() != 7 {
		t.Errorf("ID %q is not a UUIDv7 (error %v)", s1.ID(), err)
	}
	if s1.ID() == s2.ID() {
		t.Errorf("two sessions share ID %q", s1.ID())
	}
}

var errBroken = errors.New("broken store")

// A Store whose every operation fails.
type brokenStore struct{ storedefs.Store }

func (brokenStore) AddEntry(string, float64) (int, error)      { return 0, errBroken }
func (brokenStore) LastEntries(int) ([]storedefs.Entry, error) { return nil, errBroken }
func (brokenStore) Clear() error                               { return errBroken }
func (brokenStore) Close() error                               { return nil }

func TestHandle_StoreErrors(t *testing.T) {
	s := New(brokenStore{})
	defer s.Close()
	for _, line := range []string{"1 + 1", "√4", "history", "clear"} {
		r := s.Handle(line)
		if r.Kind != Failure || !errors.Is(r.Err, errBroken) {
			t.Errorf("%q -> %+v, want failure with store error", line, r)
		}
	}
	if s.State() != Running {
		t.Errorf("store errors terminated the session")
	}
}

func TestRender_Color(t *testing.T) {
	got := Reply{Kind: Success, Text: "1.0 + 1.0 = 2.0000"}.Render(true)
	if want := "\033[32m✅ 1.0 + 1.0 = 2.0000\033[m\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got = Reply{Kind: Failure, Err: calc.ErrDivisionByZero}.Render(true)
	if want := "\033[31m❌ Error: cannot divide by zero\033[m\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
