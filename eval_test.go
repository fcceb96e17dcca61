package picol_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/picol-go/picol"
)

func evalOK(t *testing.T, i *picol.Interp, src string) string {
	t.Helper()
	status, err := i.Eval(src)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", src, err)
	}
	if status != picol.OK {
		t.Fatalf("Eval(%q) returned status %s, want OK", src, status)
	}
	return i.Result()
}

func TestArithmeticAndVariables(t *testing.T) {
	i := picol.New()
	if got := evalOK(t, i, "set x [+ 2 2]"); got != "4" {
		t.Errorf("got %q, want 4", got)
	}
	if got := evalOK(t, i, "set y [* $x 3]"); got != "12" {
		t.Errorf("got %q, want 12", got)
	}
}

func TestMidWordDollarOutsideQuotesIsLiteral(t *testing.T) {
	i := picol.New()
	i.SetVar("x", "999")
	if got := evalOK(t, i, "set y abc$x"); got != "abc$x" {
		t.Errorf("got %q, want literal \"abc$x\"", got)
	}
}

func TestPutsWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	i := picol.New()
	i.SetOutput(&buf)
	if _, err := i.Eval(`puts "hello world"`); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if buf.String() != "hello world\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPutsDiscardedByDefault(t *testing.T) {
	i := picol.New()
	if _, err := i.Eval("puts unseen"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
}

func TestIfElse(t *testing.T) {
	i := picol.New()
	if got := evalOK(t, i, `if {== 1 1} { set r yes } else { set r no }`); got != "yes" {
		t.Errorf("got %q, want yes", got)
	}
	if got := evalOK(t, i, `if {== 1 2} { set r yes } else { set r no }`); got != "no" {
		t.Errorf("got %q, want no", got)
	}
}

func TestWhileLoopWithBreak(t *testing.T) {
	var buf bytes.Buffer
	i := picol.New()
	i.SetOutput(&buf)
	script := `
set i 0
set total 0
while {< $i 10} {
	set i [+ $i 1]
	if {== $i 5} { break }
	set total [+ $total $i]
}
puts $total
`
	if _, err := i.Eval(script); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "10" {
		t.Errorf("got %q, want 10 (1+2+3+4)", got)
	}
}

func TestProcDefinitionAndCall(t *testing.T) {
	i := picol.New()
	if _, err := i.Eval(`proc sq {n} { return [* $n $n] }`); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := evalOK(t, i, "sq 7"); got != "49" {
		t.Errorf("got %q, want 49", got)
	}
}

func TestProcArityMismatch(t *testing.T) {
	i := picol.New()
	if _, err := i.Eval(`proc add {a b} { return [+ $a $b] }`); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	status, err := i.Eval("add 1")
	if status != picol.ERR || err == nil {
		t.Fatalf("expected ERR with an error, got status=%s err=%v", status, err)
	}
}

func TestCommandNotFound(t *testing.T) {
	i := picol.New()
	status, err := i.Eval("nope 1 2")
	if status != picol.ERR {
		t.Fatalf("expected ERR, got %s", status)
	}
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected error mentioning command name, got %v", err)
	}
}

func TestVariableNotFound(t *testing.T) {
	i := picol.New()
	status, _ := i.Eval("puts $nope")
	if status != picol.ERR {
		t.Fatalf("expected ERR, got %s", status)
	}
}

func TestRegisterAlreadyDefined(t *testing.T) {
	i := picol.New()
	err := i.RegisterCommand("puts", func(i *picol.Interp, argv []string, priv any) picol.Status {
		return picol.OK
	})
	if err == nil {
		t.Fatal("expected error registering an already-defined command")
	}
}

func TestCallFrameIsolation(t *testing.T) {
	// A proc's local variables do not leak into, or see, the caller's frame
	// (no lexical parent traversal — lookup only ever checks the top frame).
	i := picol.New()
	if _, err := i.Eval("set x global"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if _, err := i.Eval(`proc f {} { return $x }`); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	status, _ := i.Eval("f")
	if status != picol.ERR {
		t.Fatalf("expected the proc body to fail to see the caller's x, got %s", status)
	}
}

func TestDivisionByZero(t *testing.T) {
	i := picol.New()
	status, err := i.Eval("/ 1 0")
	if status != picol.ERR || err == nil {
		t.Fatalf("expected ERR, got status=%s err=%v", status, err)
	}
}

func TestDigitsOnlyIntegerRejectsSign(t *testing.T) {
	i := picol.New()
	status, _ := i.Eval("+ -1 2")
	if status != picol.ERR {
		t.Fatalf("expected ERR for a signed literal, got %s", status)
	}
}
