package picol_test

import (
	"errors"
	"testing"

	"github.com/picol-go/picol"
)

func TestRegisterPlainFunction(t *testing.T) {
	i := picol.New()
	if err := i.Register("double", func(x int) int { return x * 2 }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got := evalOK(t, i, "double 21"); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
}

func TestRegisterWithError(t *testing.T) {
	i := picol.New()
	err := i.Register("checked", func(s string) (string, error) {
		if s == "bad" {
			return "", errors.New("rejected")
		}
		return s, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got := evalOK(t, i, "checked ok"); got != "ok" {
		t.Errorf("got %q, want ok", got)
	}

	status, evalErr := i.Eval("checked bad")
	if status != picol.ERR || evalErr == nil {
		t.Fatalf("expected ERR, got status=%s err=%v", status, evalErr)
	}
}

func TestRegisterArityMismatch(t *testing.T) {
	i := picol.New()
	if err := i.Register("add", func(a, b int) int { return a + b }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	status, err := i.Eval("add 1")
	if status != picol.ERR || err == nil {
		t.Fatalf("expected ERR, got status=%s err=%v", status, err)
	}
}

func TestRegisterRejectsUnsupportedType(t *testing.T) {
	i := picol.New()
	err := i.Register("avg", func(xs []int) int { return 0 })
	if err == nil {
		t.Fatal("expected Register to reject a slice parameter")
	}
}
