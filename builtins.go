package picol

import (
	"fmt"
	"strconv"
)

// registerBuiltins installs the core command library into a freshly
// constructed Interp. Arity is checked up front in each built-in, before
// any side effect, so a failing call never partially executes.
func (i *Interp) registerBuiltins() {
	i.registerCommand("puts", builtinPuts, nil)
	i.registerCommand("set", builtinSet, nil)
	i.registerCommand("if", builtinIf, nil)
	i.registerCommand("while", builtinWhile, nil)
	i.registerCommand("break", builtinBreak, nil)
	i.registerCommand("continue", builtinContinue, nil)
	i.registerCommand("proc", builtinProc, nil)
	i.registerCommand("return", builtinReturn, nil)

	for _, op := range []string{"+", "-", "*", "/", "==", "!=", "<", ">", "<=", ">="} {
		i.registerCommand(op, builtinMath, nil)
	}
}

func arityError(i *Interp, name string, min, max int) Status {
	if min == max {
		i.result = fmt.Sprintf("wrong number of args for %s (expected %d)", name, min)
	} else {
		i.result = fmt.Sprintf("wrong number of args for %s (expected %d to %d)", name, min, max)
	}
	return ERR
}

func checkArity(i *Interp, argv []string, min, max int) bool {
	if len(argv) < min || len(argv) > max {
		arityError(i, argv[0], min, max)
		return false
	}
	return true
}

// parseInt accepts only a non-empty run of ASCII digits: no sign, no
// leading/trailing whitespace. This is a known limitation, not a bug.
func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for j := 0; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truthy mirrors the lenient C atoi a condition's result is fed through by
// if/while: leading blanks are skipped, then an optional sign and a run of
// digits are read and anything after them is ignored; no digits at all
// yields false.
func truthy(s string) bool {
	j := 0
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	neg := false
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		neg = s[j] == '-'
		j++
	}
	start := j
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == start {
		return false
	}
	n, err := strconv.ParseInt(s[start:j], 10, 64)
	if err != nil {
		return n != 0
	}
	if neg {
		n = -n
	}
	return n != 0
}

func builtinPuts(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 2, 2) {
		return ERR
	}
	fmt.Fprintln(i.output, argv[1])
	i.result = ""
	return OK
}

func builtinSet(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 3, 3) {
		return ERR
	}
	i.SetVar(argv[1], argv[2])
	i.result = argv[2]
	return OK
}

func builtinIf(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 3, 5) {
		return ERR
	}
	status := i.eval(argv[1])
	if status != OK {
		return status
	}
	if truthy(i.result) {
		return i.eval(argv[2])
	}
	if len(argv) == 5 {
		return i.eval(argv[4])
	}
	return OK
}

func builtinWhile(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 3, 3) {
		return ERR
	}
	for {
		status := i.eval(argv[1])
		if status != OK {
			return status
		}
		if !truthy(i.result) {
			return OK
		}
		status = i.eval(argv[2])
		switch status {
		case OK, Continue:
			// loop again
		case Break:
			return OK
		default:
			return status
		}
	}
}

func builtinBreak(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 1, 1) {
		return ERR
	}
	return Break
}

func builtinContinue(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 1, 1) {
		return ERR
	}
	return Continue
}

type procPriv struct {
	args string
	body string
}

func builtinProc(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 4, 4) {
		return ERR
	}
	name := argv[1]
	pd := &procPriv{args: argv[2], body: argv[3]}
	if err := i.registerCommand(name, callProc, pd); err != nil {
		i.result = err.Error()
		return ERR
	}
	i.result = ""
	return OK
}

func builtinReturn(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 1, 2) {
		return ERR
	}
	if len(argv) == 2 {
		i.result = argv[1]
	} else {
		i.result = ""
	}
	return Return
}

// callProc is the procedure-call shim: push a frame, bind formals to
// actuals by position, run the body, fold RETURN back to OK, pop the frame.
func callProc(i *Interp, argv []string, priv any) Status {
	pd := priv.(*procPriv)

	formals := splitFormalArgs(pd.args)
	actuals := argv[1:]

	if len(formals) != len(actuals) {
		i.result = fmt.Sprintf("wrong number of arguments for %s got %d expected %d", argv[0], len(argv), len(formals))
		return ERR
	}

	i.pushFrame()
	for idx, name := range formals {
		i.SetVar(name, actuals[idx])
	}

	status := i.eval(pd.body)
	if status == Return {
		status = OK
	}

	i.popFrame()
	return status
}

// splitFormalArgs tokenizes a proc's formal-argument list: a run of spaces
// separates names, with no quoting and no support for any other whitespace
// byte.
func splitFormalArgs(s string) []string {
	var out []string
	j := 0
	for j < len(s) {
		for j < len(s) && s[j] == ' ' {
			j++
		}
		start := j
		for j < len(s) && s[j] != ' ' {
			j++
		}
		if j > start {
			out = append(out, s[start:j])
		}
	}
	return out
}

func builtinMath(i *Interp, argv []string, _ any) Status {
	if !checkArity(i, argv, 3, 3) {
		return ERR
	}
	a, ok := parseInt(argv[1])
	if !ok {
		i.result = fmt.Sprintf("expected integer but got '%s'", argv[1])
		return ERR
	}
	b, ok := parseInt(argv[2])
	if !ok {
		i.result = fmt.Sprintf("expected integer but got '%s'", argv[2])
		return ERR
	}

	switch argv[0] {
	case "+":
		i.result = strconv.FormatInt(a+b, 10)
	case "-":
		i.result = strconv.FormatInt(a-b, 10)
	case "*":
		i.result = strconv.FormatInt(a*b, 10)
	case "/":
		if b == 0 {
			i.result = "division by zero"
			return ERR
		}
		i.result = strconv.FormatInt(a/b, 10)
	case "==":
		i.result = boolStr(a == b)
	case "!=":
		i.result = boolStr(a != b)
	case "<":
		i.result = boolStr(a < b)
	case ">":
		i.result = boolStr(a > b)
	case "<=":
		i.result = boolStr(a <= b)
	case ">=":
		i.result = boolStr(a >= b)
	default:
		i.result = fmt.Sprintf("unknown operator: '%s'", argv[0])
		return ERR
	}
	return OK
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
