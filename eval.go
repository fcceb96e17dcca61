package picol

import "fmt"

// eval is the internal recursive evaluator shared by top-level Eval, command
// substitution, and every built-in that runs a sub-script (if/while bodies,
// proc bodies). It resets the result slot, drives a Lexer across source,
// substitutes VAR/CMD tokens, accumulates argv per statement using the
// word-accumulation rule, and dispatches through the command table.
func (i *Interp) eval(source string) Status {
	i.result = ""

	lex := NewLexer(source)
	lex.trace = i.trace

	var argv []string
	prev := KindEOL

	for {
		tok := lex.NextToken()
		body := tok.Body(source)

		switch tok.Kind {
		case KindEOF:
			return OK

		case KindVar:
			val, ok := i.GetVar(body)
			if !ok {
				i.result = fmt.Sprintf("variable not found: '%s'", body)
				return ERR
			}
			body = val

		case KindCmd:
			status := i.eval(body)
			if status != OK {
				return status
			}
			body = i.result

		case KindSep:
			prev = tok.Kind
			continue

		case KindEOL:
			if len(argv) > 0 {
				status := i.dispatch(argv)
				if status != OK {
					return status
				}
			}
			argv = nil
			prev = tok.Kind
			continue
		}

		if prev == KindSep || prev == KindEOL {
			argv = append(argv, body)
		} else {
			argv[len(argv)-1] += body
		}
		prev = tok.Kind
	}
}

func (i *Interp) dispatch(argv []string) Status {
	cmd, ok := i.lookupCommand(argv[0])
	if !ok {
		i.result = fmt.Sprintf("command not found: '%s'", argv[0])
		return ERR
	}
	return cmd.fn(i, argv, cmd.priv)
}
