// tcl-tester is the interpreter's interactive REPL and script runner. It is
// also the host process the harness module drives: when run under the
// harness it reports its outcome on fd 3 in addition to stdout/stderr.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/picol-go/picol"
)

func main() {
	var traceParser, parserOnly, help bool

	var file string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-t", "--trace-parser":
			traceParser = true
		case "-p", "--parser-only":
			parserOnly = true
		case "-h", "--help":
			help = true
		default:
			file = arg
		}
	}

	if help {
		printUsage()
		return
	}

	var source []byte
	var err error
	interactive := file == ""

	if file != "" {
		source, err = os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", file, err)
			os.Exit(1)
		}
		interactive = false
	} else {
		stat, _ := os.Stdin.Stat()
		interactive = (stat.Mode() & os.ModeCharDevice) != 0
		if !interactive {
			source, err = io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error reading stdin: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if parserOnly {
		if interactive {
			fmt.Fprintln(os.Stderr, "error: --parser-only requires a file or piped script")
			os.Exit(1)
		}
		runParserOnly(string(source))
		return
	}

	interp := picol.New()
	interp.SetOutput(os.Stdout)
	if traceParser {
		interp.SetTrace(os.Stderr)
	}
	registerTestCommands(interp)

	if interactive {
		runREPL(interp)
		return
	}

	runScript(interp, string(source))
}

func printUsage() {
	fmt.Println(`tcl-tester [-t|--trace-parser] [-p|--parser-only] [file]

Runs file, or stdin if no file is given and stdin is not a terminal.
With no file and an interactive terminal, starts a REPL instead.

  -t, --trace-parser   write one JSON trace line per token to stderr
  -p, --parser-only     lex the input and print one plain-text line per token
                        (kind, begin, end, quoted body), without evaluating
  -h, --help            show this message`)
}

func runParserOnly(source string) {
	lex := picol.NewLexer(source)
	for {
		tok := lex.NextToken()
		fmt.Printf("%s %d %d %q\n", tok.Kind, tok.Begin, tok.End, tok.Body(source))
		if tok.Kind == picol.KindEOF {
			return
		}
	}
}

// registerTestCommands installs two host commands beyond the built-in
// library: say-hello and echo.
func registerTestCommands(i *picol.Interp) {
	i.RegisterCommand("say-hello", func(i *picol.Interp, argv []string, _ any) picol.Status {
		fmt.Fprintln(os.Stdout, "hello")
		i.SetResult("")
		return picol.OK
	})
	i.RegisterCommand("echo", func(i *picol.Interp, argv []string, _ any) picol.Status {
		for idx, arg := range argv[1:] {
			if idx > 0 {
				fmt.Fprint(os.Stdout, " ")
			}
			fmt.Fprint(os.Stdout, arg)
		}
		fmt.Fprintln(os.Stdout)
		i.SetResult("")
		return picol.OK
	})
}

func runREPL(i *picol.Interp) {
	editor := NewLineEditor()
	if err := editor.enterRawMode(); err != nil {
		// Not a real terminal (e.g. piped through another program that
		// still reports as a TTY stat); fall back to line-buffered input.
		runLineBufferedREPL(i)
		return
	}
	defer editor.exitRawMode()

	var buffer string
	for {
		prompt := "% "
		if buffer != "" {
			prompt = "> "
		}
		line, err := editor.ReadLine(prompt)
		if err == errEOF {
			return
		}
		if buffer != "" {
			buffer += "\n" + line
		} else {
			buffer = line
		}
		if buffer == "" {
			continue
		}
		if picol.NeedsMoreInput(buffer) {
			continue
		}

		editor.remember(buffer)
		status, evalErr := i.Eval(buffer)
		if evalErr != nil {
			fmt.Printf("error: %s\r\n", evalErr.Error())
		} else if status == picol.OK && i.Result() != "" {
			fmt.Printf("%s\r\n", i.Result())
		}
		buffer = ""
	}
}

// runLineBufferedREPL is the fallback REPL used when stdin cannot be put
// into raw mode: no line editing, but still supports multi-line
// continuation via a bufio.Scanner.
func runLineBufferedREPL(i *picol.Interp) {
	scanner := bufio.NewScanner(os.Stdin)
	var buffer string

	for {
		if buffer == "" {
			fmt.Print("% ")
		} else {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if buffer != "" {
			buffer += "\n" + line
		} else {
			buffer = line
		}
		if picol.NeedsMoreInput(buffer) {
			continue
		}

		status, err := i.Eval(buffer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		} else if status == picol.OK && i.Result() != "" {
			fmt.Println(i.Result())
		}
		buffer = ""
	}
}

func runScript(i *picol.Interp, source string) {
	status, err := i.Eval(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		writeHarnessResult(picol.ERR.String(), "", err.Error())
		os.Exit(1)
	}

	result := i.Result()
	if result != "" {
		fmt.Println(result)
	}

	writeHarnessResult(status.String(), result, "")
}

// writeHarnessResult writes the fd-3 line protocol the harness module's
// runner reads (PICOL_IN_HARNESS=1 gates it so a standalone run over a
// terminal never touches fd 3). The reported status is always a
// picol.Status string (OK, ERR, RETURN, BREAK, CONTINUE).
func writeHarnessResult(status, result, errorMsg string) {
	if os.Getenv("PICOL_IN_HARNESS") != "1" {
		return
	}
	f := os.NewFile(3, "harness")
	if f == nil {
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "return: %s\n", status)
	if result != "" {
		fmt.Fprintf(w, "result: %s\n", result)
	}
	if errorMsg != "" {
		fmt.Fprintf(w, "error: %s\n", errorMsg)
	}
	w.Flush()
}
