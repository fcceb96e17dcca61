// Package picol provides an embeddable, single-threaded core for a
// picol-style Tcl dialect.
//
// # Overview
//
// picol is a minimal, pure-Go implementation of the "hard part" of Tcl: a
// stateful lexer that splits source text into words, variable references,
// braced literals, quoted strings and nested command substitutions, and a
// recursive evaluator that substitutes and dispatches those words through a
// command table. It has no external dependencies beyond the Go standard
// library.
//
// # Quick Start
//
//	import "github.com/picol-go/picol"
//
//	func main() {
//	    interp := picol.New()
//
//	    status, err := interp.Eval("set x [+ 2 2]; puts $x")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(status, interp.Result()) // "OK ": puts leaves the result empty
//	}
//
// # Registering Go Functions
//
// RegisterCommand accepts a raw CommandFunc with full control over argv and
// status codes. Register accepts an ordinary Go function operating on
// strings, ints and bools (this dialect has no floats, lists or dicts) and
// adapts it automatically:
//
//	interp.Register("double", func(x int) int { return x * 2 })
//	interp.Eval("double 21") // result: "42"
//
// # What this dialect does not have
//
// No floating point, no lists or dicts, no object system, no regexes, no
// concurrency or coroutines, no bytecode compilation or sandboxing. A
// variable's value is always a string.
package picol
