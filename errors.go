package picol

import "fmt"

// Error reports an ERR status returned from Eval, carrying the status
// alongside the interpreter's result-slot message at the time it occurred.
type Error struct {
	Status  Status
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
