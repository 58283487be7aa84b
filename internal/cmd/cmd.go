package cmd

import (
	"errors"
)

// ErrInvalidArgs is returned on malformed command arguments or flags.
var ErrInvalidArgs = errors.New("arguments invalid")

// Remediable errors carry an actionable hint for the user on top of the
// failure description. The CLI prints the hint before exiting non-zero.
type Remediable interface {
	error
	Remediation() string
}
