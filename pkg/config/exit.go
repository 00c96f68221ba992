package config

import (
	"fmt"
	"os"
)

// Print the message to stderr and exit with status 1, for failures before
// a program has anything to clean up
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
