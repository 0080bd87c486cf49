// cmd/qabrain/main.go
package main

import (
	cmd "github.com/mwiater/qabrain/internal/cli"
)

// main starts the qabrain CLI application by delegating to the
// cobra root command defined in the qabrain package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
