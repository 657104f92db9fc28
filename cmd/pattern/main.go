// pattern creates cyclic patterns and finds the offsets of pattern
// fragments. Useful for understanding how a payload overwrites
// process state (e.g., finding the offset of a saved return address
// overwritten by a stack-based buffer overflow).
package main

import (
	"gitlab.com/stephen-fox/cyclic/cmd/pattern/cmd"
)

func main() {
	cmd.Execute()
}
