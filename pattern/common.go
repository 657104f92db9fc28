package pattern

import (
	"log"
)

var (
	// DefaultExitFn is invoked by functions ending in the "OrExit"
	// suffix when an error occurs (e.g., CreateOrExit).
	DefaultExitFn = func(err error) {
		log.Fatalln(err)
	}
)
