// Package cyclic provides functionality for creating and searching
// cyclic patterns, and for enumerating bad characters.
//
// APIs are separated into subpackages, and documented accordingly.
//
// For scripting convenience, "OrExit" functions are provided.
// Any errors encountered by these functions are treated as fatal. In such
// cases, an exit handler function is invoked.
package cyclic
