package idl

import "fmt"

// Position is a location in IDL source text. Lines are 1-based, columns are
// 0-based character offsets within the line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}
