package boxes

import "fmt"

// Line is a move: the segment to the right of dot (Row, Col) when Horizontal,
// otherwise the segment below it.
type Line struct {
	Horizontal bool
	Row        int
	Col        int
}

func (l Line) String() string {
	if l.Horizontal {
		return fmt.Sprintf("h(%d,%d)", l.Row, l.Col)
	}
	return fmt.Sprintf("v(%d,%d)", l.Row, l.Col)
}
