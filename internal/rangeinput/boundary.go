package rangeinput

// Boundary identifies which end of the range a field, focus event, or
// hover event refers to.
type Boundary int

const (
	Start Boundary = iota
	End
)

// Other returns the opposite boundary.
func (b Boundary) Other() Boundary {
	if b == Start {
		return End
	}
	return Start
}

func (b Boundary) String() string {
	if b == Start {
		return "start"
	}
	return "end"
}
