package command

// Difficulty summarises how much a planned sequence saves over printing
// every pixel in turn.
type Difficulty int

// Difficulty levels, easiest first
const (
	Simple Difficulty = iota
	Moderate
	Complex
	Wasteful
)

func (d Difficulty) String() string {
	switch d {
	case Simple:
		return "simple"
	case Moderate:
		return "moderate"
	case Complex:
		return "complex"
	}
	return "wasteful"
}

// Keep reports whether a sequence of this difficulty is worth sending.
func (d Difficulty) Keep() bool {
	return d < Wasteful
}
