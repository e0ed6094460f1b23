package arena

import "strconv"

// Score counts destroyed hazards. It never decreases.
type Score struct {
	Value int
}

// Add increases the score by n; negative n is ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.Value += n
	}
}

// Text returns the on-screen label, e.g. "Score:3".
func (s Score) Text() string {
	return "Score:" + strconv.Itoa(s.Value)
}
