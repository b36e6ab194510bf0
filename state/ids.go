package state

import "strconv"

// NewStem creates a Stem that hands out stem1, stem2, ... in order.
func NewStem(stem string) *Stem {
	return &Stem{
		stem: stem,
		last: 0,
	}
}

type Stem struct {
	stem string
	last int
}

func (s *Stem) Next() string {
	s.last++

	return s.stem + strconv.Itoa(s.last)
}

// Issued is the number of identifiers handed out so far.
func (s *Stem) Issued() int {
	return s.last
}
