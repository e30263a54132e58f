package main

import (
	"github.com/advent-of-go/aoc/keypad"
	"github.com/rs/zerolog/log"
)

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	codes := s.d21Codes()
	if s.Debugging() {
		kp := keypad.NewSolver()
		for _, c := range codes {
			s.Debugf("%v: %s", c, kp.Expand(c, 2))
		}
	}
	return keypad.TotalComplexity(codes, 2)
}

// want=154115708116294
func (s solver) D21p2() any {
	return keypad.TotalComplexity(s.d21Codes(), 25)
}

func (s solver) d21Codes() []keypad.Code {
	codes, err := keypad.ParseCodes(s.Text())
	if err != nil {
		log.Fatal().Err(err).Msg("parsing door codes")
	}
	return codes
}
