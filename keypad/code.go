package keypad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCode is wrapped by every ParseCode failure.
var ErrBadCode = errors.New("keypad: bad code")

// Code is a door code such as "029A".
type Code struct {
	Keys  string
	Value int // the digits as a number, e.g. 29 for "029A"
}

func (c Code) String() string {
	return c.Keys
}

// ParseCode parses one line of digits terminated by a single A.
func ParseCode(line string) (Code, error) {
	digits, ok := strings.CutSuffix(line, Activate.String())
	if !ok {
		return Code{}, fmt.Errorf("%w: %q does not end in A", ErrBadCode, line)
	}
	if digits == "" {
		return Code{}, fmt.Errorf("%w: %q has no digits", ErrBadCode, line)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c == byte(Activate) || !Numeric.Has(c) {
			return Code{}, fmt.Errorf("%w: %q has unknown key %q", ErrBadCode, line, c)
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q: %v", ErrBadCode, line, err)
	}
	return Code{Keys: line, Value: v}, nil
}

// ParseCodes parses one code per line, skipping blank lines.
func ParseCodes(text string) ([]Code, error) {
	var codes []Code
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := ParseCode(line)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}
