package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression ready to be rolled.
//
// Invariant: Count >= 1 and Sides >= 2 after a successful Parse.
type Expression struct {
	Raw         string // original input string
	Count       int    // number of dice
	Sides       int    // faces per die
	Modifier    int    // flat modifier (may be negative)
	KeepHighest int    // if > 0, keep only the N highest dice (e.g. 4d6kh3)
}

// Parse parses a dice expression of the form [count]d<sides>[kh<keep>][+|-<mod>].
// Examples: "d20", "1d8", "1d4+1", "3d6-2", "4d6kh3".
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	countPart, rest, found := strings.Cut(s, "d")
	if !found {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	e := Expression{Raw: raw, Count: 1}
	if countPart != "" {
		n, err := strconv.Atoi(countPart)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if n < 1 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
		e.Count = n
	}

	// Split off the modifier: the first sign after the sides digits.
	modAt := strings.IndexAny(rest, "+-")
	if modAt == 0 {
		return Expression{}, fmt.Errorf("dice: missing die sides in %q", raw)
	}
	if modAt > 0 {
		m, err := strconv.Atoi(rest[modAt:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
		e.Modifier = m
		rest = rest[:modAt]
	}

	sidesPart, keepPart, hasKeep := strings.Cut(rest, "kh")
	sides, err := strconv.Atoi(sidesPart)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}
	e.Sides = sides

	if hasKeep {
		kh, err := strconv.Atoi(keepPart)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid kh value in %q: %w", raw, err)
		}
		if kh <= 0 || kh >= e.Count {
			return Expression{}, fmt.Errorf("dice: kh value %d must be > 0 and < count %d in %q", kh, e.Count, raw)
		}
		e.KeepHighest = kh
	}

	return e, nil
}

// String returns the original expression text.
func (e Expression) String() string { return e.Raw }
