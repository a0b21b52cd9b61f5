package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseResult holds the parsed command word and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining whitespace-separated words, case preserved.
	Args []string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}
	}
	res := ParseResult{Command: strings.ToLower(fields[0])}
	if len(fields) > 1 {
		res.Args = fields[1:]
	}
	return res
}

// IntArg parses argument i as a non-negative slot number.
func (r ParseResult) IntArg(i int) (int, error) {
	if i < 0 || i >= len(r.Args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	n, err := strconv.Atoi(r.Args[i])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a slot number", r.Args[i])
	}
	return n, nil
}
