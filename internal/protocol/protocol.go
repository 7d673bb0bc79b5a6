// Package protocol parses the line-oriented command language the driver
// reads from standard input: one command per line, whitespace-separated
// tokens, no persisted state between processes.
package protocol

import (
	"strconv"
	"strings"
)

// Verb identifies which command a parsed line names.
type Verb int

const (
	// Init is "init cols rows".
	Init Verb = iota
	// ChangeCost is "change_cost x y p radius".
	ChangeCost
	// ToggleAirRoute is "toggle_air_route x1 y1 x2 y2".
	ToggleAirRoute
	// TravelCost is "travel_cost x1 y1 x2 y2".
	TravelCost
)

// Command is one parsed line, ready to dispatch.
type Command struct {
	Verb Verb
	Args []int
}

// argCount is the number of integer arguments each verb requires.
var argCount = map[string]int{
	"init":             2,
	"change_cost":      4,
	"toggle_air_route": 4,
	"travel_cost":      4,
}

var verbByToken = map[string]Verb{
	"init":             Init,
	"change_cost":      ChangeCost,
	"toggle_air_route": ToggleAirRoute,
	"travel_cost":      TravelCost,
}

// ParseResult reports the outcome of Parse.
type ParseResult int

const (
	// Ok means cmd is valid and ready to execute.
	Ok ParseResult = iota
	// Skip means the line was blank or had a malformed argument list (wrong
	// argument count or a non-numeric argument): ignore silently.
	Skip
	// Unrecognized means the first token is not a known verb.
	Unrecognized
)

// Parse tokenizes one input line. On Unrecognized, token holds the
// offending first token for the caller to report. On Skip, the line carried
// no command at all (blank, or a malformed argument list) and produces no
// output per the driver's tolerance for blank lines.
func Parse(line string) (cmd Command, result ParseResult, token string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, Skip, ""
	}

	verb, known := verbByToken[fields[0]]
	if !known {
		return Command{}, Unrecognized, fields[0]
	}

	want := argCount[fields[0]]
	if len(fields)-1 != want {
		return Command{}, Skip, ""
	}

	args := make([]int, want)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Command{}, Skip, ""
		}
		args[i] = n
	}

	return Command{Verb: verb, Args: args}, Ok, ""
}
