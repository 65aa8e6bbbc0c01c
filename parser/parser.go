// Package parser reads the textual valve-network description into
// core.Record values, one per non-blank line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvenet/core"
)

// ErrSyntax is returned for lines that do not match the grammar.
var ErrSyntax = errors.New("parser: syntax error")

var lineRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// Parse reads records from r. Errors carry the 1-based line number.
func Parse(r io.Reader) ([]core.Record, error) {
	var records []core.Record
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read input: %w", err)
	}
	return records, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]core.Record, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(line string) (core.Record, error) {
	m := lineRx.FindStringSubmatch(line)
	if m == nil {
		return core.Record{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	reward, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return core.Record{}, fmt.Errorf("%w: flow rate %q: %v", ErrSyntax, m[2], err)
	}

	var neighbors []string
	for _, nbr := range strings.Split(m[3], ",") {
		nbr = strings.TrimSpace(nbr)
		if nbr == "" {
			return core.Record{}, fmt.Errorf("%w: empty neighbour in %q", ErrSyntax, line)
		}
		neighbors = append(neighbors, nbr)
	}

	return core.Record{Label: m[1], Reward: uint32(reward), Neighbors: neighbors}, nil
}
