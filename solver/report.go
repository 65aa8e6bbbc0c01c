package solver

import (
	"fmt"
	"strings"
)

// AgentReport is one agent's share of a Report, in labels.
type AgentReport struct {
	Score    uint32   `json:"score" yaml:"score"`
	Path     []string `json:"path" yaml:"path"`
	Assigned []string `json:"assigned,omitempty" yaml:"assigned,omitempty"`
}

// Report is the labelled outcome of a solve, ready for printing.
type Report struct {
	Mode      string        `json:"mode" yaml:"mode"`
	Start     string        `json:"start" yaml:"start"`
	Budget    uint32        `json:"budget" yaml:"budget"`
	Score     uint32        `json:"score" yaml:"score"`
	Agents    []AgentReport `json:"agents" yaml:"agents"`
	Strategy  string        `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Evaluated int           `json:"evaluated,omitempty" yaml:"evaluated,omitempty"`
	States    int           `json:"states" yaml:"states"`
	Elapsed   string        `json:"elapsed" yaml:"elapsed"`
}

// String renders the report for terminals.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s-agent score: %d (start %s, budget %d)\n", r.Mode, r.Score, r.Start, r.Budget)
	if r.Strategy != "" {
		fmt.Fprintf(&sb, "strategy: %s, splits evaluated: %d\n", r.Strategy, r.Evaluated)
	}
	for i, a := range r.Agents {
		fmt.Fprintf(&sb, "agent %d: %d via %s\n", i+1, a.Score, strings.Join(a.Path, " -> "))
	}
	return sb.String()
}
