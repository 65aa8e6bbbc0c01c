// Package solver is the public entry point: it turns parsed records into
// a graph and distance table once, then answers single- and dual-agent
// queries against them.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/valvenet/budget"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/partition"
)

// ErrUnknownStart is returned when the start label is not in the graph.
var ErrUnknownStart = errors.New("solver: unknown start label")

// Modes reported in Report.Mode and the metrics "mode" label.
const (
	ModeSingle = "single"
	ModeDual   = "dual"
)

// Session owns an immutable graph and its distance table.
// All query methods are safe for concurrent use.
type Session struct {
	graph   *core.Graph
	table   *distance.Table
	log     *logrus.Logger
	workers int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logrus.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithWorkers bounds the goroutines used for the distance table.
func WithWorkers(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewSession builds the graph from records and precomputes all-pairs distances.
func NewSession(ctx context.Context, records []core.Record, opts ...SessionOption) (*Session, error) {
	s := &Session{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}

	g, err := core.FromRecords(records)
	if err != nil {
		return nil, err
	}
	table, err := distance.ComputeParallel(ctx, g, s.workers)
	if err != nil {
		return nil, fmt.Errorf("compute distances: %w", err)
	}
	s.graph, s.table = g, table

	active := len(g.ActiveSet())
	metrics.GraphNodes.Set(float64(g.Len()))
	metrics.ActiveNodes.Set(float64(active))
	s.log.WithFields(logrus.Fields{
		"nodes":  g.Len(),
		"edges":  g.EdgeCount(),
		"active": active,
	}).Debug("graph loaded")

	return s, nil
}

// Graph returns the session graph.
func (s *Session) Graph() *core.Graph { return s.graph }

// Distances returns the session distance table.
func (s *Session) Distances() *distance.Table { return s.table }

func (s *Session) resolve(start string) (int, error) {
	idx, ok := s.graph.Index(start)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownStart, start)
	}
	return idx, nil
}

// Single runs the single-agent search from start with timeBudget.
func (s *Session) Single(ctx context.Context, start string, timeBudget uint32) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	from, err := s.resolve(start)
	if err != nil {
		return Report{}, err
	}

	began := time.Now()
	res, err := budget.Maximize(s.table, s.graph.Rewards(), from, s.graph.ActiveSet(), timeBudget)
	if err != nil {
		return Report{}, err
	}
	elapsed := time.Since(began)

	metrics.SolveDuration.WithLabelValues(ModeSingle).Observe(elapsed.Seconds())
	metrics.SearchStatesTotal.WithLabelValues(ModeSingle).Add(float64(res.States))

	rep := Report{
		Mode:    ModeSingle,
		Start:   start,
		Budget:  timeBudget,
		Score:   res.Score,
		Agents:  []AgentReport{s.agent(res, nil)},
		States:  res.States,
		Elapsed: elapsed.String(),
	}
	s.log.WithFields(logrus.Fields{
		"mode":   ModeSingle,
		"score":  rep.Score,
		"states": rep.States,
		"took":   elapsed,
	}).Info("solved")

	return rep, nil
}

// Dual runs the two-agent search from start with budgetPerAgent each.
func (s *Session) Dual(ctx context.Context, start string, budgetPerAgent uint32, opts ...partition.Option) (Report, error) {
	from, err := s.resolve(start)
	if err != nil {
		return Report{}, err
	}

	began := time.Now()
	res, err := partition.MaximizeDual(ctx, s.table, s.graph.Rewards(), from, s.graph.ActiveSet(), budgetPerAgent, opts...)
	if err != nil {
		return Report{}, err
	}
	elapsed := time.Since(began)

	metrics.SolveDuration.WithLabelValues(ModeDual).Observe(elapsed.Seconds())
	metrics.SearchStatesTotal.WithLabelValues(ModeDual).Add(float64(res.States))
	metrics.PartitionsEvaluatedTotal.WithLabelValues(res.Strategy.String()).Add(float64(res.Evaluated))

	rep := Report{
		Mode:      ModeDual,
		Start:     start,
		Budget:    budgetPerAgent,
		Score:     res.Score,
		Strategy:  res.Strategy.String(),
		Evaluated: res.Evaluated,
		States:    res.States,
		Elapsed:   elapsed.String(),
	}
	for i := range res.Agents {
		rep.Agents = append(rep.Agents, s.agent(res.Agents[i], res.Split[i]))
	}
	s.log.WithFields(logrus.Fields{
		"mode":      ModeDual,
		"score":     rep.Score,
		"strategy":  rep.Strategy,
		"evaluated": rep.Evaluated,
		"states":    rep.States,
		"took":      elapsed,
	}).Info("solved")

	return rep, nil
}

func (s *Session) agent(res budget.Result, assigned []int) AgentReport {
	ar := AgentReport{Score: res.Score, Path: s.graph.Labels(res.Path)}
	if assigned != nil {
		ar.Assigned = s.graph.Labels(assigned)
	}
	return ar
}

// SolveSingleAgent builds a throwaway session and returns the best single-agent score.
func SolveSingleAgent(records []core.Record, startLabel string, timeBudget uint32) (uint32, error) {
	s, err := NewSession(context.Background(), records)
	if err != nil {
		return 0, err
	}
	rep, err := s.Single(context.Background(), startLabel, timeBudget)
	return rep.Score, err
}

// SolveDualAgent builds a throwaway session and returns the best combined
// score of two agents with budgetPerAgent each.
func SolveDualAgent(records []core.Record, startLabel string, budgetPerAgent uint32, opts ...partition.Option) (uint32, error) {
	s, err := NewSession(context.Background(), records)
	if err != nil {
		return 0, err
	}
	rep, err := s.Dual(context.Background(), startLabel, budgetPerAgent, opts...)
	return rep.Score, err
}
