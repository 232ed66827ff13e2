// Package lstar implements Angluin's L* algorithm: inferring a minimal DFA
// recognizing an unknown regular language by interacting with a membership
// oracle and an equivalence oracle (spec §1).
//
// The observation table engine, closedness/consistency checker, DFA
// extractor, and counterexample processor live in internal/table and
// internal/automaton; this package is the driver that coordinates them
// (spec §4.9) and the public entry point for running a learning session.
package lstar

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/dekarrin/lstar/internal/automaton"
	"github.com/dekarrin/lstar/internal/equivalence"
	"github.com/dekarrin/lstar/internal/membership"
	"github.com/dekarrin/lstar/internal/table"
	"github.com/google/uuid"
)

// MembershipOracle answers "is w ∈ L?" (spec §4.1, §6). Implementations live
// in internal/membership. New wraps whatever is passed here in its own
// membership.Cache, so callers should pass the raw oracle, not a
// pre-wrapped one: double-wrapping would only hide Stats's query count
// behind a second cache.
type MembershipOracle interface {
	Ask(w string) (bool, error)
}

// EquivalenceOracle checks a hypothesis DFA against L (spec §4.7).
// Implementations live in internal/equivalence.
type EquivalenceOracle = equivalence.Oracle

// Stats reports the query traffic a Session generated, for property P5
// ("learning terminates in at most n·(n+|Σ|) membership queries beyond the
// cache").
type Stats struct {
	Iterations        int
	MembershipQueries int
}

// queryCounter wraps a MembershipOracle to count calls that reach it. Session
// always places this beneath its own mandatory membership.Cache (spec
// §4.1), so its count is the number of distinct strings actually sent to
// the caller-supplied oracle, not the gross number of observation-table
// cells filled (P5's "beyond the cache" bound).
type queryCounter struct {
	inner MembershipOracle
	count int
}

func (q *queryCounter) Ask(w string) (bool, error) {
	q.count++
	return q.inner.Ask(w)
}

// Session drives one run of L* to completion (spec §4.9). A Session is used
// once: construct it with New, call Run, discard it.
type Session struct {
	alpha   alphabet.Alphabet
	counter *queryCounter
	eq      EquivalenceOracle
	cfg     Config
	tbl     *table.Table
	stats   Stats
}

// New builds a Session ready to learn a language over alpha, asking
// membership questions via ask and equivalence questions via eq, configured
// by cfg. ask is wrapped in a mandatory membership.Cache (spec §4.1) with a
// query counter underneath it, so callers do not need to (and should not)
// pre-wrap ask in their own cache to get an accurate Stats().
func New(alpha alphabet.Alphabet, ask MembershipOracle, eq EquivalenceOracle, cfg Config) *Session {
	counter := &queryCounter{inner: ask}
	cache := membership.NewCache(counter)
	return &Session{
		alpha:   alpha,
		counter: counter,
		eq:      eq,
		cfg:     cfg,
		tbl:     table.New(alpha, cache),
	}
}

// Stats returns the query and iteration counts accumulated so far. Safe to
// call after Run returns, successfully or not.
func (s *Session) Stats() Stats {
	st := s.stats
	st.MembershipQueries = s.counter.count
	return st
}

// Table exposes the underlying observation table, mainly so callers can
// render it (table.Table.String) for diagnostics after Run returns.
func (s *Session) Table() *table.Table {
	return s.tbl
}

// Run executes the learner driver loop (spec §4.9) to completion and
// returns the learned DFA. It returns a *lstar.Error on any fail-fast
// condition named in spec §7.
func (s *Session) Run() (*automaton.DFA, error) {
	if err := s.tbl.Init(); err != nil {
		return nil, wrapError(TableInvariantViolation, err, "initializing observation table")
	}

	for {
		s.stats.Iterations++
		if s.cfg.MaxIterations > 0 && s.stats.Iterations > s.cfg.MaxIterations {
			return nil, newError(TableInvariantViolation, "exceeded configured maximum of %d iterations without converging", s.cfg.MaxIterations)
		}

		if err := s.tbl.Close(); err != nil {
			return nil, wrapError(TableInvariantViolation, err, "closing observation table to a fixed point")
		}

		hypothesis, err := automaton.Extract(s.tbl)
		if err != nil {
			return nil, wrapError(TableInvariantViolation, err, "extracting hypothesis DFA")
		}

		if err := s.dumpTable(); err != nil {
			return nil, err
		}

		result, err := s.eq.Check(hypothesis)
		if err != nil {
			return nil, err
		}

		if result.Ok {
			s.stats.MembershipQueries = s.counter.count
			return hypothesis, nil
		}

		if err := s.processCounterexample(result.Counterexample); err != nil {
			return nil, err
		}
	}
}

// processCounterexample validates and applies a counterexample from the
// equivalence oracle (spec §4.8, §7). A counterexample containing a symbol
// outside Σ fails fast (InvalidCounterexample); one the table already fully
// accounts for is treated as a no-op per the OracleContract policy, since
// AddPrefix is idempotent on strings already in S.
func (s *Session) processCounterexample(cx string) error {
	if _, err := s.alpha.Split(cx); err != nil {
		return wrapError(InvalidCounterexample, err, "counterexample %q is not a valid string over the alphabet", cx)
	}

	if err := s.tbl.ProcessCounterexample(cx); err != nil {
		return wrapError(TableInvariantViolation, err, "processing counterexample %q", cx)
	}
	return nil
}

// dumpTable writes a debugging CSV snapshot of the table to cfg.DumpTables,
// if configured, named uniquely per iteration (spec §6, "Persisted tables").
func (s *Session) dumpTable() error {
	if s.cfg.DumpTables == "" {
		return nil
	}

	name := fmt.Sprintf("iter-%03d-%s.csv", s.stats.Iterations, uuid.NewString())
	f, err := os.Create(filepath.Join(s.cfg.DumpTables, name))
	if err != nil {
		return fmt.Errorf("lstar: dump table: %w", err)
	}
	defer f.Close()

	return s.tbl.WriteCSV(f)
}
