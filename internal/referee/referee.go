// Package referee composes constraint evaluation, scoring, ranking,
// trade-off analysis, and sensitivity analysis into the two entry
// operations of the engine. Every call is a pure transform of its inputs;
// the engine holds nothing across calls and is safe to invoke from
// concurrent requests.
package referee

import (
	"context"
	"fmt"
	"time"

	"github.com/3loulou/phone-purchase-referee/internal/catalog"
	"github.com/3loulou/phone-purchase-referee/internal/constraint"
	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
	"github.com/3loulou/phone-purchase-referee/internal/scoring"
	"github.com/3loulou/phone-purchase-referee/internal/sensitivity"
	"github.com/3loulou/phone-purchase-referee/internal/tradeoff"
)

// EngineVersion is stamped into result metadata.
const EngineVersion = "1.2.0"

// Shortlist size bounds.
const (
	MinShortlist = 2
	MaxShortlist = 5
)

// Config holds the engine's tunables. It is passed explicitly instead of
// living in module-level state so tests can pin every knob.
type Config struct {
	// Epsilon is the normalized-score difference below which two phones
	// tie on a dimension.
	Epsilon float64
	// BudgetSteps are the trial increases for budget sensitivity, applied
	// in order.
	BudgetSteps []float64
	// EngineVersion overrides the stamped version; empty means the
	// package default.
	EngineVersion string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Epsilon:       0.001,
		BudgetSteps:   []float64{50, 100, 150},
		EngineVersion: EngineVersion,
	}
}

// Engine is the referee. It is stateless apart from its immutable
// configuration and collaborators.
type Engine struct {
	cfg    Config
	dims   *dimension.Registry
	eval   *constraint.Evaluator
	scorer *scoring.Scorer
	ranker *scoring.Ranker
	trades *tradeoff.Analyzer
	whatIf *sensitivity.Analyzer
	now    func() time.Time
}

// New builds an engine from the given configuration.
func New(cfg Config) *Engine {
	if cfg.EngineVersion == "" {
		cfg.EngineVersion = EngineVersion
	}
	dims := dimension.NewRegistry()
	eval := constraint.NewEvaluator(dims)
	ranker := scoring.NewRanker(cfg.Epsilon)
	return &Engine{
		cfg:    cfg,
		dims:   dims,
		eval:   eval,
		scorer: scoring.NewScorer(dims),
		ranker: ranker,
		trades: tradeoff.NewAnalyzer(dims, cfg.Epsilon),
		whatIf: sensitivity.NewAnalyzer(eval, ranker, cfg.BudgetSteps),
		now:    time.Now,
	}
}

// Evaluate runs the constraint-first operation: partition the catalog,
// score and rank the qualifiers, compute trade-offs and sensitivity
// rules, and attach metadata. When nothing qualifies it returns a
// *NoQualifyingError carrying relaxation suggestions instead of an empty
// success.
func (e *Engine) Evaluate(snap *catalog.Snapshot, cs models.ConstraintSet) (*models.ComparisonResult, error) {
	start := e.now()

	if err := e.validateConstraints(cs); err != nil {
		return nil, err
	}
	if err := checkIntegrity(snap); err != nil {
		return nil, err
	}

	out := e.eval.Evaluate(snap.Items, cs)
	if len(out.Qualified) == 0 {
		return nil, e.noQualifyingError(snap.Items, cs)
	}

	scored, warnings := e.scorer.ScoreAll(out.Qualified, cs.Priorities)
	ranked := e.ranker.Rank(scored, cs.Priorities)

	result := &models.ComparisonResult{
		Qualified:   ranked,
		Eliminated:  out.Eliminated,
		TradeOffs:   e.trades.Analyze(ranked, cs.Priorities),
		Sensitivity: e.whatIf.Analyze(ranked, cs, snap.Items),
		Warnings:    warnings,
		Constraints: cs,
	}
	result.Run = e.runInfo(snap, start)
	return result, nil
}

// EvaluateFrom loads a snapshot from the given source and evaluates it.
// The context only governs the load; evaluation itself has no suspension
// points to cancel.
func (e *Engine) EvaluateFrom(ctx context.Context, src catalog.Source, cs models.ConstraintSet) (*models.ComparisonResult, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return e.Evaluate(snap, cs)
}

// Shortlist runs the pure comparison operation over 2-5 explicitly chosen
// phones. Constraint checks are skipped entirely; the eliminated and
// sensitivity lists are always empty. When priorities are omitted the
// full recognized-dimension order (price first) is used so the comparison
// still has trade-offs and a meaningful order.
func (e *Engine) Shortlist(snap *catalog.Snapshot, ids []string, priorities []string) (*models.ComparisonResult, error) {
	start := e.now()

	if len(ids) < MinShortlist || len(ids) > MaxShortlist {
		return nil, fmt.Errorf("shortlist must name between %d and %d phones, got %d",
			MinShortlist, MaxShortlist, len(ids))
	}
	for _, p := range priorities {
		if _, ok := e.dims.Lookup(p); !ok {
			return nil, e.unknownDimensionError(p)
		}
	}
	if len(priorities) > models.MaxPriorities {
		return nil, fmt.Errorf("at most %d priority dimensions are allowed, got %d",
			models.MaxPriorities, len(priorities))
	}
	if err := checkIntegrity(snap); err != nil {
		return nil, err
	}

	items, lookupErr := e.resolveShortlist(snap, ids)
	if lookupErr != nil {
		return nil, lookupErr
	}

	dims := priorities
	if len(dims) == 0 {
		dims = e.dims.Names()
	}

	scored, warnings := e.scorer.ScoreAll(items, dims)
	ranked := e.ranker.Rank(scored, priorities)

	result := &models.ComparisonResult{
		Qualified:   ranked,
		Eliminated:  []models.EliminatedItem{},
		TradeOffs:   e.trades.Analyze(ranked, dims),
		Sensitivity: []models.SensitivityRule{},
		Warnings:    warnings,
		Constraints: models.ConstraintSet{Priorities: priorities},
	}
	result.Run = e.runInfo(snap, start)
	return result, nil
}

// resolveShortlist looks up every id even after the first miss so the
// error reports all unresolved ids at once.
func (e *Engine) resolveShortlist(snap *catalog.Snapshot, ids []string) ([]models.Item, *UnknownPhoneError) {
	var items []models.Item
	lookupErr := &UnknownPhoneError{}
	for _, id := range ids {
		item, ok := snap.Find(id)
		if !ok {
			lookupErr.Missing = append(lookupErr.Missing, UnknownPhone{
				ID:          id,
				Suggestions: closestIDs(id, snap.IDs(), 2),
			})
			continue
		}
		items = append(items, item)
		lookupErr.Resolved = append(lookupErr.Resolved, id)
	}
	if len(lookupErr.Missing) > 0 {
		return nil, lookupErr
	}
	return items, nil
}

// validateConstraints surfaces malformed input before any evaluation
// runs. Nothing is silently coerced.
func (e *Engine) validateConstraints(cs models.ConstraintSet) error {
	if err := cs.Validate(); err != nil {
		return err
	}
	for _, p := range cs.Priorities {
		if _, ok := e.dims.Lookup(p); !ok {
			return e.unknownDimensionError(p)
		}
	}
	for key, want := range cs.RequiredFeatures {
		if _, ok := e.dims.Lookup(key); !ok {
			return e.unknownDimensionError(key)
		}
		// Probe the value type against an empty item so mismatches fail
		// here rather than mid-evaluation.
		if _, err := e.dims.MatchesFeature(models.Item{}, key, want); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) unknownDimensionError(name string) error {
	return fmt.Errorf("unknown dimension %q: supported dimensions are %v", name, e.dims.Names())
}

func (e *Engine) runInfo(snap *catalog.Snapshot, start time.Time) models.RunInfo {
	version := snap.Version
	if version == "" {
		version = "unversioned"
	}
	return models.RunInfo{
		Timestamp:      start,
		CatalogVersion: version,
		CatalogHash:    snap.Hash(),
		EngineVersion:  e.cfg.EngineVersion,
		ElapsedMs:      e.now().Sub(start).Milliseconds(),
	}
}

// checkIntegrity re-verifies the duplicate-id invariant on the snapshot
// the caller handed in. A snapshot built by catalog.New already passed
// this; one assembled by hand may not have.
func checkIntegrity(snap *catalog.Snapshot) error {
	seen := make(map[string]bool, len(snap.Items))
	for _, item := range snap.Items {
		if seen[item.ID] {
			return fmt.Errorf("catalog integrity violation: duplicate phone id %q", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}
