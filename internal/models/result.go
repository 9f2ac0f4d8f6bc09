package models

import "time"

// RejectionKind identifies the single check an eliminated phone failed.
type RejectionKind string

const (
	ReasonExceedsBudget          RejectionKind = "EXCEEDS_BUDGET"
	ReasonMissingRequiredFeature RejectionKind = "MISSING_REQUIRED_FEATURE"
	ReasonUnavailableInRegion    RejectionKind = "UNAVAILABLE_IN_REGION"
	ReasonDiscontinued           RejectionKind = "DISCONTINUED"
	ReasonIncompleteData         RejectionKind = "INCOMPLETE_DATA"
)

// EliminatedItem pairs a phone with exactly one rejection reason and a
// human-readable detail string containing concrete numbers or names.
type EliminatedItem struct {
	Item   Item          `json:"item"`
	Reason RejectionKind `json:"reason"`
	Detail string        `json:"detail"`
}

// ScoredItem is a qualifying phone with its normalized per-dimension
// scores, 1-indexed rank, and conditional recommendation.
type ScoredItem struct {
	Item           Item               `json:"item"`
	Scores         map[string]float64 `json:"scores"`
	Rank           int                `json:"rank"`
	Recommendation string             `json:"recommendation"`
}

// TradeOffPair states a per-dimension advantage between two phones.
// Delta is expressed in the dimension's native unit and is always positive.
type TradeOffPair struct {
	ItemA        string  `json:"item_a"`
	ItemB        string  `json:"item_b"`
	Dimension    string  `json:"dimension"`
	AdvantagedID string  `json:"advantaged_id"`
	Delta        float64 `json:"delta"`
	Unit         string  `json:"unit,omitempty"`
	Explanation  string  `json:"explanation"`
}

// AdjustmentKind classifies a what-if sensitivity rule.
type AdjustmentKind string

const (
	AdjustBudgetIncrease  AdjustmentKind = "budget-increase"
	AdjustBudgetDecrease  AdjustmentKind = "budget-decrease"
	AdjustPriorityReorder AdjustmentKind = "priority-reorder"
)

// SensitivityRule describes how the outcome changes under a nearby
// alternative input.
type SensitivityRule struct {
	Kind        AdjustmentKind `json:"kind"`
	Before      string         `json:"before"`
	After       string         `json:"after"`
	Impact      string         `json:"impact"`
	Conditional string         `json:"conditional"`
}

// DataWarning annotates a qualified phone that was scored neutrally on a
// priority dimension because the catalog has no value for it.
type DataWarning struct {
	ItemID    string `json:"item_id"`
	Dimension string `json:"dimension"`
	Message   string `json:"message"`
}

// RunInfo is reproducibility metadata. It is attached after all decisions
// are made and never influences any of them.
type RunInfo struct {
	Timestamp      time.Time `json:"timestamp"`
	CatalogVersion string    `json:"catalog_version"`
	CatalogHash    string    `json:"catalog_hash"`
	EngineVersion  string    `json:"engine_version"`
	ElapsedMs      int64     `json:"elapsed_ms"`
}

// ComparisonResult is the full output of one evaluation call. It is a pure
// value; nothing mutates it after construction.
type ComparisonResult struct {
	Qualified   []ScoredItem      `json:"qualified"`
	Eliminated  []EliminatedItem  `json:"eliminated"`
	TradeOffs   []TradeOffPair    `json:"trade_offs"`
	Sensitivity []SensitivityRule `json:"sensitivity"`
	Warnings    []DataWarning     `json:"warnings,omitempty"`
	Constraints ConstraintSet     `json:"constraints"`
	Run         RunInfo           `json:"run"`
}
