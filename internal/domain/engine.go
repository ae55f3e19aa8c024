package domain

import "fmt"

// Result is everything one render of the dashboard needs from the
// scoring core.
type Result struct {
	Pillars Pillars        `json:"pillars"`
	Total   TotalScore     `json:"total"`
	Plan    AllocationPlan `json:"plan"`
}

// Engine runs the full normalize-score-combine-allocate pipeline. It
// holds no mutable state; concurrent evaluations are independent.
type Engine struct {
	policy ScoringPolicy
}

// NewEngine wires an engine to a scoring policy. The weight invariant
// is checked once here so a broken constant set fails at construction,
// not mid-render.
func NewEngine(policy ScoringPolicy) (*Engine, error) {
	if err := ValidateWeights(); err != nil {
		return nil, fmt.Errorf("scoring engine: %w", err)
	}
	return &Engine{policy: policy}, nil
}

// Variant reports which scoring policy is active.
func (e *Engine) Variant() Variant { return e.policy.Variant() }

// Evaluate validates the readings, scores the pillars, combines them
// and selects the allocation plan.
func (e *Engine) Evaluate(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid inputs: %w", err)
	}

	pillars := e.policy.Score(in)
	total := Combine(pillars)
	plan := BuildPlan(total, pillars, in.BTCDominance)

	return Result{Pillars: pillars, Total: total, Plan: plan}, nil
}
