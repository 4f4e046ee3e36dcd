package models

import (
	"errors"
	"fmt"
)

// Domain specific errors for plan generation and the plan store.
var (
	ErrEmptyAIResponse = errors.New("empty response received from AI")
	ErrNoCurrentPlan   = errors.New("no travel plan has been generated yet")
	ErrPlanNotFound    = errors.New("saved plan not found")
)

// BudgetExceededError is returned when a fully parsed plan sums to more than
// the requested budget. The plan is discarded; both figures are carried so
// callers can display the shortfall.
type BudgetExceededError struct {
	TotalCost int
	Budget    int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("generated plan exceeds budget (₹%d > ₹%d)", e.TotalCost, e.Budget)
}
