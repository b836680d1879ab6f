package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

var (
	// ErrUnknownActivity is returned when no pricing rule exists for an activity type.
	ErrUnknownActivity = errors.New("unknown activity type")

	// ErrInvalidQuantity is returned when duration or participant count is out of range.
	ErrInvalidQuantity = errors.New("invalid duration or participant count")
)

var oneHundred = decimal.NewFromInt(100)

// Engine resolves price quotes from a static rule table.
// It is pure: no I/O, no mutation after construction.
type Engine struct {
	rules map[domain.ActivityType]Rule
}

// NewEngine creates an Engine from the given rules.
// If the same activity appears more than once, the last rule wins.
func NewEngine(rules []Rule) *Engine {
	table := make(map[domain.ActivityType]Rule, len(rules))
	for _, r := range rules {
		table[r.Activity] = r
	}
	return &Engine{rules: table}
}

// Rule returns the active rule for an activity type.
func (e *Engine) Rule(activity domain.ActivityType) (Rule, error) {
	rule, ok := e.rules[activity]
	if !ok {
		return Rule{}, ErrUnknownActivity
	}
	return rule, nil
}

// Quote computes the total, deposit and remaining amounts for a requested
// activity, duration and participant count.
//
// The deposit is rounded up to the next whole currency unit so the facility
// never under-collects, then clamped to the total so the remaining amount
// stays non-negative. The three amounts always satisfy
// deposit + remaining == total exactly.
func (e *Engine) Quote(activity domain.ActivityType, duration decimal.Decimal, participants int) (domain.BookingQuote, error) {
	if duration.LessThanOrEqual(decimal.Zero) || participants < 1 {
		return domain.BookingQuote{}, ErrInvalidQuantity
	}

	rule, ok := e.rules[activity]
	if !ok {
		return domain.BookingQuote{}, ErrUnknownActivity
	}

	total := rule.BasePrice.Mul(duration)
	if rule.PerParticipant {
		total = total.Mul(decimal.NewFromInt(int64(participants)))
	}

	deposit := total.Mul(decimal.NewFromInt(rule.DepositPercent)).Div(oneHundred).Ceil()
	if deposit.GreaterThan(total) {
		deposit = total
	}

	return domain.BookingQuote{
		TotalPrice:      total,
		DepositAmount:   deposit,
		RemainingAmount: total.Sub(deposit),
		Currency:        rule.Currency,
	}, nil
}
