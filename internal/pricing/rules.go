package pricing

import (
	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

// DefaultCurrency is the currency code all default rules price in.
const DefaultCurrency = "SAR"

// Rule is a static pricing configuration entry for one activity type.
// BasePrice is in whole currency units per billing unit.
type Rule struct {
	Activity       domain.ActivityType
	Unit           domain.UnitType
	BasePrice      decimal.Decimal
	DepositPercent int64 // [0,100]
	PerParticipant bool  // multiply total by participant count
	Currency       string
}

// DefaultRules returns the facility's standard rule table.
// Only the swimming school prices per participant; every other
// activity stores the participant count for record keeping only.
func DefaultRules() []Rule {
	return []Rule{
		{
			Activity:       domain.ActivitySwimmingPrivate,
			Unit:           domain.UnitHour,
			BasePrice:      decimal.NewFromInt(100),
			DepositPercent: 30,
			Currency:       DefaultCurrency,
		},
		{
			Activity:       domain.ActivitySwimmingFree,
			Unit:           domain.UnitHour,
			BasePrice:      decimal.NewFromInt(50),
			DepositPercent: 20,
			Currency:       DefaultCurrency,
		},
		{
			Activity:       domain.ActivitySwimmingSchool,
			Unit:           domain.UnitSession,
			BasePrice:      decimal.NewFromInt(40),
			DepositPercent: 25,
			PerParticipant: true,
			Currency:       DefaultCurrency,
		},
		{
			Activity:       domain.ActivityFieldFootball,
			Unit:           domain.UnitHour,
			BasePrice:      decimal.NewFromInt(300),
			DepositPercent: 40,
			Currency:       DefaultCurrency,
		},
		{
			Activity:       domain.ActivityFieldTennis,
			Unit:           domain.UnitHour,
			BasePrice:      decimal.NewFromInt(150),
			DepositPercent: 30,
			Currency:       DefaultCurrency,
		},
	}
}
