package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

func TestQuote_FootballTwoHours(t *testing.T) {
	engine := NewEngine(DefaultRules())

	quote, err := engine.Quote(domain.ActivityFieldFootball, decimal.NewFromInt(2), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.TotalPrice.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total 600, got %s", quote.TotalPrice)
	}
	if !quote.DepositAmount.Equal(decimal.NewFromInt(240)) {
		t.Errorf("expected deposit 240, got %s", quote.DepositAmount)
	}
	if !quote.RemainingAmount.Equal(decimal.NewFromInt(360)) {
		t.Errorf("expected remaining 360, got %s", quote.RemainingAmount)
	}
	if quote.Currency != "SAR" {
		t.Errorf("expected currency SAR, got %s", quote.Currency)
	}
}

func TestQuote_SwimmingSchoolPricesPerParticipant(t *testing.T) {
	engine := NewEngine(DefaultRules())

	quote, err := engine.Quote(domain.ActivitySwimmingSchool, decimal.NewFromInt(1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.TotalPrice.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected total 400, got %s", quote.TotalPrice)
	}
	if !quote.DepositAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected deposit 100, got %s", quote.DepositAmount)
	}
	if !quote.RemainingAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected remaining 300, got %s", quote.RemainingAmount)
	}
}

func TestQuote_ParticipantsIgnoredForFlatRates(t *testing.T) {
	engine := NewEngine(DefaultRules())

	solo, err := engine.Quote(domain.ActivityFieldTennis, decimal.NewFromInt(1), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	group, err := engine.Quote(domain.ActivityFieldTennis, decimal.NewFromInt(1), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !solo.TotalPrice.Equal(group.TotalPrice) {
		t.Errorf("tennis total should not depend on participants: %s vs %s", solo.TotalPrice, group.TotalPrice)
	}
}

func TestQuote_UnknownActivity(t *testing.T) {
	engine := NewEngine(DefaultRules())

	_, err := engine.Quote(domain.ActivityType("UNKNOWN_ACTIVITY"), decimal.NewFromInt(1), 1)
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestQuote_InvalidQuantities(t *testing.T) {
	engine := NewEngine(DefaultRules())

	cases := []struct {
		name         string
		duration     decimal.Decimal
		participants int
	}{
		{"zero duration", decimal.Zero, 1},
		{"negative duration", decimal.NewFromInt(-1), 1},
		{"zero participants", decimal.NewFromInt(1), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Quote(domain.ActivityFieldFootball, tc.duration, tc.participants)
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("expected ErrInvalidQuantity, got %v", err)
			}
		})
	}
}

func TestQuote_DepositRoundsUp(t *testing.T) {
	// 50 * 1 = 50 total; 25% = 12.5 which must round up to 13, not down.
	engine := NewEngine([]Rule{{
		Activity:       domain.ActivityFieldTennis,
		Unit:           domain.UnitHour,
		BasePrice:      decimal.NewFromInt(50),
		DepositPercent: 25,
		Currency:       DefaultCurrency,
	}})

	quote, err := engine.Quote(domain.ActivityFieldTennis, decimal.NewFromInt(1), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.DepositAmount.Equal(decimal.NewFromInt(13)) {
		t.Errorf("expected deposit 13, got %s", quote.DepositAmount)
	}
	if !quote.RemainingAmount.Equal(decimal.NewFromInt(37)) {
		t.Errorf("expected remaining 37, got %s", quote.RemainingAmount)
	}
}

func TestQuote_DepositClampedToTotal(t *testing.T) {
	// Fractional total with a 100% deposit: ceil(0.5) = 1 would exceed the
	// total, so the deposit is clamped and remaining stays zero.
	engine := NewEngine([]Rule{{
		Activity:       domain.ActivitySwimmingFree,
		Unit:           domain.UnitHour,
		BasePrice:      decimal.NewFromInt(1),
		DepositPercent: 100,
		Currency:       DefaultCurrency,
	}})

	quote, err := engine.Quote(domain.ActivitySwimmingFree, decimal.RequireFromString("0.5"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.DepositAmount.Equal(quote.TotalPrice) {
		t.Errorf("expected deposit clamped to total %s, got %s", quote.TotalPrice, quote.DepositAmount)
	}
	if quote.RemainingAmount.IsNegative() {
		t.Errorf("remaining must not be negative, got %s", quote.RemainingAmount)
	}
}

func TestQuote_SplitSumsExactly(t *testing.T) {
	durations := []string{"0.5", "1", "1.5", "2", "3", "7.25"}
	participants := []int{1, 2, 5, 11}

	for _, rule := range DefaultRules() {
		engine := NewEngine(DefaultRules())
		for _, d := range durations {
			for _, p := range participants {
				quote, err := engine.Quote(rule.Activity, decimal.RequireFromString(d), p)
				if err != nil {
					t.Fatalf("%s d=%s p=%d: %v", rule.Activity, d, p, err)
				}

				sum := quote.DepositAmount.Add(quote.RemainingAmount)
				if !sum.Equal(quote.TotalPrice) {
					t.Errorf("%s d=%s p=%d: deposit %s + remaining %s != total %s",
						rule.Activity, d, p, quote.DepositAmount, quote.RemainingAmount, quote.TotalPrice)
				}
				if quote.DepositAmount.IsNegative() || quote.RemainingAmount.IsNegative() {
					t.Errorf("%s d=%s p=%d: negative amount in split", rule.Activity, d, p)
				}
			}
		}
	}
}

func TestNewEngine_LastRuleWinsOnDuplicate(t *testing.T) {
	engine := NewEngine([]Rule{
		{Activity: domain.ActivityFieldTennis, Unit: domain.UnitHour, BasePrice: decimal.NewFromInt(100), DepositPercent: 30, Currency: DefaultCurrency},
		{Activity: domain.ActivityFieldTennis, Unit: domain.UnitHour, BasePrice: decimal.NewFromInt(150), DepositPercent: 30, Currency: DefaultCurrency},
	})

	rule, err := engine.Rule(domain.ActivityFieldTennis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rule.BasePrice.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected most recently defined rule to win, got base price %s", rule.BasePrice)
	}
}
