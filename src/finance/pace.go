package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Difference above 20% of income moves warning to danger.
var warningShare = decimal.NewFromFloat(0.2)

// Pace compares actual cumulative spend against a proportional
// day-of-month budget expectation. All fields are kept at full
// precision; callers round via Rounded for display.
type Pace struct {
	DaysInMonth          int             `json:"days_in_month"`
	DayOfMonth           int             `json:"day_of_month"`
	DaysRemaining        int             `json:"days_remaining"`
	DailyBudget          decimal.Decimal `json:"daily_budget"`
	ShouldHaveSpent      decimal.Decimal `json:"should_have_spent"`
	Difference           decimal.Decimal `json:"difference"`
	IsOverBudget         bool            `json:"is_over_budget"`
	RemainingBudget      decimal.Decimal `json:"remaining_budget"`
	DailyBudgetRemaining decimal.Decimal `json:"daily_budget_remaining"`
	ProjectedMonthEnd    decimal.Decimal `json:"projected_month_end"`
	Status               Status          `json:"status"`
}

// ComputePace derives calendar-relative burn-rate metrics for the month
// containing now. ProjectedMonthEnd is a naive linear extrapolation of
// spend-to-date across the whole month, not a forecast; it is noisy
// early in the month (a single day-1 purchase projects to 30x itself).
func ComputePace(totalIncome, totalExpenses decimal.Decimal, now time.Time) Pace {
	daysInMonth := daysIn(now)
	dayOfMonth := now.Day()

	p := Pace{
		DaysInMonth:   daysInMonth,
		DayOfMonth:    dayOfMonth,
		DaysRemaining: daysInMonth - dayOfMonth,
	}

	days := decimal.NewFromInt(int64(daysInMonth))
	p.DailyBudget = totalIncome.Div(days)
	p.ShouldHaveSpent = p.DailyBudget.Mul(decimal.NewFromInt(int64(dayOfMonth)))
	p.Difference = totalExpenses.Sub(p.ShouldHaveSpent)
	p.IsOverBudget = p.Difference.IsPositive()
	p.RemainingBudget = totalIncome.Sub(totalExpenses)

	// No further daily allocation on the last day of the month.
	if p.DaysRemaining > 0 {
		p.DailyBudgetRemaining = p.RemainingBudget.Div(decimal.NewFromInt(int64(p.DaysRemaining)))
	}
	if dayOfMonth > 0 {
		p.ProjectedMonthEnd = totalExpenses.Div(decimal.NewFromInt(int64(dayOfMonth))).Mul(days)
	}

	p.Status = classify(p.Difference, totalIncome)
	return p
}

func classify(difference, totalIncome decimal.Decimal) Status {
	if !difference.IsPositive() {
		return StatusGood
	}
	if difference.LessThanOrEqual(totalIncome.Mul(warningShare)) {
		return StatusWarning
	}
	return StatusDanger
}

// Rounded returns a copy with monetary fields rounded to 2 decimal
// places. Rounding happens only here so derived fields never compound
// rounding error.
func (p Pace) Rounded() Pace {
	p.DailyBudget = p.DailyBudget.Round(2)
	p.ShouldHaveSpent = p.ShouldHaveSpent.Round(2)
	p.Difference = p.Difference.Round(2)
	p.RemainingBudget = p.RemainingBudget.Round(2)
	p.DailyBudgetRemaining = p.DailyBudgetRemaining.Round(2)
	p.ProjectedMonthEnd = p.ProjectedMonthEnd.Round(2)
	return p
}

func daysIn(t time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
