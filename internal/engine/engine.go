// Package engine computes the derived pay-package figures from a flat input
// record. Calculation is a pure function of the inputs: no state carries
// between calls, division by a possibly-zero quantity substitutes 0, and the
// same inputs always produce the same outputs.
package engine

import (
	"fmt"
	"math"

	"github.com/csg33k/ratecalc/internal/domain"
)

// Engine holds the target hourly margin the gauge measures against.
type Engine struct {
	target float64
}

// New returns an engine with the given gauge target; non-positive values
// fall back to the fixed default.
func New(targetMargin float64) *Engine {
	if targetMargin <= 0 {
		targetMargin = domain.TargetMargin
	}
	return &Engine{target: targetMargin}
}

// Target returns the gauge target margin.
func (e *Engine) Target() float64 { return e.target }

// Calculate derives the full result set for one input record.
func (e *Engine) Calculate(in domain.Inputs) domain.Results {
	fee := domain.FeeFor(in.Client)
	afterFeeRegular := in.BillRate * (1 - fee)
	afterFeeOT := (in.BillRate + in.BillOTAdd) * (1 - fee)

	// Stipend: daily housing+meals blended into an hourly non-taxable rate.
	// Weeks over 40 hours blend over 40; shorter weeks blend over the
	// scheduled hours.
	dailyStipend := in.HousingDaily + in.MealsDaily
	weeklyStipend := dailyStipend * 7
	div := stipendDivisor(in.RegularHours)
	hourlyHousing := safeDiv(in.HousingDaily*7, div)
	hourlyMeals := safeDiv(in.MealsDaily*7, div)
	hourlyStipend := hourlyHousing + hourlyMeals

	contractRegular := in.ScheduleDays * in.ContractWeeks * 8
	contractOT := in.OTHours * in.ContractWeeks

	autoSick := round2(safeDiv(contractRegular, 30))
	sick := in.SickHours
	if in.AutoSickHours {
		sick = autoSick
	}

	// One-time payments amortized over contract regular hours.
	bonusStartHourly := safeDiv(in.BonusStart, contractRegular)
	bonusCompleteHourly := safeDiv(in.BonusComplete, contractRegular)
	bcgHourly := safeDiv(in.BCGReimbursement, contractRegular)
	sickHourly := safeDiv(sick*in.PayRate, contractRegular)

	orientationRate := orientationRate(in, hourlyStipend)
	orientationTotal := orientationRate * in.OrientationHours
	var orientationHourly float64
	if in.OrientationType == domain.OrientationNonBillable && contractRegular > 0 {
		orientationHourly = orientationTotal / contractRegular
	}

	otRate := in.PayRate * 1.5
	weeklyTaxable := weeklyTaxablePay(in, otRate, hourlyStipend)
	weeklyStipendPay := in.RegularHours * hourlyStipend
	weeklyGross := weeklyTaxable + weeklyStipendPay

	days := math.Max(1, in.ScheduleDays)
	hourlyGross := safeDiv(weeklyGross, in.RegularHours)
	dailyGross := weeklyGross / days
	monthlyGross := weeklyGross * domain.WeeksInMonth
	contractGross := weeklyGross * in.ContractWeeks

	billingWeekly := in.RegularHours*afterFeeRegular + in.OTHours*afterFeeOT
	billingMonthly := domain.WeeksInMonth*in.RegularHours*afterFeeRegular + in.OTHours*afterFeeOT
	billingContract := billingWeekly * in.ContractWeeks

	// Hourly margin: bill rate after fee, less burdened W-2 pay, unburdened
	// stipend and reimbursement, burdened one-time payments, and the
	// burdened non-billable orientation surcharge.
	hourlyCost := in.PayRate*domain.Burden +
		hourlyStipend + bcgHourly +
		(bonusStartHourly+bonusCompleteHourly)*domain.Burden +
		orientationHourly*domain.Burden
	hourlyMargin := afterFeeRegular - hourlyCost
	marginWeekly := hourlyMargin * in.RegularHours
	marginMonthly := marginWeekly * domain.WeeksInMonth
	marginContract := marginWeekly * in.ContractWeeks

	return domain.Results{
		Fee:        fee,
		FeePercent: fmt.Sprintf("%.2f%%", fee*100),
		Title:      in.Client + " Pay Package",

		AfterFeeRegular: afterFeeRegular,
		AfterFeeOT:      afterFeeOT,

		DailyStipend:  dailyStipend,
		WeeklyStipend: weeklyStipend,
		HourlyHousing: hourlyHousing,
		HourlyMeals:   hourlyMeals,
		HourlyStipend: hourlyStipend,

		ContractRegularHours: contractRegular,
		ContractOTHours:      contractOT,
		AutoSickHours:        autoSick,
		SickHours:            sick,

		BonusStartHourly:    bonusStartHourly,
		BonusCompleteHourly: bonusCompleteHourly,
		BCGHourly:           bcgHourly,
		SickHourly:          sickHourly,

		OrientationRate:   orientationRate,
		OrientationTotal:  orientationTotal,
		OrientationHourly: orientationHourly,

		OvertimeRate: round2(otRate),

		WeeklyTaxable:    weeklyTaxable,
		WeeklyStipendPay: weeklyStipendPay,
		WeeklyGross:      weeklyGross,
		HourlyGross:      hourlyGross,
		DailyGross:       dailyGross,
		MonthlyGross:     monthlyGross,
		ContractGross:    contractGross,

		BillingWeekly:   billingWeekly,
		BillingMonthly:  billingMonthly,
		BillingContract: billingContract,

		HourlyMargin:   hourlyMargin,
		MarginWeekly:   marginWeekly,
		MarginMonthly:  marginMonthly,
		MarginContract: marginContract,

		GaugeFill: clamp01(hourlyMargin / e.target),
		TargetMet: hourlyMargin >= e.target,
	}
}

// orientationRate is the effective hourly orientation rate: base pay plus
// the hourly stipend when orientation bills to the client, otherwise the
// entered rate (fixed default when none entered).
func orientationRate(in domain.Inputs, hourlyStipend float64) float64 {
	if in.OrientationType == domain.OrientationBillable {
		return in.PayRate + hourlyStipend
	}
	if in.OrientationPayRate == 0 {
		return domain.DefaultOrientationPay
	}
	return in.OrientationPayRate
}

// weeklyTaxablePay splits the week into normal-rate and excess hours when
// the schedule runs past 8 hours a day. The daily-overtime uplift only
// engages when the week also exceeds 40 hours in aggregate; shorter weeks
// pay every hour at base rate even with long days. The excess-hour rate
// includes the hourly stipend, matching the established payroll practice
// this calculator replicates.
func weeklyTaxablePay(in domain.Inputs, otRate, hourlyStipend float64) float64 {
	days := math.Max(1, in.ScheduleDays)
	perDay := in.RegularHours / days
	if perDay > 8 && in.RegularHours > 40 {
		excess := (perDay - 8) * days
		normal := in.RegularHours - excess
		return normal*in.PayRate + excess*(otRate+hourlyStipend)
	}
	return in.RegularHours * in.PayRate
}

// stipendDivisor returns the hour base the weekly stipend blends over.
func stipendDivisor(regularHours float64) float64 {
	if regularHours > 40 {
		return 40
	}
	return regularHours
}

// safeDiv divides a by b, substituting 0 for a zero divisor or a non-finite
// quotient.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	v := a / b
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
