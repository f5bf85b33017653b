package form

import (
	"fmt"
	"math"

	"github.com/csg33k/ratecalc/internal/domain"
)

// FieldSet is the set of display-field ids present on the host page.
type FieldSet map[string]bool

// AllFields returns a FieldSet covering the entire schema.
func AllFields() FieldSet {
	fs := make(FieldSet, len(Fields))
	for _, f := range Fields {
		fs[f.ID] = true
	}
	return fs
}

// Write formats the derived figures as display strings keyed by field id.
// Only ids present in fields are written; a nil set means every schema
// field. Ids absent from the set are skipped without error.
func Write(r domain.Results, fields FieldSet) map[string]string {
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		if fields != nil && !fields[f.ID] {
			continue
		}
		out[f.ID] = Format(f, r)
	}
	return out
}

// Format renders one field's value per its kind.
func Format(f Field, r domain.Results) string {
	switch f.Kind {
	case KindText:
		return textValue(f.ID, r)
	case KindHours:
		return Hours(numValue(f.ID, r))
	default:
		return Currency(numValue(f.ID, r))
	}
}

// Currency formats v as a fixed-locale USD string. Non-finite values render
// as $0.00; a display field never shows NaN or Infinity.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("$%.2f", v)
}

// Hours formats an hour figure to two decimals, with the same non-finite
// substitution as Currency.
func Hours(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

func textValue(id string, r domain.Results) string {
	switch id {
	case "title_display":
		return r.Title
	case "fee_display":
		return r.FeePercent
	}
	return ""
}

func numValue(id string, r domain.Results) float64 {
	switch id {
	case "after_fee_regular":
		return r.AfterFeeRegular
	case "after_fee_ot":
		return r.AfterFeeOT
	case "daily_stipend":
		return r.DailyStipend
	case "weekly_stipend":
		return r.WeeklyStipend
	case "hourly_housing":
		return r.HourlyHousing
	case "hourly_meals":
		return r.HourlyMeals
	case "hourly_stipend":
		return r.HourlyStipend
	case "contract_regular_hours":
		return r.ContractRegularHours
	case "contract_ot_hours":
		return r.ContractOTHours
	case "auto_sick_hours":
		return r.AutoSickHours
	case "bonus_start_hourly":
		return r.BonusStartHourly
	case "bonus_complete_hourly":
		return r.BonusCompleteHourly
	case "bcg_hourly":
		return r.BCGHourly
	case "sick_hourly":
		return r.SickHourly
	case "orientation_rate":
		return r.OrientationRate
	case "orientation_total":
		return r.OrientationTotal
	case "orientation_hourly":
		return r.OrientationHourly
	case "overtime_rate":
		return r.OvertimeRate
	case "weekly_taxable":
		return r.WeeklyTaxable
	case "weekly_stipend_pay":
		return r.WeeklyStipendPay
	case "weekly_gross":
		return r.WeeklyGross
	case "hourly_gross":
		return r.HourlyGross
	case "daily_gross":
		return r.DailyGross
	case "monthly_gross":
		return r.MonthlyGross
	case "contract_gross":
		return r.ContractGross
	case "billing_weekly":
		return r.BillingWeekly
	case "billing_monthly":
		return r.BillingMonthly
	case "billing_contract":
		return r.BillingContract
	case "hourly_margin", "gauge_value":
		return r.HourlyMargin
	case "margin_weekly":
		return r.MarginWeekly
	case "margin_monthly":
		return r.MarginMonthly
	case "margin_contract":
		return r.MarginContract
	}
	return 0
}
