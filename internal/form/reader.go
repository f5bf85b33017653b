// Package form binds the calculator's HTTP form to the domain records: a
// permissive reader that substitutes defaults for anything missing or
// malformed, and a writer that formats derived figures for whichever display
// fields the host page carries.
package form

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/csg33k/ratecalc/internal/domain"
)

// Defaults is the reset-state input record: default client, non-billable
// orientation at the fixed rate, auto sick accrual on, everything else zero.
func Defaults() domain.Inputs {
	return domain.Inputs{
		Client:             domain.DefaultClient,
		OrientationType:    domain.OrientationNonBillable,
		OrientationPayRate: domain.DefaultOrientationPay,
		AutoSickHours:      true,
	}
}

// Read builds the flat input record from posted form values. Absent or
// non-numeric fields fall back to safe defaults; reading never fails.
func Read(values url.Values) domain.Inputs {
	return domain.Inputs{
		Client:             clientValue(values.Get("client")),
		BillRate:           num(values, "bill_rate"),
		BillOTAdd:          num(values, "bill_ot_add"),
		PayRate:            num(values, "pay_rate"),
		RegularHours:       num(values, "regular_hours"),
		OTHours:            num(values, "ot_hours"),
		ContractWeeks:      num(values, "contract_weeks"),
		HousingDaily:       num(values, "housing_daily"),
		MealsDaily:         num(values, "meals_daily"),
		OrientationType:    orientationValue(values.Get("orientation_type")),
		OrientationHours:   num(values, "orientation_hours"),
		OrientationPayRate: num(values, "orientation_pay"),
		BonusStart:         num(values, "bonus_start"),
		BonusComplete:      num(values, "bonus_complete"),
		BCGReimbursement:   num(values, "bcg_reimbursement"),
		ScheduleDays:       num(values, "schedule_days"),
		SickHours:          num(values, "sick_hours"),
		AutoSickHours:      checked(values.Get("auto_sick")),
	}
}

// Reset zeroes every numeric input except orientation hours/pay and the base
// pay rate, restores the client and orientation defaults, and re-checks the
// auto sick toggle. The overtime rate is derived, so preserving the base pay
// rate preserves it too.
func Reset(values url.Values) domain.Inputs {
	in := Defaults()
	in.PayRate = num(values, "pay_rate")
	in.OrientationHours = num(values, "orientation_hours")
	in.OrientationPayRate = num(values, "orientation_pay")
	if in.OrientationPayRate == 0 {
		in.OrientationPayRate = domain.DefaultOrientationPay
	}
	return in
}

func clientValue(s string) string {
	if s == "" {
		return domain.DefaultClient
	}
	return s
}

func orientationValue(s string) domain.OrientationType {
	if s == string(domain.OrientationBillable) {
		return domain.OrientationBillable
	}
	return domain.OrientationNonBillable
}

// checked reports whether a checkbox value counts as on. Browsers send "on"
// for a bare checkbox and omit the key entirely when unchecked.
func checked(s string) bool {
	switch strings.ToLower(s) {
	case "on", "1", "true", "checked":
		return true
	}
	return false
}

// num parses a numeric field, substituting 0 for anything absent,
// non-numeric, or non-finite.
func num(values url.Values, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(values.Get(key)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
