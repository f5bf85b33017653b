package form_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/csg33k/ratecalc/internal/domain"
	"github.com/csg33k/ratecalc/internal/form"
)

func TestReadDefaultsOnMissingInput(t *testing.T) {
	in := form.Read(url.Values{})

	if in.Client != domain.DefaultClient {
		t.Errorf("Client = %q, want %q", in.Client, domain.DefaultClient)
	}
	if in.OrientationType != domain.OrientationNonBillable {
		t.Errorf("OrientationType = %q, want non-billable", in.OrientationType)
	}
	if in.BillRate != 0 || in.PayRate != 0 || in.RegularHours != 0 {
		t.Errorf("numeric fields should default to 0, got %+v", in)
	}
	if in.AutoSickHours {
		t.Error("absent checkbox should read as unchecked")
	}
}

func TestReadToleratesGarbage(t *testing.T) {
	v := url.Values{
		"bill_rate":     {"eighty"},
		"pay_rate":      {""},
		"regular_hours": {"NaN"},
		"ot_hours":      {"+Inf"},
		"sick_hours":    {" 12.5 "},
	}
	in := form.Read(v)
	if in.BillRate != 0 || in.PayRate != 0 || in.RegularHours != 0 || in.OTHours != 0 {
		t.Errorf("malformed values should read as 0, got %+v", in)
	}
	if in.SickHours != 12.5 {
		t.Errorf("SickHours = %v, want trimmed 12.5", in.SickHours)
	}
}

func TestReadCheckbox(t *testing.T) {
	for _, s := range []string{"on", "1", "true", "Checked"} {
		if !form.Read(url.Values{"auto_sick": {s}}).AutoSickHours {
			t.Errorf("checkbox value %q should read as checked", s)
		}
	}
	if form.Read(url.Values{"auto_sick": {"off"}}).AutoSickHours {
		t.Error(`checkbox value "off" should read as unchecked`)
	}
}

func TestReset(t *testing.T) {
	v := url.Values{
		"client":            {"AMN"},
		"bill_rate":         {"80"},
		"pay_rate":          {"30"},
		"regular_hours":     {"40"},
		"contract_weeks":    {"13"},
		"housing_daily":     {"50"},
		"orientation_type":  {"Billable"},
		"orientation_hours": {"8"},
		"orientation_pay":   {"20"},
		"sick_hours":        {"7"},
	}
	in := form.Reset(v)

	if in.Client != domain.DefaultClient {
		t.Errorf("Client = %q, want default restored", in.Client)
	}
	if in.OrientationType != domain.OrientationNonBillable {
		t.Errorf("OrientationType = %q, want default restored", in.OrientationType)
	}
	if !in.AutoSickHours {
		t.Error("auto sick toggle should be re-checked")
	}
	if in.PayRate != 30 {
		t.Errorf("PayRate = %v, want preserved 30", in.PayRate)
	}
	if in.OrientationHours != 8 || in.OrientationPayRate != 20 {
		t.Errorf("orientation hours/pay should survive reset, got %v/%v", in.OrientationHours, in.OrientationPayRate)
	}
	if in.BillRate != 0 || in.RegularHours != 0 || in.ContractWeeks != 0 || in.HousingDaily != 0 || in.SickHours != 0 {
		t.Errorf("other numeric inputs should zero on reset, got %+v", in)
	}
}

func TestResetDefaultsOrientationPay(t *testing.T) {
	in := form.Reset(url.Values{})
	if in.OrientationPayRate != domain.DefaultOrientationPay {
		t.Errorf("OrientationPayRate = %v, want %v", in.OrientationPayRate, domain.DefaultOrientationPay)
	}
}

func TestCurrencyFormatting(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "$0.00"},
		{23.35, "$23.35"},
		{23.349, "$23.35"},
		{-4.5, "$-4.50"},
		{math.NaN(), "$0.00"},
		{math.Inf(1), "$0.00"},
		{math.Inf(-1), "$0.00"},
	}
	for _, tc := range cases {
		if got := form.Currency(tc.v); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestWriteSkipsMissingFields(t *testing.T) {
	res := domain.Results{HourlyMargin: 23.35, AfterFeeRegular: 76, Title: "AMN Pay Package", FeePercent: "5.00%"}

	fields := form.AllFields()
	delete(fields, "hourly_margin")
	delete(fields, "title_display")

	out := form.Write(res, fields)
	if _, ok := out["hourly_margin"]; ok {
		t.Error("removed field hourly_margin should be skipped")
	}
	if _, ok := out["title_display"]; ok {
		t.Error("removed field title_display should be skipped")
	}
	// Remaining fields still update correctly.
	if out["after_fee_regular"] != "$76.00" {
		t.Errorf("after_fee_regular = %q, want $76.00", out["after_fee_regular"])
	}
	if out["fee_display"] != "5.00%" {
		t.Errorf("fee_display = %q, want 5.00%%", out["fee_display"])
	}
	// gauge_value mirrors the margin even with the margin row removed.
	if out["gauge_value"] != "$23.35" {
		t.Errorf("gauge_value = %q, want $23.35", out["gauge_value"])
	}
}

func TestWriteCoversWholeSchema(t *testing.T) {
	out := form.Write(domain.Results{}, nil)
	if len(out) != len(form.Fields) {
		t.Fatalf("Write(nil set) produced %d fields, want %d", len(out), len(form.Fields))
	}
	for _, f := range form.Fields {
		if _, ok := out[f.ID]; !ok {
			t.Errorf("schema field %q missing from output", f.ID)
		}
	}
}

func TestWriteSubstitutesNonFinite(t *testing.T) {
	res := domain.Results{
		ContractGross: math.NaN(),
		DailyGross:    math.Inf(1),
		MarginWeekly:  math.Inf(-1),
	}
	out := form.Write(res, nil)
	for _, id := range []string{"contract_gross", "daily_gross", "margin_weekly"} {
		if out[id] != "$0.00" {
			t.Errorf("%s = %q, want $0.00 for a non-finite value", id, out[id])
		}
	}
}
