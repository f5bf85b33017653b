package engine_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/csg33k/ratecalc/internal/domain"
	"github.com/csg33k/ratecalc/internal/engine"
)

const eps = 1e-9

func approx(got, want float64) bool {
	return math.Abs(got-want) < eps
}

// baseInputs is the worked margin scenario: AMN contract, $80 bill,
// $30 pay, 40-hour week, $50/$40 daily stipends, no one-time payments.
func baseInputs() domain.Inputs {
	return domain.Inputs{
		Client:          "AMN",
		BillRate:        80,
		PayRate:         30,
		RegularHours:    40,
		HousingDaily:    50,
		MealsDaily:      40,
		OrientationType: domain.OrientationNonBillable,
	}
}

func TestMarginScenario(t *testing.T) {
	res := engine.New(0).Calculate(baseInputs())

	if !approx(res.AfterFeeRegular, 76.00) {
		t.Errorf("AfterFeeRegular = %.4f, want 76.00", res.AfterFeeRegular)
	}
	if res.FeePercent != "5.00%" {
		t.Errorf("FeePercent = %q, want 5.00%%", res.FeePercent)
	}
	if !approx(res.HourlyStipend, 15.75) {
		t.Errorf("HourlyStipend = %.4f, want 15.75", res.HourlyStipend)
	}
	// 76.00 - (30*1.23 + 15.75) = 23.35
	if !approx(res.HourlyMargin, 23.35) {
		t.Errorf("HourlyMargin = %.4f, want 23.35", res.HourlyMargin)
	}
	if !approx(res.MarginWeekly, 23.35*40) {
		t.Errorf("MarginWeekly = %.4f, want %.4f", res.MarginWeekly, 23.35*40)
	}
	if !approx(res.MarginMonthly, 23.35*40*4) {
		t.Errorf("MarginMonthly = %.4f, want %.4f", res.MarginMonthly, 23.35*40*4)
	}
}

func TestFeeLookup(t *testing.T) {
	cases := []struct {
		client string
		fee    float64
	}{
		{"AMN", 0.05},
		{"SimpliFI", 0},
		{"Medefis", 0.0225},
		{"no-such-client", 0},
	}
	for _, tc := range cases {
		t.Run(tc.client, func(t *testing.T) {
			in := baseInputs()
			in.Client = tc.client
			res := engine.New(0).Calculate(in)
			if !approx(res.Fee, tc.fee) {
				t.Errorf("Fee = %v, want %v", res.Fee, tc.fee)
			}
			want := in.BillRate * (1 - tc.fee)
			if !approx(res.AfterFeeRegular, want) {
				t.Errorf("AfterFeeRegular = %.4f, want %.4f", res.AfterFeeRegular, want)
			}
		})
	}
}

func TestOvertimeRateSync(t *testing.T) {
	for _, payRate := range []float64{0, 16.5, 30, 33.333, 47.77} {
		in := baseInputs()
		in.PayRate = payRate
		res := engine.New(0).Calculate(in)
		want := math.Round(payRate*1.5*100) / 100
		if !approx(res.OvertimeRate, want) {
			t.Errorf("pay %v: OvertimeRate = %v, want %v", payRate, res.OvertimeRate, want)
		}
	}
}

func TestAutoSickHours(t *testing.T) {
	in := baseInputs()
	in.ScheduleDays = 5
	in.ContractWeeks = 10
	in.AutoSickHours = true
	in.SickHours = 99 // ignored while the toggle is on

	res := engine.New(0).Calculate(in)
	// (5*10*8)/30 = 13.333..., rounded to 13.33
	if !approx(res.AutoSickHours, 13.33) {
		t.Errorf("AutoSickHours = %v, want 13.33", res.AutoSickHours)
	}
	if !approx(res.SickHours, 13.33) {
		t.Errorf("SickHours = %v, want auto value 13.33", res.SickHours)
	}

	in.AutoSickHours = false
	res = engine.New(0).Calculate(in)
	if !approx(res.SickHours, 99) {
		t.Errorf("SickHours = %v, want manual value 99", res.SickHours)
	}
}

func TestDailyOvertimeNesting(t *testing.T) {
	t.Run("long days over 40 hours get the uplift", func(t *testing.T) {
		in := baseInputs()
		in.RegularHours = 48
		in.ScheduleDays = 4
		res := engine.New(0).Calculate(in)

		// 12h/day: 16 excess hours at (45 + stipend), 32 at base.
		stipend := (50.0 + 40.0) * 7 / 40 // 15.75, week over 40 blends over 40
		want := 32*30.0 + 16*(45.0+stipend)
		if !approx(res.WeeklyTaxable, want) {
			t.Errorf("WeeklyTaxable = %.4f, want %.4f", res.WeeklyTaxable, want)
		}
	})

	t.Run("long days under 40 hours stay at base rate", func(t *testing.T) {
		in := baseInputs()
		in.RegularHours = 36
		in.ScheduleDays = 3
		res := engine.New(0).Calculate(in)
		if !approx(res.WeeklyTaxable, 36*30.0) {
			t.Errorf("WeeklyTaxable = %.4f, want %.4f", res.WeeklyTaxable, 36*30.0)
		}
	})

	t.Run("40-hour week is flat", func(t *testing.T) {
		in := baseInputs()
		in.ScheduleDays = 5
		res := engine.New(0).Calculate(in)
		if !approx(res.WeeklyTaxable, 40*30.0) {
			t.Errorf("WeeklyTaxable = %.4f, want %.4f", res.WeeklyTaxable, 40*30.0)
		}
	})
}

func TestStipendDivisorRule(t *testing.T) {
	in := baseInputs()
	in.RegularHours = 36
	res := engine.New(0).Calculate(in)
	want := (50.0 + 40.0) * 7 / 36
	if !approx(res.HourlyStipend, want) {
		t.Errorf("HourlyStipend = %.4f, want %.4f (blend over 36)", res.HourlyStipend, want)
	}

	in.RegularHours = 60
	res = engine.New(0).Calculate(in)
	want = (50.0 + 40.0) * 7 / 40
	if !approx(res.HourlyStipend, want) {
		t.Errorf("HourlyStipend = %.4f, want %.4f (blend over 40)", res.HourlyStipend, want)
	}
}

func TestOrientation(t *testing.T) {
	t.Run("billable uses pay plus stipend", func(t *testing.T) {
		in := baseInputs()
		in.OrientationType = domain.OrientationBillable
		in.OrientationHours = 8
		in.OrientationPayRate = 20 // ignored when billable
		res := engine.New(0).Calculate(in)
		if !approx(res.OrientationRate, 30+15.75) {
			t.Errorf("OrientationRate = %.4f, want %.4f", res.OrientationRate, 30+15.75)
		}
		if res.OrientationHourly != 0 {
			t.Errorf("OrientationHourly = %v, want 0 for billable", res.OrientationHourly)
		}
	})

	t.Run("non-billable defaults the rate", func(t *testing.T) {
		in := baseInputs()
		in.OrientationPayRate = 0
		res := engine.New(0).Calculate(in)
		if !approx(res.OrientationRate, domain.DefaultOrientationPay) {
			t.Errorf("OrientationRate = %v, want %v", res.OrientationRate, domain.DefaultOrientationPay)
		}
	})

	t.Run("non-billable surcharge amortizes over contract hours", func(t *testing.T) {
		in := baseInputs()
		in.ScheduleDays = 5
		in.ContractWeeks = 10
		in.OrientationHours = 8
		in.OrientationPayRate = 16.5
		res := engine.New(0).Calculate(in)
		want := 16.5 * 8 / 400
		if !approx(res.OrientationHourly, want) {
			t.Errorf("OrientationHourly = %.6f, want %.6f", res.OrientationHourly, want)
		}
		// Surcharge is burdened in the margin.
		base := baseInputs()
		base.ScheduleDays = 5
		base.ContractWeeks = 10
		plain := engine.New(0).Calculate(base)
		if !approx(plain.HourlyMargin-res.HourlyMargin, want*domain.Burden) {
			t.Errorf("margin delta = %.6f, want %.6f", plain.HourlyMargin-res.HourlyMargin, want*domain.Burden)
		}
	})
}

func TestOneTimePayments(t *testing.T) {
	in := baseInputs()
	in.ScheduleDays = 5
	in.ContractWeeks = 13
	in.BonusStart = 520
	in.BonusComplete = 1040
	in.BCGReimbursement = 52
	res := engine.New(0).Calculate(in)

	hours := 5.0 * 13 * 8 // 520
	if !approx(res.BonusStartHourly, 1) {
		t.Errorf("BonusStartHourly = %v, want 1", res.BonusStartHourly)
	}
	if !approx(res.BonusCompleteHourly, 2) {
		t.Errorf("BonusCompleteHourly = %v, want 2", res.BonusCompleteHourly)
	}
	if !approx(res.BCGHourly, 52/hours) {
		t.Errorf("BCGHourly = %v, want %v", res.BCGHourly, 52/hours)
	}

	// Bonuses burdened, reimbursement not.
	base := baseInputs()
	base.ScheduleDays = 5
	base.ContractWeeks = 13
	plain := engine.New(0).Calculate(base)
	wantDelta := (1.0+2.0)*domain.Burden + 52/hours
	if !approx(plain.HourlyMargin-res.HourlyMargin, wantDelta) {
		t.Errorf("margin delta = %.6f, want %.6f", plain.HourlyMargin-res.HourlyMargin, wantDelta)
	}
}

func TestBilling(t *testing.T) {
	in := baseInputs()
	in.BillOTAdd = 10
	in.OTHours = 4
	in.ContractWeeks = 13
	res := engine.New(0).Calculate(in)

	afr := 80 * 0.95
	afo := 90 * 0.95
	if !approx(res.BillingWeekly, 40*afr+4*afo) {
		t.Errorf("BillingWeekly = %.4f, want %.4f", res.BillingWeekly, 40*afr+4*afo)
	}
	// Monthly multiplies regular hours only; the OT term stays weekly.
	if !approx(res.BillingMonthly, 4*40*afr+4*afo) {
		t.Errorf("BillingMonthly = %.4f, want %.4f", res.BillingMonthly, 4*40*afr+4*afo)
	}
	if !approx(res.BillingContract, (40*afr+4*afo)*13) {
		t.Errorf("BillingContract = %.4f, want %.4f", res.BillingContract, (40*afr+4*afo)*13)
	}
}

func TestIdempotence(t *testing.T) {
	in := baseInputs()
	in.ScheduleDays = 5
	in.ContractWeeks = 13
	in.OTHours = 8
	in.AutoSickHours = true
	e := engine.New(0)
	first := e.Calculate(in)
	second := e.Calculate(in)
	if first != second {
		t.Fatalf("recalculation changed outputs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestZeroInputsProduceFiniteOutputs(t *testing.T) {
	cases := map[string]domain.Inputs{
		"all zero":          {},
		"zero hours":        {Client: "AMN", BillRate: 80, PayRate: 30, HousingDaily: 50},
		"zero schedule":     {Client: "AMN", BillRate: 80, PayRate: 30, RegularHours: 40, ContractWeeks: 13},
		"negative weeks":    {Client: "AMN", BillRate: 80, PayRate: 30, RegularHours: 40, ContractWeeks: -1},
		"auto sick no plan": {AutoSickHours: true},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			res := engine.New(0).Calculate(in)
			v := reflect.ValueOf(res)
			for i := 0; i < v.NumField(); i++ {
				f := v.Field(i)
				if f.Kind() != reflect.Float64 {
					continue
				}
				if math.IsNaN(f.Float()) {
					t.Errorf("field %s is NaN", v.Type().Field(i).Name)
				}
			}
		})
	}
}

func TestGauge(t *testing.T) {
	e := engine.New(5)

	res := e.Calculate(baseInputs()) // margin 23.35
	if !approx(res.GaugeFill, 1) {
		t.Errorf("GaugeFill = %v, want clamped 1", res.GaugeFill)
	}
	if !res.TargetMet {
		t.Error("TargetMet = false, want true at margin 23.35")
	}

	in := baseInputs()
	in.BillRate = 0 // margin goes negative
	res = e.Calculate(in)
	if res.GaugeFill != 0 {
		t.Errorf("GaugeFill = %v, want clamped 0", res.GaugeFill)
	}
	if res.TargetMet {
		t.Error("TargetMet = true, want false for negative margin")
	}

	in = baseInputs()
	in.BillRate = 58 // margin ≈ 2.45
	res = e.Calculate(in)
	if res.GaugeFill <= 0 || res.GaugeFill >= 1 {
		t.Errorf("GaugeFill = %v, want a value strictly inside (0,1)", res.GaugeFill)
	}
}
