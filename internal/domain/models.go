package domain

// OrientationType selects which orientation pay formula applies.
type OrientationType string

const (
	OrientationBillable    OrientationType = "Billable"
	OrientationNonBillable OrientationType = "Non Billable"
)

const (
	// Burden is the multiplier applied to taxable pay components to
	// approximate employer-side costs (payroll tax, workers comp, etc).
	Burden = 1.23

	// WeeksInMonth is the fixed week count used for monthly roll-ups.
	WeeksInMonth = 4

	// DefaultOrientationPay is the fixed hourly rate for non-billable
	// orientation when no rate has been entered.
	DefaultOrientationPay = 16.5

	// TargetMargin is the hourly gross margin the gauge measures against.
	TargetMargin = 5.0

	// DefaultClient is the client selected on a fresh or reset form.
	DefaultClient = "SimpliFI"
)

// Client pairs a VMS/MSP client key with the fee fraction subtracted from
// every billed rate for that client.
type Client struct {
	Name string
	Fee  float64
}

// Clients is the fixed client fee schedule. Fees are contractual and do not
// change per session; SimpliFI is direct business and carries no fee.
var Clients = []Client{
	{Name: "SimpliFI", Fee: 0},
	{Name: "AMN", Fee: 0.05},
	{Name: "Medefis", Fee: 0.0225},
	{Name: "Aya", Fee: 0.035},
	{Name: "Stafferlink", Fee: 0.03},
	{Name: "ShiftWise", Fee: 0.0375},
	{Name: "Direct", Fee: 0},
}

// FeeFor returns the fee fraction for a client key, or 0 when the key is
// not in the schedule.
func FeeFor(name string) float64 {
	for _, c := range Clients {
		if c.Name == name {
			return c.Fee
		}
	}
	return 0
}

// Inputs is the flat input record rebuilt from form state on every
// recalculation. Numeric fields default to zero when the source field is
// absent or non-numeric; the engine never rejects an input.
type Inputs struct {
	Client             string          `json:"client"`
	BillRate           float64         `json:"bill_rate"`
	BillOTAdd          float64         `json:"bill_ot_add"`
	PayRate            float64         `json:"pay_rate"`
	RegularHours       float64         `json:"regular_hours"`
	OTHours            float64         `json:"ot_hours"`
	ContractWeeks      float64         `json:"contract_weeks"`
	HousingDaily       float64         `json:"housing_daily"`
	MealsDaily         float64         `json:"meals_daily"`
	OrientationType    OrientationType `json:"orientation_type"`
	OrientationHours   float64         `json:"orientation_hours"`
	OrientationPayRate float64         `json:"orientation_pay"`
	BonusStart         float64         `json:"bonus_start"`
	BonusComplete      float64         `json:"bonus_complete"`
	BCGReimbursement   float64         `json:"bcg_reimbursement"`
	ScheduleDays       float64         `json:"schedule_days"`
	SickHours          float64         `json:"sick_hours"`
	AutoSickHours      bool            `json:"auto_sick_hours"`
}

// Results is the full set of derived figures for one input record. Every
// value is recomputed from scratch on each calculation; nothing carries
// over between calls.
type Results struct {
	Fee        float64 `json:"fee"`
	FeePercent string  `json:"fee_percent"`
	Title      string  `json:"title"`

	AfterFeeRegular float64 `json:"after_fee_regular"`
	AfterFeeOT      float64 `json:"after_fee_ot"`

	DailyStipend  float64 `json:"daily_stipend"`
	WeeklyStipend float64 `json:"weekly_stipend"`
	HourlyHousing float64 `json:"hourly_housing"`
	HourlyMeals   float64 `json:"hourly_meals"`
	HourlyStipend float64 `json:"hourly_stipend"`

	ContractRegularHours float64 `json:"contract_regular_hours"`
	ContractOTHours      float64 `json:"contract_ot_hours"`
	AutoSickHours        float64 `json:"auto_sick_hours"`
	SickHours            float64 `json:"sick_hours"`

	BonusStartHourly    float64 `json:"bonus_start_hourly"`
	BonusCompleteHourly float64 `json:"bonus_complete_hourly"`
	BCGHourly           float64 `json:"bcg_hourly"`
	SickHourly          float64 `json:"sick_hourly"`

	OrientationRate   float64 `json:"orientation_rate"`
	OrientationTotal  float64 `json:"orientation_total"`
	OrientationHourly float64 `json:"orientation_hourly"`

	OvertimeRate float64 `json:"overtime_rate"`

	WeeklyTaxable    float64 `json:"weekly_taxable"`
	WeeklyStipendPay float64 `json:"weekly_stipend_pay"`
	WeeklyGross      float64 `json:"weekly_gross"`
	HourlyGross      float64 `json:"hourly_gross"`
	DailyGross       float64 `json:"daily_gross"`
	MonthlyGross     float64 `json:"monthly_gross"`
	ContractGross    float64 `json:"contract_gross"`

	BillingWeekly   float64 `json:"billing_weekly"`
	BillingMonthly  float64 `json:"billing_monthly"`
	BillingContract float64 `json:"billing_contract"`

	HourlyMargin   float64 `json:"hourly_margin"`
	MarginWeekly   float64 `json:"margin_weekly"`
	MarginMonthly  float64 `json:"margin_monthly"`
	MarginContract float64 `json:"margin_contract"`

	// GaugeFill is hourly margin over target clamped to [0,1]; TargetMet
	// drives the green/red indicator.
	GaugeFill float64 `json:"gauge_fill"`
	TargetMet bool    `json:"target_met"`
}
