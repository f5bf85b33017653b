package form

// Kind selects how a display field renders its value.
type Kind int

const (
	KindCurrency Kind = iota
	KindHours
	KindText
)

// Field describes one output display field on the host page: its stable id,
// the label shown next to it, the section the page groups it under, and how
// its value formats.
type Field struct {
	ID      string
	Label   string
	Section string
	Kind    Kind
}

// Fields is the full display-field schema in page order. The output writer
// emits a value for every id here that the host page declares; ids the page
// dropped are skipped silently, so the page can carry any subset.
var Fields = []Field{
	{ID: "title_display", Label: "Package Title", Section: "Client", Kind: KindText},
	{ID: "fee_display", Label: "Client Fee", Section: "Client", Kind: KindText},
	{ID: "after_fee_regular", Label: "After-Fee Bill Rate", Section: "Client", Kind: KindCurrency},
	{ID: "after_fee_ot", Label: "After-Fee OT Bill Rate", Section: "Client", Kind: KindCurrency},

	{ID: "daily_stipend", Label: "Daily Stipend", Section: "Stipends", Kind: KindCurrency},
	{ID: "weekly_stipend", Label: "Weekly Stipend", Section: "Stipends", Kind: KindCurrency},
	{ID: "hourly_housing", Label: "Hourly Housing (NH)", Section: "Stipends", Kind: KindCurrency},
	{ID: "hourly_meals", Label: "Hourly Meals (NH)", Section: "Stipends", Kind: KindCurrency},
	{ID: "hourly_stipend", Label: "Hourly Stipend (NH)", Section: "Stipends", Kind: KindCurrency},

	{ID: "contract_regular_hours", Label: "Contract Regular Hours", Section: "Contract Hours", Kind: KindHours},
	{ID: "contract_ot_hours", Label: "Contract OT Hours", Section: "Contract Hours", Kind: KindHours},
	{ID: "auto_sick_hours", Label: "Accrued Sick Hours", Section: "Contract Hours", Kind: KindHours},

	{ID: "bonus_start_hourly", Label: "Start Bonus / Hour", Section: "One-Time Payments", Kind: KindCurrency},
	{ID: "bonus_complete_hourly", Label: "Completion Bonus / Hour", Section: "One-Time Payments", Kind: KindCurrency},
	{ID: "bcg_hourly", Label: "BCG Reimbursement / Hour", Section: "One-Time Payments", Kind: KindCurrency},
	{ID: "sick_hourly", Label: "Sick Pay / Hour", Section: "One-Time Payments", Kind: KindCurrency},

	{ID: "orientation_rate", Label: "Orientation Rate", Section: "Orientation", Kind: KindCurrency},
	{ID: "orientation_total", Label: "Orientation Total", Section: "Orientation", Kind: KindCurrency},
	{ID: "orientation_hourly", Label: "Orientation / Contract Hour", Section: "Orientation", Kind: KindCurrency},

	{ID: "overtime_rate", Label: "Overtime Pay Rate", Section: "Weekly Pay", Kind: KindCurrency},
	{ID: "weekly_taxable", Label: "Weekly Taxable Pay", Section: "Weekly Pay", Kind: KindCurrency},
	{ID: "weekly_stipend_pay", Label: "Weekly Stipend Pay", Section: "Weekly Pay", Kind: KindCurrency},
	{ID: "weekly_gross", Label: "Weekly Gross", Section: "Weekly Pay", Kind: KindCurrency},

	{ID: "hourly_gross", Label: "Hourly Gross", Section: "Package", Kind: KindCurrency},
	{ID: "daily_gross", Label: "Daily Gross", Section: "Package", Kind: KindCurrency},
	{ID: "monthly_gross", Label: "Monthly Gross", Section: "Package", Kind: KindCurrency},
	{ID: "contract_gross", Label: "Contract Gross", Section: "Package", Kind: KindCurrency},

	{ID: "billing_weekly", Label: "Weekly Billing", Section: "Client Billing", Kind: KindCurrency},
	{ID: "billing_monthly", Label: "Monthly Billing", Section: "Client Billing", Kind: KindCurrency},
	{ID: "billing_contract", Label: "Contract Billing", Section: "Client Billing", Kind: KindCurrency},

	{ID: "hourly_margin", Label: "Hourly Margin", Section: "Margin", Kind: KindCurrency},
	{ID: "margin_weekly", Label: "Weekly Net Margin", Section: "Margin", Kind: KindCurrency},
	{ID: "margin_monthly", Label: "Monthly Net Margin", Section: "Margin", Kind: KindCurrency},
	{ID: "margin_contract", Label: "Contract Net Margin", Section: "Margin", Kind: KindCurrency},
	{ID: "gauge_value", Label: "Margin vs Target", Section: "Margin", Kind: KindCurrency},
}

// Sections returns the schema grouped by section, preserving page order.
func Sections() []string {
	var out []string
	seen := map[string]bool{}
	for _, f := range Fields {
		if !seen[f.Section] {
			seen[f.Section] = true
			out = append(out, f.Section)
		}
	}
	return out
}
