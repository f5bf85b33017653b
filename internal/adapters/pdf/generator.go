// Package pdf generates a printable pay-package quote sheet: the contract
// inputs, the computed breakdown grouped the way the calculator page groups
// it, and the margin-vs-target verdict.
package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/ratecalc/internal/domain"
	"github.com/csg33k/ratecalc/internal/form"
)

type Generator struct {
	target float64
}

// New returns a quote-sheet generator; target is the margin the sheet
// annotates the gauge line with.
func New(target float64) *Generator {
	if target <= 0 {
		target = domain.TargetMargin
	}
	return &Generator{target: target}
}

// Generate writes a quote sheet to w. Satisfies ports.QuoteSheetGenerator.
func (g *Generator) Generate(ctx context.Context, in domain.Inputs, res domain.Results, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	g.drawQuotePage(pdf, in, res)
	return pdf.Output(w)
}

func (g *Generator) drawQuotePage(pdf *fpdf.Fpdf, in domain.Inputs, res domain.Results) {
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR
	colHalf := contentW / 2

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, "PAY PACKAGE QUOTE", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 13

	// ── Contract block ───────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 5.5, "CONTRACT", "LRT", 1, "L", true, 0, "")
	y += 5.5

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(colHalf, 6, "Client: "+in.Client, "L", 0, "L", false, 0, "")
	pdf.CellFormat(colHalf, 6, "Fee: "+res.FeePercent, "R", 1, "L", false, 0, "")
	y += 6
	pdf.SetXY(marginL, y)
	schedule := fmt.Sprintf("%s reg + %s OT hrs/wk, %s days, %s weeks",
		form.Hours(in.RegularHours), form.Hours(in.OTHours),
		form.Hours(in.ScheduleDays), form.Hours(in.ContractWeeks))
	pdf.CellFormat(contentW, 6, schedule, "LB", 1, "L", false, 0, "")
	y += 9

	// ── Inputs block ─────────────────────────────────────────────────────────
	type row struct{ label, value string }
	inputs := []row{
		{"Bill Rate", form.Currency(in.BillRate)},
		{"Bill OT Add", form.Currency(in.BillOTAdd)},
		{"Pay Rate", form.Currency(in.PayRate)},
		{"Overtime Rate", form.Currency(res.OvertimeRate)},
		{"Housing / Day", form.Currency(in.HousingDaily)},
		{"Meals / Day", form.Currency(in.MealsDaily)},
		{"Orientation", string(in.OrientationType) + ", " + form.Hours(in.OrientationHours) + " hrs"},
		{"Orientation Rate", form.Currency(res.OrientationRate)},
		{"Start Bonus", form.Currency(in.BonusStart)},
		{"Completion Bonus", form.Currency(in.BonusComplete)},
		{"BCG Reimbursement", form.Currency(in.BCGReimbursement)},
		{"Sick Hours", form.Hours(res.SickHours)},
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 5.5, "INPUTS", "LRT", 1, "L", true, 0, "")
	y += 5.5

	pdf.SetFont("Helvetica", "", 8.5)
	for i := 0; i < len(inputs); i += 2 {
		pdf.SetXY(marginL, y)
		border := "L"
		if i+2 >= len(inputs) {
			border = "LB"
		}
		pdf.CellFormat(colHalf*0.55, 5.5, inputs[i].label, border, 0, "L", false, 0, "")
		pdf.CellFormat(colHalf*0.45, 5.5, inputs[i].value, "", 0, "R", false, 0, "")
		if i+1 < len(inputs) {
			rborder := "R"
			if i+2 >= len(inputs) {
				rborder = "RB"
			}
			pdf.CellFormat(colHalf*0.55, 5.5, inputs[i+1].label, "", 0, "L", false, 0, "")
			pdf.CellFormat(colHalf*0.45, 5.5, inputs[i+1].value, rborder, 1, "R", false, 0, "")
		} else {
			pdf.CellFormat(colHalf, 5.5, "", "RB", 1, "L", false, 0, "")
		}
		y += 5.5
	}
	y += 4

	// ── Breakdown table, driven by the display-field schema ──────────────────
	// From here on rows flow through fpdf's cursor so the auto page break
	// can split long tables cleanly.
	labelW := contentW * 0.65
	valueW := contentW - labelW
	pdf.SetXY(marginL, y)

	section := ""
	i := 0
	for _, f := range form.Fields {
		switch f.ID {
		case "title_display", "fee_display", "gauge_value":
			continue
		}
		if f.Section != section {
			section = f.Section
			pdf.SetFillColor(30, 30, 30)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetFont("Helvetica", "B", 8.5)
			pdf.CellFormat(contentW, 6, section, "1", 1, "L", true, 0, "")
			pdf.SetTextColor(0, 0, 0)
			i = 0
		}
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.CellFormat(labelW, 5.5, f.Label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(valueW, 5.5, form.Format(f, res), "1", 1, "R", true, 0, "")
		i++
	}
	pdf.Ln(4)

	// ── Margin verdict ───────────────────────────────────────────────────────
	if res.TargetMet {
		pdf.SetFillColor(220, 240, 220)
	} else {
		pdf.SetFillColor(245, 220, 215)
	}
	pdf.SetFont("Helvetica", "B", 10)
	verdict := fmt.Sprintf("HOURLY MARGIN %s  (target %s)", form.Currency(res.HourlyMargin), form.Currency(g.target))
	pdf.CellFormat(contentW, 8, verdict, "1", 1, "C", true, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetXY(marginL, pageH-marginB-6)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, "Generated by Pay Package Rate Calculator", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, in.Client+" | "+res.FeePercent+" fee", "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
