// Package templates renders the calculator page and its HTMX fragments.
//
// NOTE: In a full project these would be .templ files compiled via
// `templ generate`. They are inlined here as html/template wrapped in
// templ.ComponentFunc for zero-codegen portability; swap to templ by moving
// each block to its own .templ file.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/ratecalc/internal/domain"
	"github.com/csg33k/ratecalc/internal/form"
)

type fieldRow struct {
	ID    string
	Label string
	Value string
}

type section struct {
	Name   string
	Fields []fieldRow
}

type viewData struct {
	Inputs  domain.Inputs
	Results domain.Results
	Out     map[string]string

	Clients          []domain.Client
	OrientationTypes []domain.OrientationType
	Sections         []section

	Title      string
	FeeDisplay string

	Billable bool
	AutoSick bool

	OvertimeRate string
	SickHours    string

	GaugeColor  string
	GaugeFilled float64
	GaugeTotal  float64
	GaugeValue  string
}

func buildViewData(in domain.Inputs, res domain.Results, out map[string]string) viewData {
	var sections []section
	for _, name := range form.Sections() {
		var rows []fieldRow
		for _, f := range form.Fields {
			if f.Section != name {
				continue
			}
			// Header and gauge fields render outside the results grid.
			switch f.ID {
			case "title_display", "fee_display", "gauge_value":
				continue
			}
			v, ok := out[f.ID]
			if !ok {
				continue // field absent from the host page
			}
			rows = append(rows, fieldRow{ID: f.ID, Label: f.Label, Value: v})
		}
		if len(rows) > 0 {
			sections = append(sections, section{Name: name, Fields: rows})
		}
	}

	return viewData{
		Inputs:           in,
		Results:          res,
		Out:              out,
		Clients:          domain.Clients,
		OrientationTypes: []domain.OrientationType{domain.OrientationBillable, domain.OrientationNonBillable},
		Sections:         sections,
		Title:            out["title_display"],
		FeeDisplay:       out["fee_display"],
		Billable:         in.OrientationType == domain.OrientationBillable,
		AutoSick:         in.AutoSickHours,
		OvertimeRate:     rateValue(res.OvertimeRate),
		SickHours:        rateValue(res.SickHours),
		GaugeColor:       gaugeColor(res),
		GaugeFilled:      res.GaugeFill * gaugeCircumference,
		GaugeTotal:       gaugeCircumference,
		GaugeValue:       out["gauge_value"],
	}
}

// Page renders the full calculator page with the given state.
func Page(in domain.Inputs, res domain.Results, out map[string]string) templ.Component {
	data := buildViewData(in, res, out)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pageTmpl.ExecuteTemplate(w, "page", data)
	})
}

// Fragment renders the results grid plus the out-of-band swaps that keep the
// synced input fields (overtime rate, auto sick hours) and the header
// displays current after a recalculation.
func Fragment(in domain.Inputs, res domain.Results, out map[string]string) templ.Component {
	data := buildViewData(in, res, out)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pageTmpl.ExecuteTemplate(w, "fragment", data)
	})
}

var pageTmpl = template.Must(template.New("calculator").Funcs(template.FuncMap{
	"inputValue": inputValue,
}).Parse(`
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Pay Package Rate Calculator</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root{--ink:#0d1117;--paper:#f5f0e8;--ledger:#e8e0cc;--accent:#c0392b;--accent2:#2c6e49;--muted:#6b5e4e;--rule:#b8a898;}
  *{box-sizing:border-box;}
  body{background:var(--paper);color:var(--ink);font-family:'IBM Plex Sans',sans-serif;min-height:100vh;}
  .mono{font-family:'IBM Plex Mono',monospace;}
  .card{background:rgba(255,255,255,0.7);border:1px solid var(--ledger);border-left:4px solid var(--ink);}
  .field-label{font-family:'IBM Plex Mono',monospace;font-size:0.6rem;font-weight:600;letter-spacing:0.1em;text-transform:uppercase;color:var(--muted);display:block;margin-bottom:2px;}
  input,select{background:white;border:1px solid var(--rule);border-bottom:2px solid var(--ink);padding:6px 8px;font-family:'IBM Plex Mono',monospace;font-size:0.85rem;width:100%;outline:none;}
  input:focus,select:focus{border-bottom-color:var(--accent);}
  input[readonly]{background:var(--ledger);}
  .btn{font-family:'IBM Plex Mono',monospace;font-weight:600;font-size:0.8rem;letter-spacing:0.08em;padding:8px 18px;border:2px solid var(--ink);cursor:pointer;text-transform:uppercase;}
  .btn-primary{background:var(--ink);color:white;}
  .btn-danger{background:white;color:var(--accent);border-color:var(--accent);}
  .section-header{font-family:'IBM Plex Mono',monospace;font-size:0.7rem;font-weight:600;letter-spacing:0.18em;text-transform:uppercase;color:var(--muted);border-bottom:1px solid var(--rule);padding-bottom:4px;margin-bottom:12px;}
  .out-row{display:flex;justify-content:space-between;border-bottom:1px solid var(--ledger);padding:3px 0;font-size:0.8rem;}
  .out-row .mono{font-weight:600;}
</style>
</head>
<body>
<div style="max-width:1200px;margin:0 auto;padding:32px 24px;">

<div style="display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:24px;">
  <div>
    <h1 id="title_display" style="font-family:'IBM Plex Mono',monospace;font-size:1.4rem;font-weight:600;margin:0;">{{.Title}}</h1>
    <div style="font-size:0.85rem;color:var(--muted);margin-top:4px;">Client fee: <span id="fee_display" class="mono">{{.FeeDisplay}}</span></div>
  </div>
  <div style="display:flex;gap:10px;">
    <button class="btn btn-danger" hx-post="/reset" hx-target="body" hx-include="#calc">RESET</button>
  </div>
</div>

<form id="calc"
      hx-post="/calculate"
      hx-target="#results"
      hx-swap="innerHTML"
      hx-trigger="change, input delay:300ms">

<div style="display:grid;grid-template-columns:360px 1fr;gap:28px;align-items:start;">

<div class="card" style="padding:22px;">
  <div class="section-header">Contract Inputs</div>
  <div style="display:grid;gap:10px;">
    <div>
      <label class="field-label">Client</label>
      <select name="client">
        {{$sel := .Inputs.Client}}
        {{range .Clients}}<option value="{{.Name}}"{{if eq .Name $sel}} selected{{end}}>{{.Name}}</option>{{end}}
      </select>
    </div>
    <div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Bill Rate</label>
        <input type="number" name="bill_rate" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.BillRate}}">
      </div>
      <div>
        <label class="field-label">Bill OT Add</label>
        <input type="number" name="bill_ot_add" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.BillOTAdd}}">
      </div>
    </div>
    <div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Pay Rate</label>
        <input type="number" name="pay_rate" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.PayRate}}">
      </div>
      <div>
        <label class="field-label">OT Pay Rate (auto)</label>
        <input type="text" id="ot_rate" name="ot_rate" value="{{.OvertimeRate}}" readonly>
      </div>
    </div>
    <div style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Reg Hours / Wk</label>
        <input type="number" name="regular_hours" step="0.5" placeholder="0" value="{{inputValue .Inputs.RegularHours}}">
      </div>
      <div>
        <label class="field-label">OT Hours / Wk</label>
        <input type="number" name="ot_hours" step="0.5" placeholder="0" value="{{inputValue .Inputs.OTHours}}">
      </div>
      <div>
        <label class="field-label">Days / Wk</label>
        <input type="number" name="schedule_days" step="1" placeholder="0" value="{{inputValue .Inputs.ScheduleDays}}">
      </div>
    </div>
    <div>
      <label class="field-label">Contract Weeks</label>
      <input type="number" name="contract_weeks" step="1" placeholder="0" value="{{inputValue .Inputs.ContractWeeks}}">
    </div>
    <div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Housing / Day</label>
        <input type="number" name="housing_daily" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.HousingDaily}}">
      </div>
      <div>
        <label class="field-label">Meals / Day</label>
        <input type="number" name="meals_daily" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.MealsDaily}}">
      </div>
    </div>

    <div class="section-header" style="margin-top:10px;">Orientation</div>
    <div style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Type</label>
        <select name="orientation_type">
          {{$ot := .Inputs.OrientationType}}
          {{range .OrientationTypes}}<option value="{{.}}"{{if eq . $ot}} selected{{end}}>{{.}}</option>{{end}}
        </select>
      </div>
      <div>
        <label class="field-label">Hours</label>
        <input type="number" name="orientation_hours" step="0.5" placeholder="0" value="{{inputValue .Inputs.OrientationHours}}">
      </div>
      <div>
        <label class="field-label">Pay Rate</label>
        <input type="number" name="orientation_pay" step="0.01" placeholder="16.50" value="{{inputValue .Inputs.OrientationPayRate}}">
      </div>
    </div>

    <div class="section-header" style="margin-top:10px;">One-Time Payments</div>
    <div style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:8px;">
      <div>
        <label class="field-label">Start Bonus</label>
        <input type="number" name="bonus_start" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.BonusStart}}">
      </div>
      <div>
        <label class="field-label">Completion</label>
        <input type="number" name="bonus_complete" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.BonusComplete}}">
      </div>
      <div>
        <label class="field-label">BCG Reimb.</label>
        <input type="number" name="bcg_reimbursement" step="0.01" placeholder="0.00" value="{{inputValue .Inputs.BCGReimbursement}}">
      </div>
    </div>

    <div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;align-items:end;">
      <div>
        <label class="field-label">Sick Hours</label>
        <input type="number" id="sick_hours" name="sick_hours" step="0.01" placeholder="0" value="{{.SickHours}}">
      </div>
      <label style="display:flex;align-items:center;gap:6px;font-size:0.75rem;padding-bottom:8px;">
        <input type="checkbox" name="auto_sick" style="width:auto;"{{if .AutoSick}} checked{{end}}>
        Auto-calculate sick hours
      </label>
    </div>

    <div style="margin-top:12px;display:flex;justify-content:space-between;">
      <button type="submit" class="btn btn-primary">CALCULATE</button>
      <button type="button" class="btn" onclick="downloadQuote()">QUOTE PDF</button>
    </div>
  </div>
</div>

<div id="results">
{{template "results-body" .}}
</div>

</div>
</form>

</div>
<script>
function downloadQuote() {
  var params = new URLSearchParams(new FormData(document.getElementById('calc')));
  window.location.href = '/quote/pdf?' + params.toString();
}
</script>
</body>
</html>{{end}}

{{define "fragment"}}{{template "results-body" .}}
<input type="text" id="ot_rate" name="ot_rate" value="{{.OvertimeRate}}" readonly hx-swap-oob="true">
<input type="number" id="sick_hours" name="sick_hours" step="0.01" placeholder="0" value="{{.SickHours}}" hx-swap-oob="true">
<h1 id="title_display" style="font-family:'IBM Plex Mono',monospace;font-size:1.4rem;font-weight:600;margin:0;" hx-swap-oob="true">{{.Title}}</h1>
<span id="fee_display" class="mono" hx-swap-oob="true">{{.FeeDisplay}}</span>
{{end}}

{{define "results-body"}}
<div style="display:grid;grid-template-columns:repeat(2,1fr);gap:16px;align-items:start;">
  <div class="card" style="padding:16px;grid-column:1/-1;display:flex;align-items:center;gap:24px;">
    <svg width="110" height="110" viewBox="0 0 110 110">
      <circle cx="55" cy="55" r="45" fill="none" stroke="#e8e0cc" stroke-width="10"/>
      <circle cx="55" cy="55" r="45" fill="none" stroke="{{.GaugeColor}}" stroke-width="10"
              stroke-dasharray="{{.GaugeFilled}} {{.GaugeTotal}}"
              stroke-linecap="round" transform="rotate(-90 55 55)"/>
      <text x="55" y="60" text-anchor="middle" font-family="IBM Plex Mono" font-size="14" font-weight="600">{{.GaugeValue}}</text>
    </svg>
    <div>
      <div class="section-header" style="margin-bottom:4px;">Hourly Margin vs Target</div>
      <div id="gauge_value" class="mono" style="font-size:1.2rem;font-weight:600;color:{{.GaugeColor}};">{{.GaugeValue}}</div>
    </div>
  </div>
  {{range .Sections}}
  <div class="card" style="padding:14px 18px;">
    <div class="section-header">{{.Name}}</div>
    {{range .Fields}}
    <div class="out-row"><span>{{.Label}}</span><span class="mono" id="{{.ID}}">{{.Value}}</span></div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}
`))
