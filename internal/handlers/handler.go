package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/ratecalc/internal/form"
	"github.com/csg33k/ratecalc/internal/ports"
	"github.com/csg33k/ratecalc/internal/templates"
)

type Handler struct {
	calc   ports.Calculator
	quotes ports.QuoteSheetGenerator
	fields form.FieldSet
}

func New(calc ports.Calculator, quotes ports.QuoteSheetGenerator) *Handler {
	return &Handler{calc: calc, quotes: quotes, fields: form.AllFields()}
}

// WithFields overrides the display-field set the host page carries. Fields
// outside the set are skipped on every render; the calculator degrades to
// whatever subset remains.
func (h *Handler) WithFields(fields form.FieldSet) *Handler {
	h.fields = fields
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", h.index)
	mux.HandleFunc("POST /calculate", h.calculate)
	mux.HandleFunc("POST /reset", h.reset)
	mux.HandleFunc("POST /api/calculate", h.apiCalculate)
	mux.HandleFunc("GET /quote/pdf", h.quotePDF)
	return mux
}

// index renders the calculator in its reset state.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	in := form.Defaults()
	res := h.calc.Calculate(in)
	render(w, r, templates.Page(in, res, form.Write(res, h.fields)))
}

// calculate recomputes everything from the posted form and returns the
// results fragment. The fragment carries out-of-band swaps for the synced
// overtime-rate and sick-hours fields.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	in := form.Read(r.PostForm)
	res := h.calc.Calculate(in)
	render(w, r, templates.Fragment(in, res, form.Write(res, h.fields)))
}

// reset restores the default form state, preserving only the pay rate and
// orientation hours/pay from the submitted values, and re-renders the page.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	in := form.Reset(r.PostForm)
	res := h.calc.Calculate(in)
	render(w, r, templates.Page(in, res, form.Write(res, h.fields)))
}

// quotePDF builds a one-page quote sheet from query-parameter inputs.
func (h *Handler) quotePDF(w http.ResponseWriter, r *http.Request) {
	in := form.Read(r.URL.Query())
	res := h.calc.Calculate(in)

	var buf bytes.Buffer
	if err := h.quotes.Generate(r.Context(), in, res, &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("paypackage_%s_%s.pdf", in.Client, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
