package handlers

import (
	"math"
	"net/http"
	"reflect"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/csg33k/ratecalc/internal/domain"
)

// calculationResponse wraps one calculation with metadata for API consumers.
type calculationResponse struct {
	CalculationID string         `json:"calculation_id"`
	CalculatedAt  string         `json:"calculated_at"`
	DurationMs    int64          `json:"duration_ms"`
	TargetMargin  float64        `json:"target_margin"`
	Inputs        domain.Inputs  `json:"inputs"`
	Results       domain.Results `json:"results"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// apiCalculate runs one calculation over JSON. Absent fields default the
// same way absent form fields do; the request is never rejected for shape
// beyond malformed JSON.
func (h *Handler) apiCalculate(w http.ResponseWriter, r *http.Request) {
	var in domain.Inputs
	if err := gojson.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if in.Client == "" {
		in.Client = domain.DefaultClient
	}
	if in.OrientationType != domain.OrientationBillable {
		in.OrientationType = domain.OrientationNonBillable
	}

	start := time.Now()
	res := h.calc.Calculate(in)
	scrub(&res)

	w.Header().Set("Content-Type", "application/json")
	gojson.NewEncoder(w).Encode(calculationResponse{
		CalculationID: uuid.New().String(),
		CalculatedAt:  time.Now().UTC().Format(time.RFC3339),
		DurationMs:    time.Since(start).Milliseconds(),
		TargetMargin:  h.calc.Target(),
		Inputs:        in,
		Results:       res,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	gojson.NewEncoder(w).Encode(errorResponse{Status: status, Message: message})
}

// scrub zeroes non-finite figures before encoding; JSON has no NaN/Inf and
// the display layer substitutes 0 for them anyway.
func scrub(res *domain.Results) {
	v := reflect.ValueOf(res).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Float64 {
			continue
		}
		if x := f.Float(); math.IsNaN(x) || math.IsInf(x, 0) {
			f.SetFloat(0)
		}
	}
}
