package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/csg33k/ratecalc/internal/adapters/pdf"
	"github.com/csg33k/ratecalc/internal/engine"
	"github.com/csg33k/ratecalc/internal/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var target float64
	if v := os.Getenv("TARGET_MARGIN"); v != "" {
		target, err = strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Warn("invalid TARGET_MARGIN, using default", "value", v)
			target = 0
		}
	}

	calc := engine.New(target)
	quotes := pdf.New(calc.Target())
	h := handlers.New(calc, quotes)

	log.Printf("Pay Package Rate Calculator running on http://localhost:%s", port)
	log.Printf("Target hourly margin: $%.2f", calc.Target())
	if err := http.ListenAndServe(":"+port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
