package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

type companySummary struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type scoreResult struct {
	FinalScore      int     `json:"final_score"`
	RecommendedRate float64 `json:"recommended_rate"`
	Decision        string  `json:"decision"`
}

func main() {
	if len(os.Args) < 2 {
		slog.Error("Usage: go run cmd/score-demo/main.go <server-url>")
		os.Exit(1)
	}

	serverURL := os.Args[1]

	// Fetch the demo companies from the running server
	resp, err := http.Get(fmt.Sprintf("%s/companies", serverURL))
	if err != nil {
		slog.Error("Failed to fetch companies", "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Failed to fetch companies", "status", resp.StatusCode)
		os.Exit(1)
	}

	var companies []companySummary
	if err := json.NewDecoder(resp.Body).Decode(&companies); err != nil {
		slog.Error("Failed to decode companies", "error", err)
		os.Exit(1)
	}

	if len(companies) == 0 {
		slog.Error("No demo companies returned by server")
		os.Exit(1)
	}

	// Score each company
	for _, company := range companies {
		jsonData, err := json.Marshal(map[string]string{"company": company.Key})
		if err != nil {
			slog.Error("Failed to marshal request", "company", company.Key, "error", err)
			continue
		}

		url := fmt.Sprintf("%s/score", serverURL)
		scoreResp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			slog.Error("Failed to score company", "company", company.Key, "error", err)
			continue
		}
		defer scoreResp.Body.Close()

		if scoreResp.StatusCode != http.StatusOK {
			slog.Error("Failed to score company", "company", company.Key, "status", scoreResp.StatusCode)
			continue
		}

		var result scoreResult
		if err := json.NewDecoder(scoreResp.Body).Decode(&result); err != nil {
			slog.Error("Failed to decode score", "company", company.Key, "error", err)
			continue
		}

		slog.Info("Scored company",
			"company", company.Name,
			"score", result.FinalScore,
			"rate", result.RecommendedRate,
			"decision", result.Decision,
		)
	}

	slog.Info("Demo scoring complete!")
}
