package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000/api/assistant/v1"

// Simplified DTOs for the script
type CreateSessionResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	UserInput string `json:"user_input"`
}

type ChatResponse struct {
	Data struct {
		DetectedIntent string  `json:"detected_intent"`
		DetectedBank   *string `json:"detected_bank"`
		Response       struct {
			Type            string `json:"type"`
			Message         string `json:"message"`
			AvailableBanks  []string `json:"available_banks,omitempty"`
			CalculationData *struct {
				EligibleLoanAmount float64 `json:"eligible_loan_amount"`
				MonthlyEMI         float64 `json:"monthly_emi"`
				DebtToIncomeRatio  float64 `json:"debt_to_income_ratio"`
				Recommendation     string  `json:"recommendation"`
			} `json:"calculation_data,omitempty"`
		} `json:"response"`
	} `json:"data"`
}

func main() {
	color.Cyan("🏦 Banking Assistant Simulation Client\n")

	sessionID, err := createSession()
	if err != nil {
		color.Red("Failed to create session: %v", err)
		os.Exit(1)
	}
	color.Green("Session Created: %s", sessionID)

	// Walks the full loan eligibility dialogue, then a couple of
	// single-turn intents.
	script := []string{
		"I want to check my home loan eligibility",
		"HDFC",
		"calculate",
		"80000, 15000, 5000000",
		"how do I reset my SBI password",
		"thanks",
	}

	for i, text := range script {
		color.Yellow("\n[%d] USER: %s", i+1, text)

		start := time.Now()
		res, err := sendChat(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		bank := "-"
		if res.Data.DetectedBank != nil {
			bank = *res.Data.DetectedBank
		}
		color.Green("BOT (%v) intent=%s bank=%s type=%s", elapsed, res.Data.DetectedIntent, bank, res.Data.Response.Type)
		fmt.Println(res.Data.Response.Message)

		if len(res.Data.Response.AvailableBanks) > 0 {
			fmt.Printf("Available banks: %v\n", res.Data.Response.AvailableBanks)
		}
		if calc := res.Data.Response.CalculationData; calc != nil {
			fmt.Printf("Eligible: %.2f | EMI: %.2f | DTI: %.1f%% | %s\n",
				calc.EligibleLoanAmount, calc.MonthlyEMI, calc.DebtToIncomeRatio, calc.Recommendation)
		}
	}
}

func createSession() (string, error) {
	resp, err := http.Post(baseURL+"/session", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res CreateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.Data.ID, nil
}

func sendChat(sessionID, text string) (*ChatResponse, error) {
	payload := ChatRequest{
		SessionID: sessionID,
		UserInput: text,
	}
	jsonBytes, _ := json.Marshal(payload)

	resp, err := http.Post(baseURL+"/chat", "application/json", bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
