package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/sirupsen/logrus"

	"crosswarped.com/aoc/internal/answers"
	_ "crosswarped.com/aoc/internal/days"
	"crosswarped.com/aoc/internal/puzzle"
)

const defaultYear = 2025

type SolveRequest struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Input string `json:"input"`
}

type PartAnswer struct {
	Part  int `json:"part"`
	Value int `json:"value"`
}

type SolveResponse struct {
	Success bool         `json:"success"`
	Answers []PartAnswer `json:"answers"`
	Error   string       `json:"error,omitempty"`
}

type server struct {
	log logrus.FieldLogger
	// recorder is nil when no ledger is configured.
	recorder answers.Recorder
	now      func() time.Time
}

func (s *server) execute(ctx context.Context, req SolveRequest) ([]PartAnswer, error) {
	if req.Day < 1 || req.Day > 25 {
		return nil, fmt.Errorf("day must be between 1 and 25")
	}
	if req.Part < 0 {
		return nil, fmt.Errorf("part must not be negative")
	}
	if req.Input == "" {
		return nil, fmt.Errorf("input must not be empty")
	}
	if req.Year == 0 {
		req.Year = defaultYear
	}

	parts := []int{req.Part}
	if req.Part == 0 {
		parts = nil
		for p := 1; p <= puzzle.Parts(req.Day); p++ {
			parts = append(parts, p)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("day %d: %w", req.Day, puzzle.ErrUnknownDay)
		}
	}

	lines := puzzle.Lines(req.Input)
	runID := answers.NewRunID()
	var results []PartAnswer
	var ledger []answers.Answer
	for _, part := range parts {
		solve, err := puzzle.Lookup(req.Day, part)
		if err != nil {
			return nil, err
		}
		v, err := solve(lines)
		if err != nil {
			return nil, fmt.Errorf("day %d part %d: %w", req.Day, part, err)
		}
		s.log.WithFields(logrus.Fields{"day": req.Day, "part": part, "answer": v}).Info("Solved")
		results = append(results, PartAnswer{Part: part, Value: v})
		ledger = append(ledger, answers.Answer{
			RunID:  runID,
			Year:   req.Year,
			Day:    req.Day,
			Part:   part,
			Value:  int64(v),
			Solved: s.now(),
		})
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, ledger...); err != nil {
			s.log.WithError(err).Warn("Failed to record answers")
		}
	}
	return results, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.WithError(err).Warn("Error parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	results, err := s.execute(r.Context(), req)
	response := SolveResponse{
		Success: err == nil,
		Answers: results,
	}
	if err != nil {
		response.Error = err.Error()
		w.WriteHeader(http.StatusUnprocessableEntity)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.WithError(err).Error("Error marshaling response")
	}
}

func newRecorder(ctx context.Context, log logrus.FieldLogger) answers.Recorder {
	project, dataset, table := os.Getenv("BIGQUERY_PROJECT"), os.Getenv("BIGQUERY_DATASET"), os.Getenv("BIGQUERY_TABLE")
	if project == "" || dataset == "" || table == "" {
		log.Info("No answer ledger configured")
		return nil
	}
	store, err := answers.NewStore(ctx, project, dataset, table)
	if err != nil {
		log.WithError(err).Warn("Answer ledger unavailable")
		return nil
	}
	if err := store.EnsureTable(ctx); err != nil {
		log.WithError(err).Warn("Answer ledger unavailable")
		store.Close()
		return nil
	}
	return store
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	s := &server{
		log:      log,
		recorder: newRecorder(context.Background(), log),
		now:      time.Now,
	}
	funcframework.RegisterHTTPFunction("/solve", s.solve)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
