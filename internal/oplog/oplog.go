// Package oplog is the append-only audit record of every attempted seeding
// operation, with running success and failure counters.
package oplog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"ministeam-seeder/internal/api"
)

// OpType labels the kind of seeding operation an entry records.
type OpType string

const (
	OpCreateUser       OpType = "CREATE_USER"
	OpCreateGame       OpType = "CREATE_GAME"
	OpSyncUserGraph    OpType = "SYNC_USER_GRAPH"
	OpSyncGameGraph    OpType = "SYNC_GAME_GRAPH"
	OpCreateFriendship OpType = "CREATE_FRIENDSHIP"
	OpPurchaseGamePG   OpType = "PURCHASE_GAME_PG"
	OpPurchaseGameNeo  OpType = "PURCHASE_GAME_NEO4J"
	OpPurchaseGameErr  OpType = "PURCHASE_GAME_ERROR"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Operation is one logged attempt at a single service call. Response holds
// the raw response body on success and the error description on failure.
// StatusCode is null when the failure never produced an HTTP status.
type Operation struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       OpType    `json:"type"`
	Endpoint   string    `json:"endpoint"`
	Request    any       `json:"request"`
	Response   any       `json:"response"`
	Status     string    `json:"status"`
	StatusCode *int      `json:"statusCode"`
}

// Summary carries the running counters. TotalRequests is always the sum of
// the other two.
type Summary struct {
	TotalRequests      int `json:"totalRequests"`
	SuccessfulRequests int `json:"successfulRequests"`
	FailedRequests     int `json:"failedRequests"`
}

// Document is the serialized form of a full run.
type Document struct {
	RunID      string      `json:"runId"`
	Timestamp  time.Time   `json:"timestamp"`
	Summary    Summary     `json:"summary"`
	Operations []Operation `json:"operations"`
}

// Log accumulates operations for one run. The orchestrator is the only
// writer today; the mutex keeps counters and append order safe if phases are
// ever run concurrently.
type Log struct {
	mu         sync.Mutex
	runID      string
	startedAt  time.Time
	summary    Summary
	operations []Operation
}

func New() (*Log, error) {
	runID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	return &Log{
		runID:     runID,
		startedAt: time.Now(),
	}, nil
}

func (l *Log) RunID() string {
	return l.runID
}

// Record appends one operation for an attempted call and bumps the counters.
// Callers decide what to record; conflict suppression happens upstream.
func (l *Log) Record(opType OpType, endpoint string, request any, result api.Result) {
	op := Operation{
		Timestamp: time.Now(),
		Type:      opType,
		Endpoint:  endpoint,
		Request:   request,
	}

	if result.StatusCode != 0 {
		code := result.StatusCode
		op.StatusCode = &code
	}

	if result.OK() {
		op.Status = StatusSuccess
		op.Response = result.Body
	} else {
		op.Status = StatusFailed
		op.Response = result.ErrString()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.summary.TotalRequests++
	if result.OK() {
		l.summary.SuccessfulRequests++
	} else {
		l.summary.FailedRequests++
	}
	l.operations = append(l.operations, op)
}

// Summary returns a copy of the current counters.
func (l *Log) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.summary
}

// Operations returns a copy of the recorded operations in append order.
func (l *Log) Operations() []Operation {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Operation, len(l.operations))
	copy(out, l.operations)
	return out
}

// Document snapshots the log into its serialized form. An empty log yields
// zero counters and an empty operations array.
func (l *Log) Document() Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	ops := make([]Operation, len(l.operations))
	copy(ops, l.operations)
	return Document{
		RunID:      l.runID,
		Timestamp:  l.startedAt,
		Summary:    l.summary,
		Operations: ops,
	}
}

// WriteFile serializes the log document to path as indented JSON.
func (l *Log) WriteFile(path string) error {
	data, err := json.MarshalIndent(l.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal verification log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write verification log: %w", err)
	}
	return nil
}
