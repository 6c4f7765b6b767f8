// Package callback implements the completion-report wire contract between a
// connector run and the external job manager.
package callback

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// JobIDHeader carries the job id on the callback request.
const JobIDHeader = "X-Job-ID"

// ItemCounts tallies one data type's delivery outcome.
type ItemCounts struct {
	Sent     int `json:"sent"`
	Modified int `json:"modified"`
	Failed   int `json:"failed"`
}

// Counters groups the per-data-type counts a job may report.
type Counters struct {
	Assets   ItemCounts `json:"assets"`
	Findings ItemCounts `json:"findings"`
}

// Payload is the callback body. All counters default to zero.
type Payload struct {
	ExitCode int      `json:"exit_code"`
	Counts   Counters `json:"counts"`
}

// ShapePayload interprets a job's return value as a callback payload. The
// second return reports whether the value matched the expected shape; on a
// mismatch (unknown keys, wrong types, or no value at all) the default
// payload carrying only the exit code is returned instead.
func ShapePayload(result any, exitCode int) (Payload, bool) {
	fallback := Payload{ExitCode: exitCode}
	switch v := result.(type) {
	case nil:
		return fallback, false
	case Payload:
		v.ExitCode = exitCode
		return v, true
	case Counters:
		return Payload{ExitCode: exitCode, Counts: v}, true
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fallback, false
	}
	var body struct {
		Counts Counters `json:"counts"`
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return fallback, false
	}
	return Payload{ExitCode: exitCode, Counts: body.Counts}, true
}

// Client posts completion payloads to the job manager. Delivery is
// at-most-once: a transport failure is reported to the caller and never
// retried.
type Client struct {
	URL        string
	JobID      string
	HTTPClient *http.Client
}

// NewClient builds a callback client. TLS certificate verification is
// disabled: callbacks target the job manager over an internal trusted
// network.
func NewClient(url, jobID string) *Client {
	return &Client{
		URL:   url,
		JobID: jobID,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Post sends the payload as JSON with the job id in the JobIDHeader header.
func (c *Client) Post(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(JobIDHeader, c.JobID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("callback rejected: %s", resp.Status)
	}
	return nil
}
