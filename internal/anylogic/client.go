// Package anylogic is a thin client for the AnyLogic Cloud Open API. It
// covers the calls this service needs: model discovery, version lookup,
// experiment-based input construction, run submission and result polling.
package anylogic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the stable REST surface of AnyLogic Cloud.
const DefaultBaseURL = "https://cloud.anylogic.com/api/open/8.5.0"

var (
	ErrModelNotFound      = errors.New("anylogic: model not found")
	ErrExperimentNotFound = errors.New("anylogic: experiment not found")
	ErrInputNotFound      = errors.New("anylogic: input not found")
	ErrOutputNotFound     = errors.New("anylogic: output not found")
	ErrRunFailed          = errors.New("anylogic: simulation run failed")
)

// Model describes a cloud model and the ids of its uploaded versions,
// ordered oldest to newest.
type Model struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ModelVersions []string `json:"modelVersions"`
}

// InputValue is one named input of an experiment.
type InputValue struct {
	Name  string  `json:"name"`
	Type  string  `json:"type,omitempty"`
	Units *string `json:"units,omitempty"`
	Value any     `json:"value"`
}

// Experiment is a named set of default inputs defined on a model version.
type Experiment struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Inputs []InputValue `json:"inputs"`
}

// Version is a concrete uploaded revision of a model.
type Version struct {
	ID          string       `json:"id"`
	ModelID     string       `json:"modelId"`
	Number      int          `json:"version"`
	Experiments []Experiment `json:"experiments"`
}

// Output is one entry of a run's raw output list.
type Output struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value any     `json:"value"`
	Units *string `json:"units"`
}

// RunState is the provider's view of a submitted run.
type RunState struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// RunResults carries the state and outputs of a run.
type RunResults struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Outputs []Output `json:"outputs"`
}

// Value looks up a named output metric and coerces it to float64.
func (r *RunResults) Value(name string) (float64, error) {
	for _, out := range r.Outputs {
		if out.Name != name {
			continue
		}
		switch v := out.Value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case json.Number:
			return v.Float64()
		default:
			return 0, fmt.Errorf("anylogic: output %q is not numeric", name)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrOutputNotFound, name)
}

// Client talks to the AnyLogic Cloud REST API.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
}

// NewClient creates a client for the given API key. An empty baseURL
// selects the public cloud endpoint. No request timeout is configured
// beyond the transport defaults; simulation runs can legitimately take
// minutes.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{},
		pollInterval: time.Second,
	}
}

// GetModels lists the models available to the account.
func (c *Client) GetModels(ctx context.Context) ([]Model, error) {
	var modelList []Model
	if err := c.do(ctx, http.MethodGet, "/models", nil, &modelList); err != nil {
		return nil, err
	}
	return modelList, nil
}

// GetVersion fetches a model version, including its experiments.
func (c *Client) GetVersion(ctx context.Context, versionID string) (*Version, error) {
	var version Version
	if err := c.do(ctx, http.MethodGet, "/versions/"+versionID, nil, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// GetLatestModelVersion resolves a model by name and returns its most
// recently uploaded version.
func (c *Client) GetLatestModelVersion(ctx context.Context, modelName string) (*Version, error) {
	modelList, err := c.GetModels(ctx)
	if err != nil {
		return nil, err
	}

	for _, model := range modelList {
		if !strings.EqualFold(model.Name, modelName) {
			continue
		}
		if len(model.ModelVersions) == 0 {
			return nil, fmt.Errorf("%w: %q has no versions", ErrModelNotFound, modelName)
		}
		latestID := model.ModelVersions[len(model.ModelVersions)-1]
		return c.GetVersion(ctx, latestID)
	}

	return nil, fmt.Errorf("%w: %q", ErrModelNotFound, modelName)
}

// CreateRun submits a simulation run for the given version and inputs.
func (c *Client) CreateRun(ctx context.Context, versionID string, inputs []InputValue) (*RunState, error) {
	body := map[string]any{
		"inputs":         inputs,
		"experimentType": "SIMULATION",
	}
	var state RunState
	if err := c.do(ctx, http.MethodPost, "/versions/"+versionID+"/runs", body, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// GetRunResults fetches the current state and outputs of a run.
func (c *Client) GetRunResults(ctx context.Context, versionID, runID string) (*RunResults, error) {
	body := map[string]any{"runId": runID}
	var results RunResults
	if err := c.do(ctx, http.MethodPost, "/versions/"+versionID+"/results", body, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// WaitForResults polls a run until the provider reports a terminal state
// and returns the final outputs. A failed or stopped run is ErrRunFailed.
func (c *Client) WaitForResults(ctx context.Context, versionID, runID string) (*RunResults, error) {
	for {
		results, err := c.GetRunResults(ctx, versionID, runID)
		if err != nil {
			return nil, err
		}

		switch strings.ToUpper(results.Status) {
		case "RUNNING", "QUEUED", "NEW", "PENDING":
			// still in progress, keep polling
		case "ERROR", "FAILED", "STOPPED":
			return nil, fmt.Errorf("%w: status %s", ErrRunFailed, results.Status)
		default:
			// COMPLETED, or a provider that omits the status once
			// outputs are available.
			return results, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("anylogic: encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("anylogic: building request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("anylogic: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.Errorf("AnyLogic API call failed: %s %s -> %d: %s", method, path, resp.StatusCode, detail)
		return fmt.Errorf("anylogic: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("anylogic: decoding response of %s %s: %w", method, path, err)
		}
	}
	return nil
}
