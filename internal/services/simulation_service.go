package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-items-api/config"
	"go-items-api/internal/anylogic"
	"go-items-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
)

// CapacityInput is the one override that must always be present in the
// response payload, defaulting through the experiment value down to 8.
const CapacityInput = "Server capacity"

// cloudAPI is the slice of the AnyLogic client this service uses,
// abstracted so tests can substitute a fake provider.
type cloudAPI interface {
	GetModels(ctx context.Context) ([]anylogic.Model, error)
	GetLatestModelVersion(ctx context.Context, modelName string) (*anylogic.Version, error)
	CreateRun(ctx context.Context, versionID string, inputs []anylogic.InputValue) (*anylogic.RunState, error)
	GetRunResults(ctx context.Context, versionID, runID string) (*anylogic.RunResults, error)
	WaitForResults(ctx context.Context, versionID, runID string) (*anylogic.RunResults, error)
}

// SimulationService orchestrates cloud simulation runs: version lookup,
// experiment input instantiation, override application and metric
// extraction. When the API key is empty no client is constructed and every
// call short-circuits with ErrNotConfigured.
type SimulationService struct {
	api               cloudAPI
	defaultModel      string
	defaultExperiment string
}

// NewSimulationService creates a SimulationService from configuration.
func NewSimulationService(cfg config.AnyLogicConfig) *SimulationService {
	s := &SimulationService{
		defaultModel:      cfg.ModelName,
		defaultExperiment: cfg.ExperimentName,
	}
	if cfg.APIKey != "" {
		s.api = anylogic.NewClient(cfg.APIKey, cfg.BaseURL)
	}
	return s
}

// Configured reports whether the provider credential is present.
func (s *SimulationService) Configured() bool {
	return s.api != nil
}

// Run executes a simulation through the client path: resolve the latest
// model version, instantiate the experiment's default inputs, apply the
// overrides, submit a run, block until outputs are available and extract
// the two named metrics. A capacity value that cannot be coerced to an
// integer is ErrBadCapacity; every other failure propagates as an opaque
// error mapped to 500 at the boundary.
func (s *SimulationService) Run(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationResponse, error) {
	if s.api == nil {
		return nil, ErrNotConfigured
	}

	logrus.Infof("Running simulation: model=%q experiment=%q overrides=%d",
		s.modelName(req), s.experimentName(req), len(req.InputOverrides))

	version, inputs, applied, err := s.prepareInputs(ctx, req)
	if err != nil {
		return nil, err
	}

	capacity, err := coerceInt(applied[CapacityInput])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCapacity, err)
	}

	state, err := s.api.CreateRun(ctx, version.ID, inputs.Array())
	if err != nil {
		return nil, err
	}

	// The provider may omit the run id; treat that as degraded, not fatal.
	simulationID := state.ID
	if simulationID == "" {
		simulationID = "unknown"
	}
	logrus.Infof("Simulation created, status: %s", state.Status)

	results, err := s.api.WaitForResults(ctx, version.ID, state.ID)
	if err != nil {
		return nil, err
	}
	logrus.Info("Simulation finished, outputs received")

	meanQueueSize, err := results.Value("Mean queue size|Mean queue size")
	if err != nil {
		return nil, err
	}
	serverUtilization, err := results.Value("Utilization|Server utilization")
	if err != nil {
		return nil, err
	}

	return &dto.SimulationResponse{
		SimulationID:      simulationID,
		ServerCapacity:    capacity,
		MeanQueueSize:     meanQueueSize,
		ServerUtilization: serverUtilization,
		RawOutputs:        mapOutputs(results.Outputs),
		AppliedInputs:     applied,
		Status:            "completed",
	}, nil
}

// RunREST executes the same run directly against the provider's REST
// surface: version lookup, run submission and result retrieval as three
// sequential calls, forwarding the raw payloads. The capacity fallback
// chain is the same as Run's, but no integer coercion is performed,
// preserving the observed behavior of the two paths.
func (s *SimulationService) RunREST(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationRESTResponse, error) {
	if s.api == nil {
		return nil, ErrNotConfigured
	}

	logrus.Infof("Running simulation via REST: model=%q experiment=%q", s.modelName(req), s.experimentName(req))

	version, inputs, applied, err := s.prepareInputs(ctx, req)
	if err != nil {
		return nil, err
	}

	inputsArray := inputs.Array()
	state, err := s.api.CreateRun(ctx, version.ID, inputsArray)
	if err != nil {
		return nil, err
	}

	results, err := s.api.GetRunResults(ctx, version.ID, state.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SimulationRESTResponse{
		SimulationVersion: version.ID,
		Inputs: map[string]any{
			"inputs":         inputsArray,
			"experimentType": "SIMULATION",
		},
		Outputs:       mapOutputs(results.Outputs),
		AppliedInputs: applied,
	}, nil
}

// ListModels returns the models available to the account with their latest
// version ids.
func (s *SimulationService) ListModels(ctx context.Context) ([]dto.ModelSummary, error) {
	if s.api == nil {
		return nil, ErrNotConfigured
	}

	modelList, err := s.api.GetModels(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ModelSummary, 0, len(modelList))
	for _, model := range modelList {
		summary := dto.ModelSummary{ID: model.ID, Name: model.Name}
		if len(model.ModelVersions) > 0 {
			latest := model.ModelVersions[len(model.ModelVersions)-1]
			summary.LatestVersionID = &latest
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// prepareInputs resolves the model version, instantiates the experiment
// defaults and applies the overrides, recording the applied values. The
// mandatory capacity entry falls back override -> experiment default -> 8.
func (s *SimulationService) prepareInputs(ctx context.Context, req *dto.SimulationRequest) (*anylogic.Version, *anylogic.Inputs, map[string]any, error) {
	version, err := s.api.GetLatestModelVersion(ctx, s.modelName(req))
	if err != nil {
		return nil, nil, nil, err
	}
	logrus.Infof("Resolved model version: %s", version.ID)

	inputs, err := anylogic.NewInputsFromExperiment(version, s.experimentName(req))
	if err != nil {
		return nil, nil, nil, err
	}

	applied := make(map[string]any)
	for name, value := range req.InputOverrides {
		if err := inputs.Set(name, value); err != nil {
			return nil, nil, nil, err
		}
		if current, err := inputs.Get(name); err == nil {
			applied[name] = current
		} else {
			applied[name] = value
		}
	}

	if _, ok := applied[CapacityInput]; !ok {
		if value, err := inputs.Get(CapacityInput); err == nil {
			applied[CapacityInput] = value
		} else if override, ok := req.InputOverrides[CapacityInput]; ok {
			applied[CapacityInput] = override
		} else {
			applied[CapacityInput] = 8
		}
	}

	return version, inputs, applied, nil
}

func (s *SimulationService) modelName(req *dto.SimulationRequest) string {
	if req.ModelName != "" {
		return req.ModelName
	}
	return s.defaultModel
}

func (s *SimulationService) experimentName(req *dto.SimulationRequest) string {
	if req.ExperimentName != "" {
		return req.ExperimentName
	}
	return s.defaultExperiment
}

func mapOutputs(outputs []anylogic.Output) []dto.SimulationOutput {
	mapped := make([]dto.SimulationOutput, 0, len(outputs))
	for _, out := range outputs {
		mapped = append(mapped, dto.SimulationOutput{
			Name:  out.Name,
			Type:  out.Type,
			Value: out.Value,
			Units: out.Units,
		})
	}
	return mapped
}

// coerceInt interprets a loosely typed override value as an integer.
// Floats truncate; non-numeric strings fail.
func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float32:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot interpret %q as integer", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot interpret %T as integer", value)
	}
}
