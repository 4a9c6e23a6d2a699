package dto

// SimulationRequest triggers a cloud simulation run. ModelName and
// ExperimentName fall back to configured defaults when omitted.
// InputOverrides replaces named experiment inputs by name.
type SimulationRequest struct {
	ModelName      string         `json:"model_name" validate:"omitempty,max=200"`
	ExperimentName string         `json:"experiment_name" validate:"omitempty,max=200"`
	InputOverrides map[string]any `json:"input_overrides"`
}

// SimulationOutput is one entry of the provider's raw output list.
type SimulationOutput struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value any     `json:"value"`
	Units *string `json:"units"`
}

// SimulationResponse carries the two extracted metrics plus the raw
// output list of a completed run.
type SimulationResponse struct {
	SimulationID      string             `json:"simulation_id"`
	ServerCapacity    int                `json:"server_capacity"`
	MeanQueueSize     float64            `json:"mean_queue_size"`
	ServerUtilization float64            `json:"server_utilization"`
	RawOutputs        []SimulationOutput `json:"raw_outputs"`
	AppliedInputs     map[string]any     `json:"applied_inputs"`
	Status            string             `json:"status"`
}

// SimulationRESTResponse is the payload of the raw REST execution path:
// the submitted inputs and outputs are forwarded unshaped.
type SimulationRESTResponse struct {
	SimulationVersion string             `json:"simulation_version"`
	Inputs            map[string]any     `json:"inputs"`
	Outputs           []SimulationOutput `json:"outputs"`
	AppliedInputs     map[string]any     `json:"applied_inputs"`
}

// ModelSummary is one entry of the available-models listing.
type ModelSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	LatestVersionID *string `json:"latest_version_id"`
}

// ModelsResponse wraps the available-models listing.
type ModelsResponse struct {
	Models []ModelSummary `json:"models"`
}
