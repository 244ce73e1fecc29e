package watsonx

// Decoding parameters shared by every generation request.
const (
	decodingMethod    = "sample"
	temperature       = 0.7
	topK              = 50
	topP              = 1.0
	repetitionPenalty = 1.0

	moderationThreshold = 0.5

	passageMaxNewTokens = 500
	scoringMaxNewTokens = 200
)

type generationRequest struct {
	Input       string      `json:"input"`
	Parameters  parameters  `json:"parameters"`
	ModelID     string      `json:"model_id"`
	ProjectID   string      `json:"project_id"`
	Moderations moderations `json:"moderations"`
}

type parameters struct {
	DecodingMethod    string  `json:"decoding_method"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopK              int     `json:"top_k"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type moderations struct {
	HAP hapModeration `json:"hap"`
}

type hapModeration struct {
	Input  moderationSide `json:"input"`
	Output moderationSide `json:"output"`
}

type moderationSide struct {
	Enabled   bool           `json:"enabled"`
	Threshold float64        `json:"threshold"`
	Mask      moderationMask `json:"mask"`
}

type moderationMask struct {
	RemoveEntityValue bool `json:"remove_entity_value"`
}

func newGenerationRequest(prompt, modelID, projectID string, maxNewTokens int) generationRequest {
	side := moderationSide{
		Enabled:   true,
		Threshold: moderationThreshold,
		Mask:      moderationMask{RemoveEntityValue: true},
	}
	return generationRequest{
		Input: prompt,
		Parameters: parameters{
			DecodingMethod:    decodingMethod,
			MaxNewTokens:      maxNewTokens,
			Temperature:       temperature,
			TopK:              topK,
			TopP:              topP,
			RepetitionPenalty: repetitionPenalty,
		},
		ModelID:     modelID,
		ProjectID:   projectID,
		Moderations: moderations{HAP: hapModeration{Input: side, Output: side}},
	}
}
