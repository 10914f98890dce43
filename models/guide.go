package models

// GenerationParams are passed through to the VLM endpoint untouched.
type GenerationParams struct {
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// DefaultGenerationParams mirrors the VLM endpoint's own form defaults.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature:       0.7,
		TopP:              0.99,
		MaxNewTokens:      128,
		RepetitionPenalty: 1.05,
	}
}

// InferenceRequest is the orchestrator's input: one photo plus where it was
// taken and who is asking.
type InferenceRequest struct {
	Image      []byte
	ImageName  string
	Address    string
	Location   GeoLocation
	CustomText string
	Profile    UserProfile
	Params     GenerationParams
}

// GuideResult is the terminal artifact returned to the caller. Success is
// false only when captioning itself failed or required configuration was
// missing; a retrieval failure never surfaces here.
type GuideResult struct {
	Name                string `json:"name"`
	FacilityDescription string `json:"facility_description"`
	Success             bool   `json:"success"`
	ErrorMessage        string `json:"error_message,omitempty"`
}

// VLMResponse is the caption endpoint's JSON body.
type VLMResponse struct {
	GeneratedText string `json:"generated_text"`
	Success       bool   `json:"success"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// RAGAnswer is the retrieval endpoint's JSON body.
type RAGAnswer struct {
	Answer  string      `json:"answer"`
	Sources []RAGSource `json:"sources"`
}

type RAGSource struct {
	Document   RAGDocument `json:"document"`
	ChunkIndex int         `json:"chunk_index"`
	Distance   float64     `json:"distance"`
	Content    string      `json:"content"`
}

type RAGDocument struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Model  string `json:"model"`
}
