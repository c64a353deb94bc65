package domain

// CopilotRequest is a natural-language question for the copilot
type CopilotRequest struct {
	Question string `json:"question"`
}

// CopilotResponse carries the rendered answer and the data sources it was
// computed from (live overview or a dated snapshot). Sources are a hard
// requirement for traceability, not cosmetic.
type CopilotResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}
