package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Kind         string `json:"kind"`
}

type MatchRequest struct {
	JobTitle         string `json:"job_title" validate:"required"`
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobDocumentID    string `json:"job_document_id" validate:"required,uuid"`
	InterviewNotes   string `json:"interview_notes,omitempty"`
}

type MatchResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MatchResultResponse struct {
	ID           string           `json:"id"`
	Status       string           `json:"status"`
	Result       *MatchResultData `json:"result,omitempty"`
	ErrorMessage *string          `json:"error_message,omitempty"`
}

type MatchResultData struct {
	MatchPercent   float64  `json:"match_percent"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	SentimentLabel *string  `json:"sentiment_label,omitempty"`
	Summary        string   `json:"summary"`
}

type SentimentRequest struct {
	Text string `json:"text"`
}

type SentimentResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type SimilarityRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

type SimilarityResponse struct {
	Similarity float64 `json:"similarity"`
}

type AttritionRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	EmployeeFeatures
}

type AttritionResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Score      int      `json:"score"`
	Risk       string   `json:"risk"`
	Reasons    []string `json:"reasons"`
}

type CheckInResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	DistanceKM  float64 `json:"distance_km"`
	WithinFence bool    `json:"within_fence"`
}
