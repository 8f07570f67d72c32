package models

type Recommendation struct {
	ProductName     string `json:"productName" validate:"required"`
	Reason          string `json:"reason" validate:"required"`
	ShadeSuggestion string `json:"shadeSuggestion" validate:"required"`
}

type AnalysisResult struct {
	FaceShape       string           `json:"faceShape" validate:"required"`
	SkinTone        string           `json:"skinTone" validate:"required"`
	EyeColor        string           `json:"eyeColor" validate:"required"`
	StyleAdvice     string           `json:"styleAdvice" validate:"required"`
	Recommendations []Recommendation `json:"recommendations" validate:"required,dive"`
}

type ConsultationStatus string

const (
	ConsultationIdle      ConsultationStatus = "idle"
	ConsultationAnalyzing ConsultationStatus = "analyzing"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationFailed    ConsultationStatus = "failed"
)

type ConsultationState struct {
	Status ConsultationStatus `json:"status"`
	Result *AnalysisResult    `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}
