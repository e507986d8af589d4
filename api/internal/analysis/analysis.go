package analysis

// TextAnalysis — результат анализа текста конкурента. Все оценки 1..10.
type TextAnalysis struct {
	DesignScore                int      `json:"design_score"`
	AnimationPotential         int      `json:"animation_potential"`
	InnovationScore            int      `json:"innovation_score"`
	TechnicalExecution         int      `json:"technical_execution"`
	ClientFocus                int      `json:"client_focus"`
	Strengths                  []string `json:"strengths"`
	Weaknesses                 []string `json:"weaknesses"`
	StyleAnalysis              string   `json:"style_analysis"`
	ImprovementRecommendations []string `json:"improvement_recommendations"`
	Summary                    string   `json:"summary"`
}

// ImageAnalysis — результат двухэтапного анализа скриншота.
type ImageAnalysis struct {
	Description         string   `json:"description"`
	DesignScore         int      `json:"design_score"`
	AnimationPotential  int      `json:"animation_potential"`
	VisualStyleScore    int      `json:"visual_style_score"`
	VisualStyleAnalysis string   `json:"visual_style_analysis"`
	Recommendations     []string `json:"recommendations"`
}

type TextRequest struct {
	Text           string `json:"text"`
	CompetitorName string `json:"competitor_name,omitempty"`
}

// ImageRequest несёт сырые байты изображения; base64 делает OCR-клиент.
type ImageRequest struct {
	Image []byte
}
