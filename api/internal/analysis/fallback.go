package analysis

const (
	// DefaultScore — нейтральная оценка для записей-заглушек.
	DefaultScore = 7

	// descriptionPrefix — сколько символов OCR-текста попадает в описание заглушки.
	descriptionPrefix = 200
)

// TextFallback строит детерминированную запись, когда ответ модели не разобран.
// Причина попадает в weaknesses, чтобы деградация была видна пользователю.
func TextFallback(reason error) TextAnalysis {
	return TextAnalysis{
		DesignScore:                DefaultScore,
		AnimationPotential:         DefaultScore,
		InnovationScore:            DefaultScore,
		TechnicalExecution:         DefaultScore,
		ClientFocus:                DefaultScore,
		Strengths:                  []string{"Professional presentation"},
		Weaknesses:                 []string{"Analysis parsing error: " + reasonText(reason)},
		StyleAnalysis:              "Unable to parse detailed analysis",
		ImprovementRecommendations: []string{"Review API response format"},
		Summary:                    "Analysis completed with parsing issues",
	}
}

// ImageFallback строит запись-заглушку для анализа изображения. Описание берётся
// из начала распознанного текста.
func ImageFallback(extractedText string, reason error) ImageAnalysis {
	desc := "Image analysis"
	if extractedText != "" {
		desc = prefix(extractedText, descriptionPrefix)
	}
	return ImageAnalysis{
		Description:         desc,
		DesignScore:         DefaultScore,
		AnimationPotential:  DefaultScore,
		VisualStyleScore:    DefaultScore,
		VisualStyleAnalysis: "Visual analysis completed",
		Recommendations:     []string{"Unable to parse detailed recommendations: " + reasonText(reason)},
	}
}

func reasonText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// prefix режет по рунам, чтобы не ломать кириллицу.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
