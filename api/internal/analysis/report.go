package analysis

import (
	"fmt"
	"strings"
)

// Score — подпись и значение одной оценки, в порядке вывода.
type Score struct {
	Label string
	Value int
}

func (a TextAnalysis) Scores() []Score {
	return []Score{
		{"Design", a.DesignScore},
		{"Animation", a.AnimationPotential},
		{"Innovation", a.InnovationScore},
		{"Execution", a.TechnicalExecution},
		{"Client Focus", a.ClientFocus},
	}
}

func (a ImageAnalysis) Scores() []Score {
	return []Score{
		{"Design", a.DesignScore},
		{"Animation Potential", a.AnimationPotential},
		{"Visual Style", a.VisualStyleScore},
	}
}

// Report — текстовый отчёт для бота и CLI.
func (a TextAnalysis) Report() string {
	var b strings.Builder
	writeScores(&b, a.Scores())
	writeList(&b, "✅ Strengths", a.Strengths)
	writeList(&b, "⚠️ Weaknesses", a.Weaknesses)
	writeSection(&b, "🎨 Style Analysis", a.StyleAnalysis)
	writeList(&b, "💡 Recommendations", a.ImprovementRecommendations)
	writeSection(&b, "📝 Summary", a.Summary)
	return strings.TrimRight(b.String(), "\n")
}

func (a ImageAnalysis) Report() string {
	var b strings.Builder
	writeSection(&b, "📝 Description", a.Description)
	writeScores(&b, a.Scores())
	writeSection(&b, "🎨 Visual Style Analysis", a.VisualStyleAnalysis)
	writeList(&b, "💡 Recommendations", a.Recommendations)
	return strings.TrimRight(b.String(), "\n")
}

func writeScores(b *strings.Builder, scores []Score) {
	b.WriteString("📊 Scores:\n")
	for _, s := range scores {
		fmt.Fprintf(b, "  • %s: %d/10\n", s.Label, s.Value)
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString(title + ":\n")
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
	b.WriteString("\n")
}

func writeSection(b *strings.Builder, title, body string) {
	b.WriteString(title + ":\n" + body + "\n\n")
}
