package repair

import (
	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/prompt"
)

var (
	textSchema  = MustCompileSchema("text_analysis.schema.json", prompt.TextSchema)
	imageSchema = MustCompileSchema("image_analysis.schema.json", prompt.ImageSchema)
)

func DecodeText(raw string) Outcome[analysis.TextAnalysis] {
	return Decode[analysis.TextAnalysis](raw, textSchema)
}

func DecodeImage(raw string) Outcome[analysis.ImageAnalysis] {
	return Decode[analysis.ImageAnalysis](raw, imageSchema)
}
