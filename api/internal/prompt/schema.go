package prompt

// TextSchema — JSON Schema ответа модели для анализа текста.
// Все поля обязательны; оценки — целые 1..10.
const TextSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "text_analysis",
  "type": "object",
  "required": [
    "design_score", "animation_potential", "innovation_score",
    "technical_execution", "client_focus",
    "strengths", "weaknesses", "style_analysis",
    "improvement_recommendations", "summary"
  ],
  "properties": {
    "design_score":        { "$ref": "#/definitions/score" },
    "animation_potential": { "$ref": "#/definitions/score" },
    "innovation_score":    { "$ref": "#/definitions/score" },
    "technical_execution": { "$ref": "#/definitions/score" },
    "client_focus":        { "$ref": "#/definitions/score" },
    "strengths":           { "$ref": "#/definitions/strings" },
    "weaknesses":          { "$ref": "#/definitions/strings" },
    "style_analysis":      { "type": "string" },
    "improvement_recommendations": { "$ref": "#/definitions/strings" },
    "summary":             { "type": "string" }
  },
  "definitions": {
    "score":   { "type": "integer", "minimum": 1, "maximum": 10 },
    "strings": { "type": "array", "items": { "type": "string" } }
  }
}`

// ImageSchema — JSON Schema ответа модели для визуального анализа.
const ImageSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "image_analysis",
  "type": "object",
  "required": [
    "description", "design_score", "animation_potential",
    "visual_style_score", "visual_style_analysis", "recommendations"
  ],
  "properties": {
    "description":           { "type": "string" },
    "design_score":          { "$ref": "#/definitions/score" },
    "animation_potential":   { "$ref": "#/definitions/score" },
    "visual_style_score":    { "$ref": "#/definitions/score" },
    "visual_style_analysis": { "type": "string" },
    "recommendations":       { "$ref": "#/definitions/strings" }
  },
  "definitions": {
    "score":   { "type": "integer", "minimum": 1, "maximum": 10 },
    "strings": { "type": "array", "items": { "type": "string" } }
  }
}`
