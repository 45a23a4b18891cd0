package vision

import "context"

// Assessment es lo que el servicio de visión estima a partir de una foto.
type Assessment struct {
	BodyCondition string  // underweight, ideal, overweight, obese
	CoatColor     string
	CoatPattern   string
	Confidence    float64 // 0-1
}

// Analyzer estima condición corporal y pelaje desde una foto.
// Enriquecimiento opcional del perfil, nunca requerido por el simulador.
type Analyzer interface {
	AnalyzePhoto(ctx context.Context, photoURL string) (Assessment, error)
}
