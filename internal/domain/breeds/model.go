package breeds

// RiskLevel clasifica qué tan probable/serio es un riesgo de salud para la raza.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// SizeCategory agrupa razas por tamaño corporal adulto.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// WeightRange es el rango de peso ideal adulto en kg.
type WeightRange struct {
	MinKg float64
	MaxKg float64
}

// Midpoint devuelve el centro del rango (base para clasificar desviaciones).
func (w WeightRange) Midpoint() float64 {
	return (w.MinKg + w.MaxKg) / 2
}

// LifeExpectancy en años, rango típico.
type LifeExpectancy struct {
	MinYears int
	MaxYears int
}

// HealthRisk es una condición conocida de la raza con su edad típica de aparición.
type HealthRisk struct {
	Condition     string
	Level         RiskLevel
	OnsetAgeYears int
	Monitoring    string
	Symptoms      []string
}

// Screening es un chequeo recomendado a una edad puntual.
type Screening struct {
	AgeYears   int
	Screenings []string
	Reason     string
}

// AdviceBand cubre [FromYears, ToYears) con un foco de cuidado y consejos.
type AdviceBand struct {
	FromYears int
	ToYears   int
	Focus     string
	Advice    []string
}

// Profile es la entrada canónica del registro para una raza.
// El registro es inmutable: los perfiles se construyen una vez y solo se leen.
type Profile struct {
	Name           string
	Aliases        []string
	Size           SizeCategory
	LifeExpectancy LifeExpectancy
	IdealWeight    WeightRange
	Risks          []HealthRisk
	Screenings     []Screening
	AdviceBands    []AdviceBand
}

// IsGeneric indica si el perfil es el default (gato doméstico sin raza conocida).
func (p Profile) IsGeneric() bool {
	return p.Name == DefaultBreedName
}
