package cats

import "time"

// CatProfile representa la identidad y atributos estáticos de un gato.
// Se crea en el intake y es solo-lectura durante la simulación.
type CatProfile struct {
	ID          string
	OwnerUserID string

	Name      string
	AgeYears  int
	AgeMonths int
	Sex       Sex
	Neutered  bool
	Breed     string // texto libre, se resuelve contra el registro de razas

	Lifestyle       Lifestyle
	CurrentWeightKg float64
	WeightSource    WeightSource
	BodyCondition   BodyCondition
	KnownConditions []string

	PhotoURL  string
	AvatarURL string
	CoatColor string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeInMonths expresa la edad total en meses (invariante del simulador:
// la edad siempre se consume como años*12 + meses).
func (p CatProfile) AgeInMonths() int {
	return p.AgeYears*12 + p.AgeMonths
}

// HasKnownConditions indica si el perfil declara condiciones preexistentes.
func (p CatProfile) HasKnownConditions() bool {
	return len(p.KnownConditions) > 0
}

// CareRoutine son los inputs de cuidado diario. Igual que el perfil:
// producido por el intake, input inmutable del simulador.
type CareRoutine struct {
	FoodType            FoodType
	FoodOuncesPerDay    float64
	FeedingsPerDay      int
	TreatsPerDay        int
	PlayMinutesPerDay   int
	VetVisitsPerYear    float64
	LitterCleansPerWeek int
}
