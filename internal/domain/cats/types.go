package cats

// Sex define el sexo del gato.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Lifestyle define dónde vive el gato.
// @Enum indoor, outdoor, both
type Lifestyle string

const (
	LifestyleIndoor  Lifestyle = "indoor"
	LifestyleOutdoor Lifestyle = "outdoor"
	LifestyleBoth    Lifestyle = "both"
)

// FoodType define el tipo principal de alimento.
// @Enum dry, wet, raw, mixed
type FoodType string

const (
	FoodDry   FoodType = "dry"
	FoodWet   FoodType = "wet"
	FoodRaw   FoodType = "raw"
	FoodMixed FoodType = "mixed"
)

// BodyCondition es la condición corporal observada (o estimada por visión).
// @Enum underweight, ideal, overweight, obese, unknown
type BodyCondition string

const (
	ConditionUnderweight BodyCondition = "underweight"
	ConditionIdeal       BodyCondition = "ideal"
	ConditionOverweight  BodyCondition = "overweight"
	ConditionObese       BodyCondition = "obese"
	ConditionUnknown     BodyCondition = "unknown"
)

// WeightSource indica de dónde salió el peso actual.
// @Enum owner_reported, vet_measured, estimated
type WeightSource string

const (
	WeightOwnerReported WeightSource = "owner_reported"
	WeightVetMeasured   WeightSource = "vet_measured"
	WeightEstimated     WeightSource = "estimated"
)
