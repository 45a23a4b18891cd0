package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/logger"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/vision"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     Repository
	analyzer vision.Analyzer // opcional; nil => sin enriquecimiento por foto
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, analyzer vision.Analyzer, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		log:      log,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name            string
	AgeYears        int
	AgeMonths       int
	Sex             string
	Neutered        bool
	Breed           string
	Lifestyle       string
	CurrentWeightKg float64
	WeightSource    string
	BodyCondition   string
	KnownConditions []string
	PhotoURL        string

	Routine CareRoutine
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (CatProfile, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return CatProfile{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return CatProfile{}, ErrInvalidInput
	}
	if in.AgeYears < 0 || in.AgeMonths < 0 || in.AgeMonths > 11 {
		return CatProfile{}, ErrInvalidInput
	}
	if in.CurrentWeightKg <= 0 {
		return CatProfile{}, ErrInvalidInput
	}

	now := s.now()
	c := CatProfile{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            strings.TrimSpace(in.Name),
		AgeYears:        in.AgeYears,
		AgeMonths:       in.AgeMonths,
		Sex:             normalizeSex(in.Sex),
		Neutered:        in.Neutered,
		Breed:           strings.TrimSpace(in.Breed),
		Lifestyle:       normalizeLifestyle(in.Lifestyle),
		CurrentWeightKg: in.CurrentWeightKg,
		WeightSource:    normalizeWeightSource(in.WeightSource),
		BodyCondition:   normalizeCondition(in.BodyCondition),
		KnownConditions: cleanConditions(in.KnownConditions),
		PhotoURL:        strings.TrimSpace(in.PhotoURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Enriquecimiento opcional por foto: best-effort, nunca bloquea el alta.
	if s.analyzer != nil && c.PhotoURL != "" {
		s.enrichFromPhoto(ctx, &c)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CatProfile{}, err
	}
	if err := s.repo.SaveRoutine(ctx, c.ID, normalizeRoutine(in.Routine)); err != nil {
		return CatProfile{}, err
	}
	return c, nil
}

func (s *Service) enrichFromPhoto(ctx context.Context, c *CatProfile) {
	a, err := s.analyzer.AnalyzePhoto(ctx, c.PhotoURL)
	if err != nil {
		if s.log != nil {
			s.log.Warn("photo analysis failed, continuing without it", map[string]any{
				"cat": c.Name, "err": err.Error(),
			})
		}
		return
	}
	// Solo completamos lo que el owner no declaró.
	if c.BodyCondition == ConditionUnknown && a.BodyCondition != "" {
		c.BodyCondition = BodyCondition(a.BodyCondition)
	}
	if c.CoatColor == "" {
		c.CoatColor = a.CoatColor
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (CatProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CatProfile{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]CatProfile, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) GetRoutine(ctx context.Context, catID string) (CareRoutine, error) {
	return s.repo.GetRoutine(ctx, catID)
}

// ReplaceRoutine reemplaza la rutina completa (PUT, no PATCH).
func (s *Service) ReplaceRoutine(ctx context.Context, catID string, r CareRoutine) (CareRoutine, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return CareRoutine{}, ErrInvalidInput
	}
	if r.FoodOuncesPerDay < 0 || r.TreatsPerDay < 0 || r.PlayMinutesPerDay < 0 || r.VetVisitsPerYear < 0 {
		return CareRoutine{}, ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, catID); err != nil {
		return CareRoutine{}, err
	}
	norm := normalizeRoutine(r)
	if err := s.repo.SaveRoutine(ctx, catID, norm); err != nil {
		return CareRoutine{}, err
	}
	return norm, nil
}

// OwnerOf expone el ownerUserID de un gato.
// Evita ciclos de imports entre módulos que necesitan autorizar por dueño.
func (s *Service) OwnerOf(ctx context.Context, catID string) (string, error) {
	c, err := s.GetByID(ctx, catID)
	if err != nil {
		return "", err
	}
	return c.OwnerUserID, nil
}

func normalizeSex(v string) Sex {
	switch Sex(strings.ToLower(strings.TrimSpace(v))) {
	case SexMale:
		return SexMale
	case SexFemale:
		return SexFemale
	default:
		return SexUnknown
	}
}

func normalizeLifestyle(v string) Lifestyle {
	switch Lifestyle(strings.ToLower(strings.TrimSpace(v))) {
	case LifestyleOutdoor:
		return LifestyleOutdoor
	case LifestyleBoth:
		return LifestyleBoth
	default:
		return LifestyleIndoor
	}
}

func normalizeWeightSource(v string) WeightSource {
	switch WeightSource(strings.ToLower(strings.TrimSpace(v))) {
	case WeightVetMeasured:
		return WeightVetMeasured
	case WeightEstimated:
		return WeightEstimated
	default:
		return WeightOwnerReported
	}
}

func normalizeCondition(v string) BodyCondition {
	switch BodyCondition(strings.ToLower(strings.TrimSpace(v))) {
	case ConditionUnderweight, ConditionIdeal, ConditionOverweight, ConditionObese:
		return BodyCondition(strings.ToLower(strings.TrimSpace(v)))
	default:
		return ConditionUnknown
	}
}

func cleanConditions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// normalizeRoutine aplica defaults documentados: valores ausentes se tratan
// como "sin ese cuidado" (0 visitas = sin atención veterinaria) en vez de error.
func normalizeRoutine(r CareRoutine) CareRoutine {
	switch r.FoodType {
	case FoodDry, FoodWet, FoodRaw, FoodMixed:
	default:
		r.FoodType = FoodDry
	}
	if r.FeedingsPerDay <= 0 {
		r.FeedingsPerDay = 2
	}
	if r.FoodOuncesPerDay <= 0 {
		r.FoodOuncesPerDay = 4.0
	}
	return r
}
