package cats

import (
	"context"
	"errors"
	"testing"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/vision"
)

// -------------------------
// Test doubles
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID     map[string]CatProfile
	routines map[string]CareRoutine
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:     map[string]CatProfile{},
		routines: map[string]CareRoutine{},
	}
}

func (r *testRepo) Create(ctx context.Context, c CatProfile) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c CatProfile) error {
	if _, ok := r.byID[c.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (CatProfile, error) {
	c, ok := r.byID[id]
	if !ok {
		return CatProfile{}, errRepoNotFound
	}
	return c, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]CatProfile, error) {
	out := make([]CatProfile, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) SaveRoutine(ctx context.Context, catID string, routine CareRoutine) error {
	r.routines[catID] = routine
	return nil
}

func (r *testRepo) GetRoutine(ctx context.Context, catID string) (CareRoutine, error) {
	routine, ok := r.routines[catID]
	if !ok {
		return CareRoutine{}, errRepoNotFound
	}
	return routine, nil
}

type fakeAnalyzer struct {
	assessment vision.Assessment
	err        error
	calls      int
}

func (a *fakeAnalyzer) AnalyzePhoto(ctx context.Context, photoURL string) (vision.Assessment, error) {
	a.calls++
	return a.assessment, a.err
}

func validInput() CreateInput {
	return CreateInput{
		Name:            "Milo",
		AgeYears:        2,
		AgeMonths:       3,
		Sex:             "male",
		Breed:           "Maine Coon",
		Lifestyle:       "indoor",
		CurrentWeightKg: 6.5,
		Routine: CareRoutine{
			FoodType:          FoodMixed,
			FoodOuncesPerDay:  7,
			FeedingsPerDay:    2,
			PlayMinutesPerDay: 20,
			VetVisitsPerYear:  1,
		},
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		owner  string
	}{
		{"empty owner", func(in *CreateInput) {}, ""},
		{"empty name", func(in *CreateInput) { in.Name = "  " }, "owner-1"},
		{"negative age years", func(in *CreateInput) { in.AgeYears = -1 }, "owner-1"},
		{"months over 11", func(in *CreateInput) { in.AgeMonths = 12 }, "owner-1"},
		{"zero weight", func(in *CreateInput) { in.CurrentWeightKg = 0 }, "owner-1"},
	}
	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		if _, err := svc.Create(context.Background(), c.owner, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestCreate_NormalizesEnums(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	in := validInput()
	in.Sex = "MALE"
	in.Lifestyle = "Penthouse"
	in.WeightSource = "telepathy"
	in.BodyCondition = "chonky"
	in.KnownConditions = []string{" asthma ", "", "  "}

	c, err := svc.Create(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Sex != SexMale {
		t.Fatalf("expected sex normalized to male, got %s", c.Sex)
	}
	if c.Lifestyle != LifestyleIndoor {
		t.Fatalf("expected unknown lifestyle to default indoor, got %s", c.Lifestyle)
	}
	if c.WeightSource != WeightOwnerReported {
		t.Fatalf("expected owner_reported default, got %s", c.WeightSource)
	}
	if c.BodyCondition != ConditionUnknown {
		t.Fatalf("expected unknown body condition, got %s", c.BodyCondition)
	}
	if len(c.KnownConditions) != 1 || c.KnownConditions[0] != "asthma" {
		t.Fatalf("expected cleaned conditions, got %v", c.KnownConditions)
	}
}

func TestCreate_AppliesRoutineDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	in := validInput()
	in.Routine = CareRoutine{FoodType: "cosmic", FoodOuncesPerDay: 0, FeedingsPerDay: 0}

	c, err := svc.Create(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	routine, err := svc.GetRoutine(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetRoutine error: %v", err)
	}
	if routine.FoodType != FoodDry {
		t.Fatalf("expected dry default, got %s", routine.FoodType)
	}
	if routine.FeedingsPerDay != 2 || routine.FoodOuncesPerDay != 4.0 {
		t.Fatalf("expected feeding defaults, got %+v", routine)
	}
}

func TestCreate_PhotoEnrichmentIsBestEffort(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("vision down")}
	svc := NewService(newTestRepo(), analyzer, nil)

	in := validInput()
	in.PhotoURL = "https://example.com/milo.jpg"

	c, err := svc.Create(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("failing analyzer must not block create: %v", err)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected one analysis attempt, got %d", analyzer.calls)
	}
	if c.BodyCondition != ConditionUnknown {
		t.Fatalf("failed analysis must leave condition unknown, got %s", c.BodyCondition)
	}
}

func TestCreate_PhotoEnrichmentFillsOnlyMissingFields(t *testing.T) {
	analyzer := &fakeAnalyzer{assessment: vision.Assessment{
		BodyCondition: "overweight",
		CoatColor:     "orange",
		Confidence:    0.9,
	}}
	svc := NewService(newTestRepo(), analyzer, nil)

	// Sin condición declarada: la visión completa.
	in := validInput()
	in.PhotoURL = "https://example.com/milo.jpg"
	c, err := svc.Create(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.BodyCondition != ConditionOverweight || c.CoatColor != "orange" {
		t.Fatalf("expected vision enrichment, got condition=%s coat=%s", c.BodyCondition, c.CoatColor)
	}

	// Con condición declarada: lo del owner gana.
	in = validInput()
	in.PhotoURL = "https://example.com/milo.jpg"
	in.BodyCondition = "ideal"
	c, err = svc.Create(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.BodyCondition != ConditionIdeal {
		t.Fatalf("owner-declared condition must win, got %s", c.BodyCondition)
	}
}

func TestCreate_NoAnalyzerNoPhotoIsFine(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	if _, err := svc.Create(context.Background(), "owner-1", validInput()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestReplaceRoutine_ValidatesAndNormalizes(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	c, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.ReplaceRoutine(context.Background(), c.ID, CareRoutine{TreatsPerDay: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative values, got %v", err)
	}
	if _, err := svc.ReplaceRoutine(context.Background(), "ghost", CareRoutine{}); err == nil {
		t.Fatalf("expected error for unknown cat")
	}

	got, err := svc.ReplaceRoutine(context.Background(), c.ID, CareRoutine{FoodType: FoodWet, FoodOuncesPerDay: 5, FeedingsPerDay: 3})
	if err != nil {
		t.Fatalf("ReplaceRoutine error: %v", err)
	}
	if got.FoodType != FoodWet || got.FeedingsPerDay != 3 {
		t.Fatalf("unexpected routine: %+v", got)
	}
}

func TestOwnerOf(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	c, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	owner, err := svc.OwnerOf(context.Background(), c.ID)
	if err != nil || owner != "owner-1" {
		t.Fatalf("expected owner-1, got %q err=%v", owner, err)
	}
}
