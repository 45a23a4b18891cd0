package enhance

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"
)

// -------------------------
// Fakes
// -------------------------

type fakeRunRepo struct {
	byCatID map[string]simulation.Run
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{byCatID: map[string]simulation.Run{}}
}

func (r *fakeRunRepo) SaveLatest(ctx context.Context, run simulation.Run) error {
	r.byCatID[run.CatID] = run
	return nil
}

func (r *fakeRunRepo) Latest(ctx context.Context, catID string) (simulation.Run, error) {
	run, ok := r.byCatID[catID]
	if !ok {
		return simulation.Run{}, errors.New("not found")
	}
	return run, nil
}

type fakeGenerator struct {
	notes []notes.MilestoneNote
	err   error
	calls int
}

func (g *fakeGenerator) MilestoneNotes(ctx context.Context, req notes.Request) ([]notes.MilestoneNote, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.notes, nil
}

func testCat() cats.CatProfile {
	return cats.CatProfile{
		ID:              "cat-1",
		OwnerUserID:     "owner-1",
		Name:            "Milo",
		AgeYears:        1,
		Breed:           "Maine Coon",
		Lifestyle:       cats.LifestyleIndoor,
		CurrentWeightKg: 6.5,
	}
}

func testRoutine() cats.CareRoutine {
	return cats.CareRoutine{
		FoodType:          cats.FoodMixed,
		FoodOuncesPerDay:  7.0,
		FeedingsPerDay:    2,
		TreatsPerDay:      2,
		PlayMinutesPerDay: 20,
		VetVisitsPerYear:  1,
	}
}

func seededRun(t *testing.T, sims *simulation.Service) simulation.Run {
	t.Helper()
	run, err := sims.Run(context.Background(), testCat(), testRoutine(), 12, 240)
	if err != nil {
		t.Fatalf("seed run error: %v", err)
	}
	return run
}

// -------------------------
// Tests
// -------------------------

func TestLocal_BuildsEnhancedResult(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	svc := NewService(sims, nil, nil)
	run := seededRun(t, sims)

	res := svc.Local(run.Result, testCat(), testRoutine())

	if !res.IsEnhanced {
		t.Fatalf("expected IsEnhanced")
	}
	if res.BreedProfile.Name != "Maine Coon" {
		t.Fatalf("expected maine coon profile, got %q", res.BreedProfile.Name)
	}
	if len(res.Points) != len(run.Result.Points) {
		t.Fatalf("point count changed: %d vs %d", len(res.Points), len(run.Result.Points))
	}
	if len(res.Timeline) == 0 {
		t.Fatalf("expected a progressive timeline")
	}
	if len(res.Recommendations) > maxEnhancedRecommendations {
		t.Fatalf("recommendations over cap: %d", len(res.Recommendations))
	}
	// Las alertas de raza se suman a las base.
	if len(res.Alerts) <= len(run.Result.Alerts) {
		t.Fatalf("expected breed alerts merged in: base %d, enhanced %d", len(run.Result.Alerts), len(res.Alerts))
	}
}

func TestLocal_NeverMutatesSimulatedValues(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	svc := NewService(sims, nil, nil)
	run := seededRun(t, sims)

	res := svc.Local(run.Result, testCat(), testRoutine())
	for i, p := range res.Points {
		base := run.Result.Points[i]
		if p.WeightKg != base.WeightKg || p.Status != base.Status || p.AgeMonths != base.AgeMonths {
			t.Fatalf("point %d mutated: %+v vs base %+v", i, p.Point, base)
		}
	}
}

func TestLocal_DeterministicGivenSameBase(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	svc := NewService(sims, nil, nil)
	run := seededRun(t, sims)

	a := svc.Local(run.Result, testCat(), testRoutine())
	b := svc.Local(run.Result, testCat(), testRoutine())

	if !reflect.DeepEqual(a.Points, b.Points) {
		t.Fatalf("points differ between identical Local calls")
	}
	if a.Summary != b.Summary || !reflect.DeepEqual(a.Recommendations, b.Recommendations) {
		t.Fatalf("summary/recommendations differ between identical Local calls")
	}
	if !reflect.DeepEqual(a.Trajectory, b.Trajectory) || !reflect.DeepEqual(a.Timeline, b.Timeline) {
		t.Fatalf("trajectory/timeline differ between identical Local calls")
	}
	// Los IDs de alerta son uuids nuevos por llamada; comparar lo demás.
	if len(a.Alerts) != len(b.Alerts) {
		t.Fatalf("alert count differs")
	}
	for i := range a.Alerts {
		if a.Alerts[i].AgeMonths != b.Alerts[i].AgeMonths || a.Alerts[i].Message != b.Alerts[i].Message {
			t.Fatalf("alert %d differs", i)
		}
	}
}

func TestWithNotes_NilGeneratorEqualsLocal(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	svc := NewService(sims, nil, nil)
	run := seededRun(t, sims)

	res := svc.WithNotes(context.Background(), run.ID, run.Result, testCat(), testRoutine())
	for _, p := range res.Points {
		if p.EnhancedNote != nil {
			t.Fatalf("unexpected enhanced note without a generator")
		}
	}
	if !res.IsEnhanced {
		t.Fatalf("local enhancement should still apply")
	}
}

func TestWithNotes_GeneratorFailureKeepsLocal(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc := NewService(sims, gen, nil)
	run := seededRun(t, sims)

	res := svc.WithNotes(context.Background(), run.ID, run.Result, testCat(), testRoutine())

	if gen.calls != 1 {
		t.Fatalf("expected generator to be called once, got %d", gen.calls)
	}
	if !res.IsEnhanced {
		t.Fatalf("failure should not drop local enhancement")
	}
	for _, p := range res.Points {
		if p.EnhancedNote != nil {
			t.Fatalf("failed generator should leave no notes")
		}
	}
}

func TestWithNotes_MergesYearlyNotes(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	gen := &fakeGenerator{notes: []notes.MilestoneNote{
		{AgeYears: 2, PersonalizedNote: "Milo is cruising through year two.", Priority: "low"},
		{AgeYears: 5, PersonalizedNote: "Midlife checkpoint for Milo.", Priority: "medium"},
	}}
	svc := NewService(sims, gen, nil)
	run := seededRun(t, sims)

	res := svc.WithNotes(context.Background(), run.ID, run.Result, testCat(), testRoutine())

	checked := 0
	for i, p := range res.Points {
		base := run.Result.Points[i]
		if p.WeightKg != base.WeightKg || p.Status != base.Status {
			t.Fatalf("notes merge must not touch simulated values")
		}
		switch p.AgeMonths {
		case 24:
			if p.Notes != "Milo is cruising through year two." || p.EnhancedNote == nil {
				t.Fatalf("year-2 note not merged: %+v", p)
			}
			checked++
		case 60:
			if p.EnhancedNote == nil || p.EnhancedNote.Priority != "medium" {
				t.Fatalf("year-5 note not merged: %+v", p)
			}
			checked++
		default:
			if p.EnhancedNote != nil {
				t.Fatalf("unexpected note at month %d", p.AgeMonths)
			}
		}
	}
	if checked != 2 {
		t.Fatalf("expected both yearly points covered, got %d", checked)
	}
}

func TestWithNotes_BlankNotesIgnored(t *testing.T) {
	sims := simulation.NewSeededService(newFakeRunRepo(), 42)
	gen := &fakeGenerator{notes: []notes.MilestoneNote{
		{AgeYears: 2, PersonalizedNote: "   "},
	}}
	svc := NewService(sims, gen, nil)
	run := seededRun(t, sims)

	res := svc.WithNotes(context.Background(), run.ID, run.Result, testCat(), testRoutine())
	for _, p := range res.Points {
		if p.EnhancedNote != nil {
			t.Fatalf("blank note should be dropped")
		}
	}
}

func TestWithNotes_DiscardsSupersededRun(t *testing.T) {
	repo := newFakeRunRepo()
	sims := simulation.NewSeededService(repo, 42)
	gen := &fakeGenerator{notes: []notes.MilestoneNote{
		{AgeYears: 2, PersonalizedNote: "late arrival"},
	}}
	svc := NewService(sims, gen, nil)

	first := seededRun(t, sims)
	_ = seededRun(t, sims) // nueva corrida: la primera queda superseded

	res := svc.WithNotes(context.Background(), first.ID, first.Result, testCat(), testRoutine())

	for _, p := range res.Points {
		if p.EnhancedNote != nil {
			t.Fatalf("superseded run must discard external notes")
		}
	}
	if !res.IsEnhanced {
		t.Fatalf("local enhancement should survive the discard")
	}
}
