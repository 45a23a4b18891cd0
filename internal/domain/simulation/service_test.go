package simulation

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRunRepo struct {
	byCatID map[string]Run
}

func newTestRunRepo() *testRunRepo {
	return &testRunRepo{byCatID: map[string]Run{}}
}

func (r *testRunRepo) SaveLatest(ctx context.Context, run Run) error {
	r.byCatID[run.CatID] = run
	return nil
}

func (r *testRunRepo) Latest(ctx context.Context, catID string) (Run, error) {
	run, ok := r.byCatID[catID]
	if !ok {
		return Run{}, errRepoNotFound
	}
	return run, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Run_ValidatesBounds(t *testing.T) {
	svc := NewSeededService(newTestRunRepo(), 1)

	if _, err := svc.Run(context.Background(), testCat(), testRoutine(), -1, 240); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative start, got %v", err)
	}
	if _, err := svc.Run(context.Background(), testCat(), testRoutine(), 100, 50); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for end < start, got %v", err)
	}
	if _, err := svc.Run(context.Background(), testCat(), testRoutine(), 0, 500); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for end past horizon, got %v", err)
	}
}

func TestService_Run_ZeroEndDefaultsToHorizon(t *testing.T) {
	svc := NewSeededService(newTestRunRepo(), 1)

	run, err := svc.Run(context.Background(), testCat(), testRoutine(), 12, 0)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	last := run.Result.Points[len(run.Result.Points)-1]
	if last.AgeMonths != EndAgeMonths {
		t.Fatalf("expected default horizon %d, got %d", EndAgeMonths, last.AgeMonths)
	}
}

func TestService_Run_NewRunSupersedesPrevious(t *testing.T) {
	repo := newTestRunRepo()
	svc := NewSeededService(repo, 1)

	first, err := svc.Run(context.Background(), testCat(), testRoutine(), 12, 240)
	if err != nil {
		t.Fatalf("Run #1 error: %v", err)
	}
	second, err := svc.Run(context.Background(), testCat(), testRoutine(), 12, 240)
	if err != nil {
		t.Fatalf("Run #2 error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct run ids")
	}
	if svc.IsLatestRun(context.Background(), "cat-1", first.ID) {
		t.Fatalf("first run should be superseded")
	}
	if !svc.IsLatestRun(context.Background(), "cat-1", second.ID) {
		t.Fatalf("second run should be the latest")
	}

	latest, err := svc.LatestRun(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("LatestRun error: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("expected latest to be run #2")
	}
}

func TestService_IsLatestRun_UnknownCat(t *testing.T) {
	svc := NewSeededService(newTestRunRepo(), 1)
	if svc.IsLatestRun(context.Background(), "ghost", "run-1") {
		t.Fatalf("expected false for unknown cat")
	}
}
