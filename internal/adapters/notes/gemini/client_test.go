package gemini

import (
	"errors"
	"strings"
	"testing"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"

	"github.com/google/generative-ai-go/genai"
)

func testRequest() notes.Request {
	return notes.Request{
		Cat: cats.CatProfile{
			Name:            "Milo",
			Breed:           "Maine Coon",
			Sex:             cats.SexMale,
			Lifestyle:       cats.LifestyleIndoor,
			CurrentWeightKg: 6.5,
			KnownConditions: []string{"asthma"},
		},
		Routine: cats.CareRoutine{
			FoodType:          cats.FoodMixed,
			FoodOuncesPerDay:  7,
			TreatsPerDay:      2,
			PlayMinutesPerDay: 20,
			VetVisitsPerYear:  1.5,
		},
		Trend: "stable",
		YearlyPoints: []simulation.Point{
			{AgeMonths: 24, WeightKg: 6.8, Status: simulation.StatusOK},
		},
	}
}

func TestBuildUserPrompt_FormatsRoutineValues(t *testing.T) {
	prompt := buildUserPrompt(testRequest())

	if !strings.Contains(prompt, "1.5 vet visits/year") {
		t.Fatalf("vet visits not formatted as float: %q", prompt)
	}
	if strings.Contains(prompt, "%!") {
		t.Fatalf("prompt contains a botched format verb: %q", prompt)
	}
	if !strings.Contains(prompt, "Known conditions: asthma.") {
		t.Fatalf("known conditions missing: %q", prompt)
	}
	if !strings.Contains(prompt, "- age 24 months, 6.80 kg, ok") {
		t.Fatalf("yearly point missing: %q", prompt)
	}
}

func TestBuildUserPrompt_OmitsEmptyConditions(t *testing.T) {
	req := testRequest()
	req.Cat.KnownConditions = nil

	if strings.Contains(buildUserPrompt(req), "Known conditions") {
		t.Fatalf("conditions line should be omitted when empty")
	}
}

func TestNotesFromResponse_NilContentCandidate(t *testing.T) {
	// Bloqueo de safety: candidato presente, Content nil.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	if _, err := notesFromResponse(resp); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse for nil content, got %v", err)
	}
}

func TestNotesFromResponse_EmptyCases(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil candidate", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{nil}}},
		{"empty parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}},
	}
	for _, c := range cases {
		if _, err := notesFromResponse(c.resp); !errors.Is(err, ErrBadResponse) {
			t.Fatalf("%s: expected ErrBadResponse, got %v", c.name, err)
		}
	}
}

func TestNotesFromResponse_ParsesFencedJSON(t *testing.T) {
	body := "```json\n[{\"age_years\":2,\"personalized_note\":\"Milo is doing great.\",\"priority\":\"low\"}]\n```"
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(body)}},
		}},
	}

	out, err := notesFromResponse(resp)
	if err != nil {
		t.Fatalf("notesFromResponse error: %v", err)
	}
	if len(out) != 1 || out[0].AgeYears != 2 || out[0].Priority != "low" {
		t.Fatalf("unexpected notes: %+v", out)
	}
}
