package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrBadResponse   = errors.New("gemini response unusable")
)

const defaultModel = "gemini-2.5-flash-preview-09-2025"

// Config del generador de notas.
// APIKey normalmente viene de GEMINI_API_KEY en quien lo instancie.
type Config struct {
	APIKey string

	// Opcional: nombre del modelo. Vacío => defaultModel.
	Model string
}

// Generator implementa notes.Generator contra la API de Gemini.
type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGenerator inicializa el cliente. Con API key vacía devuelve (nil, nil)
// para que el caller decida qué hacer sin configuración; un Generator nil es
// seguro de pasar como notes.Generator siempre que el caller lo chequee.
func NewGenerator(ctx context.Context, cfg Config) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	name := strings.TrimSpace(cfg.Model)
	if name == "" {
		name = defaultModel
	}

	return &Generator{
		client: client,
		model:  client.GenerativeModel(name),
	}, nil
}

// Close libera el cliente subyacente.
func (g *Generator) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

const systemPrompt = `You are a feline health advisor writing milestone notes for a cat owner.
You receive a cat profile, its care routine, and one simulated data point per birthday (age in months, weight in kg, health status).

RULES:
1. Write one note per yearly data point you receive, in the same order.
2. Keep each personalized_note to 2-3 warm, concrete sentences addressed to the owner.
3. breed_specific_alerts lists condition names only, no prose.
4. priority is one of: high, medium, low.
5. Respond ONLY with a single JSON array. No markdown fences, no "json" tag, no extra text.
6. Each array element MUST have this exact shape:
{"age_years":1,"personalized_note":"...","breed_specific_alerts":["..."],"age_appropriate_advice":"...","upcoming_milestones":["..."],"trajectory_insight":"...","priority":"medium"}`

// MilestoneNotes pide a Gemini una nota por punto anual. Los callers lo
// tratan como best-effort: cualquier error deja el resultado local intacto.
func (g *Generator) MilestoneNotes(ctx context.Context, req notes.Request) ([]notes.MilestoneNote, error) {
	if g == nil || g.model == nil {
		return nil, ErrNotConfigured
	}

	g.model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildUserPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	return notesFromResponse(resp)
}

// notesFromResponse desempaqueta el primer candidato y parsea el JSON.
// Content puede venir nil en bloqueos de safety: se trata como respuesta
// inusable, no como panic.
func notesFromResponse(resp *genai.GenerateContentResponse) ([]notes.MilestoneNote, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, ErrBadResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, ErrBadResponse
	}

	part := content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected part type %T", ErrBadResponse, part)
	}

	var out []notes.MilestoneNote
	if err := json.Unmarshal([]byte(stripFences(string(text))), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return out, nil
}

func buildUserPrompt(req notes.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cat: %q, breed %q, sex %s, lifestyle %s, current weight %.2f kg.\n",
		req.Cat.Name, req.Cat.Breed, req.Cat.Sex, req.Cat.Lifestyle, req.Cat.CurrentWeightKg)
	if len(req.Cat.KnownConditions) > 0 {
		fmt.Fprintf(&b, "Known conditions: %s.\n", strings.Join(req.Cat.KnownConditions, ", "))
	}
	fmt.Fprintf(&b, "Routine: %s food %.1f oz/day, %d treats/day, %d play min/day, %.1f vet visits/year.\n",
		req.Routine.FoodType, req.Routine.FoodOuncesPerDay, req.Routine.TreatsPerDay,
		req.Routine.PlayMinutesPerDay, req.Routine.VetVisitsPerYear)
	fmt.Fprintf(&b, "Trajectory trend: %s.\n", req.Trend)

	b.WriteString("Yearly points:\n")
	for _, p := range req.YearlyPoints {
		fmt.Fprintf(&b, "- age %d months, %.2f kg, %s\n", p.AgeMonths, p.WeightKg, p.Status)
	}
	return b.String()
}

// stripFences tolera respuestas envueltas en ```json ... ``` aunque el
// prompt las prohíba.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
