package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/logger"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"
)

const (
	maxEnhancedRecommendations = 6
	notesTimeout               = 8 * time.Second
)

type Service struct {
	sims      *simulation.Service
	generator notes.Generator // opcional; nil => solo enhancement local
	log       logger.Logger
}

func NewService(sims *simulation.Service, generator notes.Generator, log logger.Logger) *Service {
	return &Service{
		sims:      sims,
		generator: generator,
		log:       log,
	}
}

// Local aplica todo el enriquecimiento computable sin colaboradores externos.
// Determinístico dados sus inputs: llamado dos veces con el mismo resultado
// base produce exactamente la misma trayectoria, perfil y timeline.
func (s *Service) Local(base simulation.Result, cat cats.CatProfile, routine cats.CareRoutine) Result {
	profile := breeds.Find(cat.Breed)
	traj := AnalyzeTrajectory(base.Points, cat, routine)

	startMonths, endMonths := 0, 0
	if len(base.Points) > 0 {
		startMonths = base.Points[0].AgeMonths
		endMonths = base.Points[len(base.Points)-1].AgeMonths
	}

	points := make([]Point, 0, len(base.Points))
	for _, p := range base.Points {
		points = append(points, Point{
			Point:      p,
			BreedRisks: breedRiskNames(profile, p.AgeMonths/12),
		})
	}

	merged := mergeAlerts(base.Alerts, breedAlerts(profile, startMonths, endMonths))
	summary, recs := extendSummary(base, cat, profile, traj)

	return Result{
		Points:          points,
		Alerts:          merged,
		Summary:         summary,
		Recommendations: recs,
		Trajectory:      traj,
		BreedProfile:    profile,
		Timeline:        buildTimeline(profile, cat.AgeInMonths()/12, traj),
		IsEnhanced:      true,
	}
}

// WithNotes corre el enhancement local y después intenta, best-effort, traer
// notas personalizadas del generador externo. Cualquier fallo (red, payload,
// timeout) devuelve el resultado local intacto. Si el gato corrió una
// simulación más nueva mientras esperábamos, el resultado externo se descarta.
func (s *Service) WithNotes(ctx context.Context, runID string, base simulation.Result, cat cats.CatProfile, routine cats.CareRoutine) Result {
	local := s.Local(base, cat, routine)
	if s.generator == nil {
		return local
	}

	nctx, cancel := context.WithTimeout(ctx, notesTimeout)
	defer cancel()

	got, err := s.generator.MilestoneNotes(nctx, notes.Request{
		Cat:          cat,
		Routine:      routine,
		YearlyPoints: yearlyPoints(base.Points),
		Trend:        string(local.Trajectory.Trend),
	})
	if err != nil {
		if s.log != nil {
			s.log.Warn("milestone notes unavailable, keeping local enhancement", map[string]any{
				"cat": cat.ID, "err": err.Error(),
			})
		}
		return local
	}

	if runID != "" && s.sims != nil && !s.sims.IsLatestRun(ctx, cat.ID, runID) {
		// Llegó tarde: hay una corrida más nueva, este resultado ya no vale.
		if s.log != nil {
			s.log.Info("discarding superseded enhancement", map[string]any{"cat": cat.ID, "run": runID})
		}
		return local
	}

	return mergeNotes(local, got)
}

// mergeNotes sustituye las notas de los puntos anuales correspondientes sin
// tocar peso ni status, y cuelga la nota completa del punto.
func mergeNotes(local Result, got []notes.MilestoneNote) Result {
	byYear := make(map[int]notes.MilestoneNote, len(got))
	for _, n := range got {
		if strings.TrimSpace(n.PersonalizedNote) != "" {
			byYear[n.AgeYears] = n
		}
	}
	if len(byYear) == 0 {
		return local
	}

	points := make([]Point, len(local.Points))
	copy(points, local.Points)
	for i, p := range points {
		if p.AgeMonths%12 != 0 {
			continue
		}
		if n, ok := byYear[p.AgeMonths/12]; ok {
			note := n
			points[i].Notes = n.PersonalizedNote
			points[i].EnhancedNote = &note
		}
	}

	local.Points = points
	return local
}

// extendSummary agrega oraciones derivadas del trend y de la raza, y suma
// recomendaciones nuevas deduplicando por contención de substring.
func extendSummary(base simulation.Result, cat cats.CatProfile, profile breeds.Profile, traj Trajectory) (string, []string) {
	summary := base.Summary
	switch traj.Trend {
	case TrendDeclining:
		summary += " The year-over-year trend is declining, so the later projections deserve attention now."
	case TrendImproving:
		summary += " The year-over-year trend is improving; the current routine is working."
	}
	if !profile.IsGeneric() && len(profile.Risks) > 0 {
		top := profile.Risks[0]
		summary += fmt.Sprintf(" As a %s, %s's main breed watch-item is %s.", profile.Name, cat.Name, top.Condition)
	}

	recs := make([]string, 0, maxEnhancedRecommendations)
	recs = append(recs, base.Recommendations...)

	candidates := make([]string, 0, 4)
	if traj.Trend == TrendDeclining {
		candidates = append(candidates, "The projection is trending down; revisit diet and activity this month rather than next year.")
	}
	for _, r := range profile.Risks {
		if r.Level == breeds.RiskHigh {
			candidates = append(candidates, fmt.Sprintf("Breed risk: %s. %s", r.Condition, r.Monitoring))
		}
	}
	if band, ok := breeds.AdviceFor(profile, cat.AgeInMonths()/12); ok && len(band.Advice) > 0 {
		candidates = append(candidates, band.Advice[0])
	}

	for _, c := range candidates {
		if len(recs) >= maxEnhancedRecommendations {
			break
		}
		if containsSimilar(recs, c) {
			continue
		}
		recs = append(recs, c)
	}
	if len(recs) > maxEnhancedRecommendations {
		recs = recs[:maxEnhancedRecommendations]
	}
	return summary, recs
}

func containsSimilar(existing []string, candidate string) bool {
	for _, e := range existing {
		if strings.Contains(e, candidate) || strings.Contains(candidate, e) {
			return true
		}
	}
	return false
}
