package router

import (
	"net/http"

	_ "github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/docs"
	mem "github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/adapters/storage/memory"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/enhance"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/reminders"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/middleware"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/logger"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/auth"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notify"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/vision"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)

	// Colaboradores opcionales; nil desactiva la feature correspondiente.
	Notes    notes.Generator
	Notifier notify.Notifier
	Vision   vision.Analyzer

	Logger logger.Logger

	// Seed fija la fuente de aleatoriedad del simulador (tests). 0 => reloj.
	Seed int64
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	// Repos in-memory: sin persistencia durable.
	catRepo := mem.NewCatRepo()
	runRepo := mem.NewRunRepo()
	remRepo := mem.NewReminderRepo()

	// Services por módulo
	catsSvc := cats.NewService(catRepo, opts.Vision, log)
	simSvc := simulation.NewService(runRepo)
	if opts.Seed != 0 {
		simSvc = simulation.NewSeededService(runRepo, opts.Seed)
	}
	enhanceSvc := enhance.NewService(simSvc, opts.Notes, log)
	remindersSvc := reminders.NewService(remRepo, opts.Notifier, catsSvc, log)

	// Rutas por módulo
	breeds.RegisterRoutes(r)
	cats.RegisterRoutes(r, catsSvc)
	simulation.RegisterRoutes(r, simSvc, catsSvc)
	enhance.RegisterRoutes(r, enhanceSvc, simSvc, catsSvc)
	reminders.RegisterRoutes(r, remindersSvc, catsSvc)

	return r
}
