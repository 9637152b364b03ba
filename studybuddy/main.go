package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/routes"
	"studybuddy/studybuddy/services/llm"
	"studybuddy/studybuddy/services/notes"
	"studybuddy/studybuddy/services/psychology"
	"studybuddy/studybuddy/services/studyroom"
	"studybuddy/studybuddy/sources/psql"
	"studybuddy/studybuddy/sources/psql/dao"
	"studybuddy/studybuddy/sources/storage"
	"studybuddy/studybuddy/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.AppLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	objects, err := storage.NewObjectStore(cfg)
	if err != nil {
		logging.AppLogger.Error("object storage connection error", zap.Error(err))
		os.Exit(1)
	}

	userDAO := dao.NewUserDAO(db.DB)
	assessmentDAO := dao.NewAssessmentDAO(db.DB)
	roomDAO := dao.NewRoomDAO(db.DB)
	noteDAO := dao.NewNoteDAO(db.DB)

	generator := llm.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	hub := studyroom.NewHub()
	engine := psychology.NewEngine(assessmentDAO)
	cadence := studyroom.NewCadenceController(roomDAO, generator, hub, cfg.SummaryInterval, cfg.SummaryTimeout)
	noteSvc := notes.NewService(noteDAO, objects, generator)

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	psychCtrl := controllers.NewPsychologyController(engine, assessmentDAO)
	roomCtrl := controllers.NewStudyRoomController(roomDAO, cadence)
	notesCtrl := controllers.NewNotesController(noteSvc)
	healthCtrl := controllers.NewHealthController(db.DB)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/psychology", routes.PsychologyRoutes(psychCtrl, cfg))
	r.Mount("/study-rooms", routes.StudyRoomRoutes(roomCtrl, hub, cfg))
	r.Mount("/notes", routes.NotesRoutes(notesCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening on " + cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.AppLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.AppLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
