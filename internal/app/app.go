package app

import (
	"FlowAcademy/internal/app/server"
	"FlowAcademy/internal/catalog"
	"FlowAcademy/internal/config"
	"FlowAcademy/internal/delivery/http"
	"FlowAcademy/internal/gemini"
	"FlowAcademy/internal/service"
	"FlowAcademy/internal/service/lesson/content"
	"FlowAcademy/internal/service/lesson/quiz"
	"FlowAcademy/internal/storage/redisstore"
	"FlowAcademy/pkg/logger"
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	store, err := redisstore.New(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.FatalErr("error connecting to redis", err)
	}
	defer store.Close()

	generator, err := gemini.NewClient(cfg.Gemini.APIKey, log,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithHTTPClient(&nethttp.Client{Timeout: cfg.Gemini.Timeout}),
	)
	if err != nil {
		log.FatalErr("error configuring gemini client", err)
	}

	cat := catalog.New()
	contentService := content.NewLessonContentService(log, generator)
	quizService := quiz.NewQuizService(log, store)
	u := service.Collection{ContentService: contentService, QuizService: quizService}

	r := http.InitRoutes(log, u, cat)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
