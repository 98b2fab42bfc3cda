package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/db"
	httpadapter "github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/handlers"
	httpmiddleware "github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	appservice "github.com/DOUGSKEEZ/clio-board-sub001/internal/app/service"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/config"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	store := dbadapter.NewStore(db)
	taskService := appservice.NewTaskService(store)
	dividerService := appservice.NewDividerService(store)
	auditService := appservice.NewAuditService(store)
	routineService := appservice.NewRoutineService(store)
	noteService := appservice.NewNoteService(store)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(db),
		Task:    handlers.NewTaskHandler(taskService),
		Divider: handlers.NewDividerHandler(dividerService),
		Audit:   handlers.NewAuditHandler(auditService),
		Routine: handlers.NewRoutineHandler(routineService),
		Note:    handlers.NewNoteHandler(noteService),
	}, cfg.AgentToken)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
