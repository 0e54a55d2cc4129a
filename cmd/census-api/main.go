package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"census-etl/configs"
	"census-etl/internal/application/controller"
	"census-etl/internal/application/middleware"
	"census-etl/internal/application/schedule"
	"census-etl/internal/infra/container"
	"census-etl/pkg/log"
	"census-etl/pkg/msg"
	"census-etl/pkg/resource"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	components, err := container.Build(ctx)
	if err != nil {
		log.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	if contextPath == "" {
		contextPath = configs.Env.ContextPath
	}
	api := e.Group(contextPath)

	// Init Controller
	healthController := controller.NewHealthController(api, components.Health)
	extractionController := controller.NewExtractionController(api, components.Pipeline)
	cityController := controller.NewCityController(api, components.Population)

	// Init Routes
	healthController.InitHealthRoutes()
	extractionController.InitExtractionRoutes()
	cityController.InitCityRoutes()

	// Init Schedule
	if resource.GetBool("app.schedule.enabled") {
		scheduler := schedule.NewExtractionScheduler(components.Pipeline, components.Redis, &schedule.ExtractionSchedulerConfig{
			CronExpression: resource.GetString("app.schedule.cron"),
			LockTTL:        resource.GetDuration("app.schedule.lock-ttl"),
		})
		if err := scheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start extraction scheduler", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down HTTP server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}
