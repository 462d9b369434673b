package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"motherlanka-be/internal/bootstrap"
	"motherlanka-be/internal/config"
	"motherlanka-be/internal/model"
	"motherlanka-be/internal/server"
	"motherlanka-be/internal/tracer"
	"motherlanka-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.App)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := model.Migrate(gormDB); err != nil {
			log.Panicf("Auto migration failed: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}
	if container.ContentEventHandler != nil {
		if err := container.ContentEventHandler.Start(ctx); err != nil {
			log.Printf("Content event subscription failed: %v", err)
		}
	}

	// Warm the index so the first chat does not pay for the build.
	go func() {
		built, err := container.Rag.Indexer.EnsureIndex(ctx)
		if err != nil {
			log.Printf("Initial index build failed: %v", err)
			return
		}
		if built {
			log.Println("Background: RAG index built on startup")
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
