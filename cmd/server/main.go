package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"umbaer-craft-backend/internal/config"
	"umbaer-craft-backend/internal/discord"
	"umbaer-craft-backend/internal/handlers"
	"umbaer-craft-backend/internal/middleware"
	"umbaer-craft-backend/internal/services"
	"umbaer-craft-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win either way.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The Discord session is process-wide: opened once here, reused by every
	// request. A missing token is not fatal for the process; submissions are
	// rejected with a configuration error while the static site stays up.
	var tickets *services.TicketService
	if cfg.DiscordBotToken != "" {
		client, err := discord.NewClient(cfg.DiscordBotToken)
		if err != nil {
			log.Fatalf("Failed to create Discord client: %v", err)
		}
		if err := client.Open(); err != nil {
			log.Printf("Warning: Discord connection failed: %v", err)
			log.Println("Order submissions will be rejected until the bot connects")
		} else {
			defer client.Close()
		}
		tickets = services.NewTicketService(client, cfg.GuildID, cfg.CategoryID)
	} else {
		log.Println("Warning: DISCORD_BOT_TOKEN not set. Order submissions will fail with a configuration error")
	}

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	orderHandler := handlers.NewOrderHandler(cfg, tickets, store)
	healthHandler := handlers.NewHealthHandler(cfg, tickets)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler.Health)
	router.POST("/api/order", orderHandler.CreateOrder)

	// Everything else is the pre-built site, with index.html as the SPA
	// fallback.
	router.NoRoute(handlers.SPAHandler(cfg.StaticDir))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
