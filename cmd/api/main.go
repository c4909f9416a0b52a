package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/batuhansemiz/portfolio-backend/config"
	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	"github.com/batuhansemiz/portfolio-backend/internal/bootstrap"
	"github.com/batuhansemiz/portfolio-backend/internal/firebase"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
	"github.com/batuhansemiz/portfolio-backend/internal/session"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	clients, err := firebase.Initialize(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer clients.Close()

	sessions := session.NewManager(
		newSessionStore(ctx, &cfg.Session),
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		cfg.Session.Secret,
	)

	if !cfg.AdminConfigured() {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD_HASH is not set; admin login will be unavailable")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       serviceName,
		Version:           cfg.App.Version,
		Origins:           cfg.CORS.Origins,
		Store:             repository.NewFirestore(clients.Firestore),
		Verifier:          auth.NewFirebaseVerifier(clients.Auth),
		Sessions:          sessions,
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// newSessionStore connects the Redis session store when an address is
// configured and falls back to the in-memory store otherwise.
func newSessionStore(ctx context.Context, cfg *config.SessionConfig) session.Store {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		store := session.NewMemoryStore()
		session.NewSweeper(store).Start()
		return store
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	return session.NewRedisStore(client)
}
