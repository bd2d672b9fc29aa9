package main

import (
	"net/http"
	"os"
	"time"

	"bookreview/internal/catalog"
	"bookreview/internal/credential"
	apphttp "bookreview/internal/http"
	"bookreview/internal/httpx"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	_ = godotenv.Load(".env.local")

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	serverAddress := getEnv("APP_ADDR", ":8080")
	jwtSecret := mustGetEnv("JWT_SECRET")

	books := catalog.NewStore(catalog.Seed())
	users := credential.NewStore()

	bookHandler := apphttp.NewBookHandler(books)
	userHandler := apphttp.NewUserHandler(users, jwtSecret)
	reviewHandler := apphttp.NewReviewHandler(books)

	router := apphttp.NewRouter(bookHandler, userHandler, reviewHandler, jwtSecret)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatal().Str("key", key).Msg("missing required environment variable")
	return ""
}
