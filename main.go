// Package main, dischord backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar ile)
//  3. Repository'leri oluştur (DB bağlantısı ile)
//  4. Service'leri oluştur (repository'ler ile)
//  5. HTTP router'ı kur (handlers.NewMux)
//  6. CORS yapılandır
//  7. HTTP Server'ı başlat
//  8. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/dischord/config"
	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/handlers"
	"github.com/akinalp/dischord/repository"
	"github.com/akinalp/dischord/services"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] dischord server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to open embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	friendRepo := repository.NewSQLiteFriendshipRepo(db.Conn)
	serverRepo := repository.NewSQLiteServerRepo(db.Conn)
	postRepo := repository.NewSQLitePostRepo(db.Conn)
	voteRepo := repository.NewSQLiteVoteRepo(db.Conn)
	messageRepo := repository.NewSQLiteMessageRepo(db.Conn)

	// ─── 4. Service Layer ───
	userService := services.NewUserService(userRepo, friendRepo)
	serverService := services.NewServerService(db.Conn, serverRepo, userRepo)
	postService := services.NewPostService(postRepo, voteRepo, serverRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, serverRepo, userRepo)

	// ─── 5. HTTP Router ───
	mux := handlers.NewMux(userService, serverService, postService, messageService)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"dischord"}`)
	})

	// ─── 6. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 7. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 8. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Yeni request kabul etmeyi durdur, mevcut request'lerin bitmesini bekle.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
