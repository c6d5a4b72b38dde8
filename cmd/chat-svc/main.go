package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movieplus/internal/common"
	"movieplus/internal/dbmysql"
	"movieplus/internal/metrics"
	"movieplus/internal/wire"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	app, cleanup, err := wire.InitializeChatService()
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}
	defer cleanup()

	logger := app.Logger

	if err := dbmysql.AutoMigrate(app.DB); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
	logger.Info("database migration completed")

	metrics.Register()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	auth := common.AuthMiddleware([]byte(app.Config.Auth.JWTSecret))

	ws := router.PathPrefix("/ws").Subrouter()
	ws.Use(auth)
	ws.HandleFunc("", app.Manager.HandleWS).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth)

	chat := app.ChatHandler
	api.HandleFunc("/conversations", chat.ListConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations", chat.CreateConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}", chat.GetConversation).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", chat.ListMessages).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", chat.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}/read", chat.MarkConversationRead).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}/unread-count", chat.UnreadCount).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/participants", chat.AddParticipant).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}/participants/{userID}", chat.RemoveParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/messages/{id}", chat.EditMessage).Methods(http.MethodPut)
	api.HandleFunc("/messages/{id}", chat.DeleteMessage).Methods(http.MethodDelete)
	api.HandleFunc("/messages/{id}/read", chat.MarkMessageRead).Methods(http.MethodPost)
	api.HandleFunc("/messages/{id}/reactions", chat.SetReaction).Methods(http.MethodPost)
	api.HandleFunc("/messages/{id}/reactions", chat.ClearReaction).Methods(http.MethodDelete)

	devices := app.DeviceHandler
	api.HandleFunc("/devices", devices.RegisterToken).Methods(http.MethodPost)
	api.HandleFunc("/devices/{token}", devices.UnregisterToken).Methods(http.MethodDelete)
	api.HandleFunc("/presence/status", devices.OnlineStatus).Methods(http.MethodGet)

	addr := app.Config.Server.Host + ":" + app.Config.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("chat service listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down chat service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("chat service stopped")
}
