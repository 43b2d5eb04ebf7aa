package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"solareco/config"
	httpLayer "solareco/http"
	"solareco/model"
	"solareco/notify"
	"solareco/repository"
	"solareco/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zap.L().Sync()

	predictor, err := model.Load(cfg.Model.Path)
	if err != nil {
		zap.L().Fatal("failed to load efficiency model", zap.String("path", cfg.Model.Path), zap.Error(err))
	}
	zap.L().Info("efficiency model loaded",
		zap.String("path", cfg.Model.Path),
		zap.Int("features", len(predictor.FeatureColumns())),
	)

	var sessions repository.SessionStore
	if cfg.Redis.Addr != "" {
		sessions = repository.NewRedisSessionStore(cfg.Redis.Addr)
		zap.L().Info("using redis session store", zap.String("addr", cfg.Redis.Addr))
	} else {
		sessions = repository.NewMemorySessionStore()
		zap.L().Warn("redis address not configured, using in-process session store")
	}

	bookingRepo := repository.NewFileBookingRepository(cfg.Booking.LogPath)
	mailer := notify.NewSMTPEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	dialer := notify.NewTwilioDialer(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)

	recommendationService := service.NewRecommendationService(predictor, service.SystemRand())
	recommendationHandler := httpLayer.NewRecommendationHandler(recommendationService)

	efficiencyService := service.NewEfficiencyService(predictor)
	efficiencyHandler := httpLayer.NewEfficiencyHandler(efficiencyService)

	bookingService := service.NewBookingService(bookingRepo, mailer, dialer)
	bookingHandler := httpLayer.NewBookingHandler(bookingService)

	otpService := service.NewOTPService(sessions, mailer)
	otpHandler := httpLayer.NewOTPHandler(otpService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.Handle("/recommendation", http.HandlerFunc(recommendationHandler.Recommend))
	mux.Handle("/efficiency", http.HandlerFunc(efficiencyHandler.Estimate))
	mux.Handle(
		"/book",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(bookingHandler.Book),
		),
	)
	mux.Handle(
		"/send-otp",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(otpHandler.SendOTP),
		),
	)
	mux.Handle(
		"/verify-otp",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(otpHandler.VerifyOTP),
		),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpLayer.SessionMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		zap.L().Error("error starting server", zap.Error(err))
		return
	case <-quit:
		zap.L().Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("error during server shutdown", zap.Error(err))
	}

	zap.L().Info("server exited")
}
