package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/repository"
	"fincalc/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	growthHistory := repository.NewGrowthHistoryMemory()
	loanHistory := repository.NewLoanHistoryMemory()

	growthService := service.NewGrowthService(growthHistory, cache)
	growthHandler := httpLayer.NewGrowthHandler(growthService)

	loanService := service.NewLoanService(loanHistory, cache)
	loanHandler := httpLayer.NewLoanHandler(loanService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	route := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RequestIDMiddleware(
			httpLayer.RateLimitMiddleware(rateLimiter, h),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/growth/calculate", route(growthHandler.CalculateGrowth))
	mux.Handle("/growth/contributions", route(growthHandler.CalculateContributions))
	mux.Handle("/loan/payment", route(loanHandler.CalculatePayment))
	mux.Handle("/loan/amortization", route(loanHandler.CalculateAmortization))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("FinCalc API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
