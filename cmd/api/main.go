package main

import (
	"log"
	"os"

	"github.com/RichardSimmons/receipt-processor-challenge/internal/auth"
	"github.com/RichardSimmons/receipt-processor-challenge/internal/receipt"
	"github.com/RichardSimmons/receipt-processor-challenge/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewInMemoryUserRepository()
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── RECEIPTS ─────────────────────────
	receiptRepo := receipt.NewInMemoryRepository()
	receiptService := receipt.NewService(receiptRepo)
	receiptHandler := receipt.NewHandler(receiptService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(authHandler, receiptHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
