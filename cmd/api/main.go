package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mhorie/pos-backend/internal/modules/auth"
	"github.com/mhorie/pos-backend/internal/modules/health"
	"github.com/mhorie/pos-backend/internal/modules/operator"
	"github.com/mhorie/pos-backend/internal/modules/product"
	"github.com/mhorie/pos-backend/internal/modules/transaction"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Health & root ───────────────────────────────────────
	health.NewHandler(db).RegisterRoutes(router)

	// ── Product master ──────────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── Sale transactions ───────────────────────────────────
	transactionRepo := transaction.NewPostgresRepository(db)
	transactionService := transaction.NewService(transactionRepo)
	transaction.NewHandler(transactionService).RegisterRoutes(router)

	// ── Operator login ──────────────────────────────────────
	operatorRepo := operator.NewPostgresRepository(db)
	authService := auth.NewService(operatorRepo, []byte(os.Getenv("JWT_SECRET")))
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("POS API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
