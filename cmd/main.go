package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mealdb/mealdb-gobackend/internal/auth"
	"github.com/mealdb/mealdb-gobackend/internal/config"
	"github.com/mealdb/mealdb-gobackend/internal/db"
	"github.com/mealdb/mealdb-gobackend/internal/handlers"
	"github.com/mealdb/mealdb-gobackend/internal/middleware"
	"github.com/mealdb/mealdb-gobackend/internal/services"
	"github.com/mealdb/mealdb-gobackend/pkg/logging"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Connect to MongoDB. A failed ping is logged and the server starts
	// anyway; the driver reconnects lazily once the store is reachable.
	client, err := db.Connect(context.Background(), cfg.URI())
	if err != nil {
		slog.Error("failed to create MongoDB client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(context.Background(), client); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	if err := db.Ping(context.Background(), client); err != nil {
		slog.Warn("MongoDB ping failed, serving anyway", "error", err)
	} else {
		slog.Info("connected to MongoDB")
	}

	database := client.Database("MealDB2025")

	// Initialize services and handlers
	tokenManager := auth.NewManager(cfg.AccessTokenSecret, auth.TokenTTL)
	tokenHandler := handlers.NewTokenHandler(tokenManager)

	userService := services.NewUserService(database)
	userHandler := handlers.NewUserHandler(userService)

	mealService := services.NewMealService(database)
	mealHandler := handlers.NewMealHandler(mealService)

	bazarService := services.NewBazarService(database)
	bazarHandler := handlers.NewBazarHandler(bazarService)

	routineService := services.NewRoutineService(database)
	routineHandler := handlers.NewRoutineHandler(routineService)

	depositService := services.NewDepositService(database)
	depositHandler := handlers.NewDepositHandler(depositService)

	rentService := services.NewRentService(database)
	rentHandler := handlers.NewRentHandler(rentService)

	noticeService := services.NewNoticeService(database)
	noticeHandler := handlers.NewNoticeHandler(noticeService)

	requireAuth := middleware.RequireAuth(tokenManager)
	requireAdmin := middleware.RequireAdmin(userService)

	// Set up router. Metrics runs via Use because it needs the matched
	// route; logging and CORS wrap the router itself so they also cover
	// preflight OPTIONS requests mux would otherwise answer bare.
	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("MealDB is running"))
	}).Methods("GET", "HEAD")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.HandleFunc("/jwt", tokenHandler.Issue).Methods("POST")

	// Users. /users2 is a legacy alias with identical behavior.
	router.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	router.HandleFunc("/users2", userHandler.GetUsers).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users/admin/{email}", userHandler.CheckAdmin).Methods("GET")
	router.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods("PATCH")
	router.Handle("/users/{id}",
		requireAuth(requireAdmin(http.HandlerFunc(userHandler.DeleteUser))),
	).Methods("DELETE")

	// Meals. /meals2 is a legacy alias with identical behavior; the
	// delete-by-month route must be registered before the {id} routes.
	router.HandleFunc("/meals2/delete-by-month", mealHandler.DeleteByMonth).Methods("DELETE")
	for _, base := range []string{"/meals", "/meals2"} {
		router.HandleFunc(base, mealHandler.CreateMeal).Methods("POST")
		router.HandleFunc(base, mealHandler.GetMeals).Methods("GET")
		router.HandleFunc(base+"/{id}", mealHandler.GetMeal).Methods("GET")
		router.HandleFunc(base+"/{id}", mealHandler.UpdateMeal).Methods("PUT")
		router.HandleFunc(base+"/{id}", mealHandler.DeleteMeal).Methods("DELETE")
	}

	// Bazar (shared purchases)
	router.HandleFunc("/bazar", bazarHandler.CreateBazar).Methods("POST")
	router.HandleFunc("/bazar", bazarHandler.GetBazars).Methods("GET")
	router.HandleFunc("/bazar/{email}", bazarHandler.GetBazarsByEmail).Methods("GET")
	router.HandleFunc("/bazar/{id}", bazarHandler.DeleteBazar).Methods("DELETE")

	// Routine
	router.HandleFunc("/routine", routineHandler.CreateRoutine).Methods("POST")
	router.HandleFunc("/routine", routineHandler.GetRoutines).Methods("GET")
	router.HandleFunc("/routine/{id}", routineHandler.DeleteRoutine).Methods("DELETE")

	// Deposits
	router.HandleFunc("/amount", depositHandler.CreateDeposit).Methods("POST")
	router.HandleFunc("/amount", depositHandler.GetDeposits).Methods("GET")
	router.HandleFunc("/amount/{id}", depositHandler.DeleteDeposit).Methods("DELETE")

	// Rent
	router.HandleFunc("/basaBara", rentHandler.CreateRent).Methods("POST")
	router.HandleFunc("/basaBara", rentHandler.GetRents).Methods("GET")
	router.HandleFunc("/rentAmount", rentHandler.GetRents).Methods("GET")
	router.HandleFunc("/basaBara/{id}", rentHandler.DeleteRent).Methods("DELETE")

	// Bill variants share one handler type over three collections.
	bills := map[string]string{
		"/room-rents":    "roomRents",
		"/khala-bills":   "khalaBills",
		"/current-bills": "currentBills",
	}
	for path, collection := range bills {
		billHandler := handlers.NewBillHandler(services.NewBillService(database, collection))
		router.HandleFunc(path, billHandler.CreateBill).Methods("POST")
		router.HandleFunc(path, billHandler.GetBills).Methods("GET")
		router.HandleFunc(path+"/{id}", billHandler.DeleteBill).Methods("DELETE")
	}

	// Notices
	router.HandleFunc("/notices", noticeHandler.CreateNotice).Methods("POST")
	router.HandleFunc("/notices", noticeHandler.GetNotices).Methods("GET")
	router.HandleFunc("/notices/{id}", noticeHandler.DeleteNotice).Methods("DELETE")

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      middleware.Logging(middleware.CORS(router)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	slog.Info("MealDB is running", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
