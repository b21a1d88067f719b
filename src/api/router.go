package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fincoach-server/src/config"
	"fincoach-server/src/handlers"
	"fincoach-server/src/llm"
	"fincoach-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, coach llm.Client, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(cfg.IsDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool))
		r.Post("/auth/login", handlers.Login(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/auth/profile", handlers.GetProfile(pool))
			r.Put("/auth/salary", handlers.UpdateSalary(pool))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Dashboard
			r.Get("/summary", handlers.GetSummary(pool))

			// Coach
			r.Post("/chat/message", handlers.ChatMessage(pool, coach, cfg.ChatMaxTokens))
		})

		// Admin routes
		r.With(middleware.JWTAuthMiddleware, middleware.AdminMiddleware).Group(func(r chi.Router) {
			r.Get("/admin/users", handlers.GetAllUsers(pool))
			r.Delete("/admin/user/{user_id}", handlers.AdminDeleteUser(pool))
			r.Post("/admin/cache/clear/{cache_name}", handlers.ClearCache())
		})
	})

	return r
}
