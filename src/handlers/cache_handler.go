package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fincoach-server/src/db"
)

func ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheName := chi.URLParam(r, "cache_name")

		switch cacheName {
		case "transactions":
			db.ClearAllTransactionCaches()
		case "users":
			db.ClearAllUserCaches()
		case "all":
			db.ClearAllTransactionCaches()
			db.ClearAllUserCaches()
		default:
			log.Printf("ERROR: Unknown cache name: %s", cacheName)
			http.Error(w, "unknown cache name", http.StatusBadRequest)
			return
		}

		log.Printf("INFO: Cleared cache: %s", cacheName)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "cache cleared",
		})
	}
}
