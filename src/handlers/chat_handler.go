package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fincoach-server/src/finance"
	"fincoach-server/src/llm"
)

const coachPersona = `You are a helpful personal finance coach assistant. You help users manage their budget, track expenses, and give financial advice.
Be friendly, encouraging, and provide practical tips. Keep responses concise (2-3 sentences max unless asked for details).
You can analyze spending patterns and suggest ways to save money.`

// Only the trailing window of the conversation is forwarded upstream.
const maxHistoryMessages = 10

// Upstream failures surface as this single message; error detail stays
// in the logs.
const chatFallbackMessage = "Sorry, I encountered an error. Please try again."

func ChatMessage(pool *pgxpool.Pool, client llm.Client, maxTokens int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Message             string        `json:"message"`
			ConversationHistory []llm.Message `json:"conversationHistory"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode chat request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		user, err := getUserCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user for chat - user_id: %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		transactions, err := listTransactionsCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for chat - user_id: %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		summary, err := finance.Summarize(user.Salary, transactions)
		if err != nil {
			log.Printf("ERROR: Data integrity error in chat context - user_id: %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		pace := finance.ComputePace(summary.TotalIncome, summary.TotalExpenses, time.Now())
		contextBlock := finance.CoachContext(user.Currency, summary, pace)

		history := req.ConversationHistory
		if len(history) > maxHistoryMessages {
			history = history[len(history)-maxHistoryMessages:]
		}

		reply, err := client.Generate(r.Context(), llm.Request{
			SystemPersona: coachPersona,
			ContextBlock:  contextBlock,
			History:       history,
			UserMessage:   req.Message,
			MaxTokens:     maxTokens,
		})
		if err != nil {
			log.Printf("ERROR: Text generation failed for user %d: %v", userID, err)
			http.Error(w, chatFallbackMessage, http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Message string           `json:"message"`
			Context financialContext `json:"context"`
		}{
			Message: reply,
			Context: newFinancialContext(summary, pace, len(transactions)),
		})
	}
}
