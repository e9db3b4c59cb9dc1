package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type verificationCodeResponse struct {
	VerificationCode string `json:"verificationCode"`
}

func (s *RestServer) purchase(w http.ResponseWriter, r *http.Request) {
	buyerID := userIDFromContext(r.Context())
	postID := chi.URLParam(r, "postID")

	tx, err := s.transactions.Purchase(r.Context(), postID, buyerID)
	if err != nil {
		respondError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Purchase recorded", "postId", tx.PostID)
	writeJSON(w, http.StatusCreated, toTransactionJSON(tx))
}

func (s *RestServer) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.transactions.ListByParticipant(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	result := make([]transactionJSON, 0, len(txs))
	for _, tx := range txs {
		result = append(result, toTransactionJSON(tx))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *RestServer) verificationCode(w http.ResponseWriter, r *http.Request) {
	code, err := s.transactions.VerificationCode(r.Context(), chi.URLParam(r, "postID"), userIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verificationCodeResponse{VerificationCode: code})
}
