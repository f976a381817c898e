package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/utils"
)

// tokenDuration is how long a minted development token stays valid.
const tokenDuration = 24 * time.Hour

type mintTokenRequest struct {
	Account string `json:"account"`
}

type mintTokenResponse struct {
	Token string `json:"token"`
}

// mintToken handles POST /api/token. It issues a signed bearer token for
// the requested account. There is no password: the development store
// exists to exercise the sync engine, not to guard real data.
func (h *Handler) mintToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request mintTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.Account == "" {
		http.Error(w, "account is required", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, request.Account, tokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("error minting token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, mintTokenResponse{Token: token}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token response")
	}
}
