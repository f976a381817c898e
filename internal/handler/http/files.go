package http

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pkruglov/notesync/internal/devstore"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/utils"
)

// maxObjectSize bounds a single uploaded object.
const maxObjectSize = 1 << 20

type fileInfoResponse struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

type fileListingResponse struct {
	Files       []fileInfoResponse `json:"files"`
	ChangeToken string             `json:"change_token"`
}

// listFiles handles GET /api/files?scope=<kind>&since=<cursor>.
func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	files, changeToken := h.store.List(account, query.Get("scope"), query.Get("since"))

	listing := fileListingResponse{
		Files:       make([]fileInfoResponse, 0, len(files)),
		ChangeToken: changeToken,
	}
	for _, file := range files {
		listing.Files = append(listing.Files, toFileInfoResponse(file))
	}

	if _, err := utils.WriteJSON(w, listing, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing file listing")
	}
}

// readFile handles GET /api/files/{id}.
func (h *Handler) readFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	data, _, err := h.store.Read(account, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, devstore.ErrObjectNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error reading object")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Err(err).Msg("error writing object body")
	}
}

// writeFile handles PUT /api/files/{name}. The name path segment arrives
// percent-encoded so that object names can contain slashes.
func (h *Handler) writeFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		http.Error(w, "invalid object name", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxObjectSize))
	if err != nil {
		log.Err(err).Msg("error reading upload body")
		http.Error(w, "error reading body", http.StatusBadRequest)
		return
	}

	info := h.store.Write(account, name, data)

	if _, err := utils.WriteJSON(w, toFileInfoResponse(info), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing upload response")
	}
}

func toFileInfoResponse(file devstore.FileRecord) fileInfoResponse {
	return fileInfoResponse{Name: file.Name, ID: file.ID, Version: file.Version}
}
