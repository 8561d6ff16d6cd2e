package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcaralp/esde-steam-manager/internal/catalog"
	"github.com/mcaralp/esde-steam-manager/internal/folders"
	"github.com/mcaralp/esde-steam-manager/internal/steam"
)

// HandleFolders serves GET /api/folders (list) and POST /api/folders
// (register a folder).
func (h *Handler) HandleFolders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.svc.ListFolders())
	case "POST":
		var req struct {
			Path string `json:"path"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		added, err := h.svc.AddFolder(req.Path)
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, folders.ErrNoSelection) {
				code = http.StatusBadRequest
			}
			h.writeError(w, err.Error(), code)
			return
		}
		h.writeJSON(w, map[string]string{"path": added})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCatalog serves GET /api/catalog?folder= (list entries) and
// POST /api/catalog (commit entries).
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		folder := r.URL.Query().Get("folder")
		if folder == "" {
			h.writeError(w, "Missing folder parameter", http.StatusBadRequest)
			return
		}
		entries, err := h.svc.ListCatalog(folder)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.writeJSON(w, entries)
	case "POST":
		var req struct {
			Folder  string          `json:"folder"`
			Entries []catalog.Entry `json:"entries"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Folder == "" {
			h.writeError(w, "Missing folder", http.StatusBadRequest)
			return
		}
		if err := h.svc.CommitCatalog(r.Context(), req.Folder, req.Entries); err != nil {
			h.writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.writeJSON(w, map[string]string{"status": "ok"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSearch serves GET /api/search?name=.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeError(w, "Missing name parameter", http.StatusBadRequest)
		return
	}

	results, err := h.svc.SearchRemote(r.Context(), name)
	if err != nil {
		if errors.Is(err, steam.ErrNoResults) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.writeJSON(w, results)
}

// HandleAppDetail serves GET /api/apps/{id}?locale=.
func (h *Handler) HandleAppDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	appID, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/apps/"))
	if err != nil {
		h.writeError(w, "Invalid app id", http.StatusBadRequest)
		return
	}

	details, reviews, err := h.svc.RemoteDetails(r.Context(), appID, r.URL.Query().Get("locale"))
	if err != nil {
		if errors.Is(err, steam.ErrUnknownApp) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.writeJSON(w, map[string]interface{}{
		"details": details,
		"reviews": reviews,
	})
}
