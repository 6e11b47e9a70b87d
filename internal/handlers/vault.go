package handlers

import (
	"PassKeeper/internal/crypto"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VaultHandler обрабатывает CRUD записей хранилища.
type VaultHandler struct {
	VaultService *service.VaultService
	Logger       *zap.SugaredLogger
}

// NewVaultHandler создаёт хендлер vault
func NewVaultHandler(vaultService *service.VaultService, logger *zap.SugaredLogger) *VaultHandler {
	return &VaultHandler{VaultService: vaultService, Logger: logger}
}

type createEntryRequest struct {
	Title  string `json:"title"`
	Secret string `json:"secret"`
}

type updateEntryRequest struct {
	Secret string `json:"secret"`
}

// EntryDTO — запись в ответе списка. Секрет отдаётся шифртекстом,
// расшифровка — отдельная операция reveal.
type EntryDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Ciphertext []byte `json:"ciphertext"`
	IV         []byte `json:"iv"`
}

// Create создаёт зашифрованную запись
func (h *VaultHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	e, err := h.VaultService.Create(r.Context(), userID, req.Title, req.Secret)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			http.Error(w, "title and secret are required", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": e.ID})
}

// List возвращает все записи пользователя (без расшифровки)
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	entries, err := h.VaultService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryDTO{ID: e.ID, Title: e.Title, Ciphertext: e.Cipher, IV: e.IV})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(out)
}

// Update перешифровывает секрет записи
func (h *VaultHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.VaultService.Update(r.Context(), userID, id, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			http.Error(w, "secret is required", http.StatusBadRequest)
		case errors.Is(err, service.ErrEntryNotFound):
			http.Error(w, "entry not found", http.StatusNotFound)
		default:
			h.Logger.Errorw("Update: service error", "user_id", userID, "entry_id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
}

// Delete удаляет запись
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := h.VaultService.Delete(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete: service error", "user_id", userID, "entry_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
}

// Reveal расшифровывает одну запись по запросу
func (h *VaultHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	plain, err := h.VaultService.Reveal(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			http.Error(w, "entry not found", http.StatusNotFound)
		case errors.Is(err, crypto.ErrDecryptionFailed):
			http.Error(w, "decrypt failed", http.StatusBadRequest)
		default:
			h.Logger.Errorw("Reveal: service error", "user_id", userID, "entry_id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"plaintext": plain})
}
