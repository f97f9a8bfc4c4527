package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CokeFamer_Go/internal/logger"
)

// URL parameter names
const (
	ParamSlot      = "slot"
	ParamAction    = "action"
	ParamContainer = "container"
	ParamOp        = "op"
	ParamNpc       = "npc"
)

func loggerFor(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req TradeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := loggerFor(r)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// slotParam reads the {slot} URL parameter. Range checks happen in the
// session layer so every entry point reports them the same way.
func slotParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(chi.URLParam(r, ParamSlot))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSlotParam)
		return 0, false
	}
	return slot, true
}

// intQueryParam reads a required integer query parameter.
// If ok is false the response has already been written.
func intQueryParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}
