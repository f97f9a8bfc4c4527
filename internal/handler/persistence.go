package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
)

// maxImportBytes bounds an imported save document
const maxImportBytes = 1 << 20

// LoadResponse reports whether a stored save was found.
type LoadResponse struct {
	Loaded bool `json:"loaded"`
	Day    int  `json:"day"`
}

// HandleSave writes the slot's engine to storage
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *engine.Engine) (interface{}, error) {
		if err := e.SaveToStorage(ctx, e.Slot()); err != nil {
			return nil, err
		}
		return SuccessResponse{Message: MsgGameSaved}, nil
	})
}

// HandleLoad replaces the slot's engine state with its stored save
func (h *GameHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *engine.Engine) (interface{}, error) {
		ok, err := e.LoadFromStorage(ctx, e.Slot())
		if err != nil {
			return nil, err
		}
		return LoadResponse{Loaded: ok, Day: e.Day()}, nil
	})
}

// HandleReset starts the slot over with a new game
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *engine.Engine) (interface{}, error) {
		if err := e.ResetToNewGame(ctx); err != nil {
			return nil, err
		}
		return SuccessResponse{Message: MsgGameReset}, nil
	})
}

// HandleExport returns the slot's save document as-is
func (h *GameHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	var text string
	var found bool
	err := h.sessions.With(r.Context(), slot, func(e *engine.Engine) error {
		var err error
		text, found, err = e.ExportSaveJSON(r.Context(), slot)
		return err
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrMsgNoSaveInSlot)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// HandleImport stores the request body as the slot's save. Rejected
// documents are reported through the result reason with status 200.
func (h *GameHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}
	h.run(w, r, func(ctx context.Context, e *engine.Engine) (interface{}, error) {
		res, err := e.ImportSaveJSON(ctx, e.Slot(), string(body))
		if err != nil {
			return nil, err
		}
		return res, nil
	})
}

// HandleDeleteSlot erases the slot's save and drops its engine
func (h *GameHandler) HandleDeleteSlot(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	if err := h.sessions.Delete(r.Context(), slot); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSlotDeleted})
}

// resultResponse flattens a gameplay Result with the clock after it.
type resultResponse struct {
	domain.Result
	Minutes int `json:"minutes"`
	Energy  int `json:"energy"`
	Gold    int `json:"gold"`
}

func withClock(e *engine.Engine, r domain.Result) resultResponse {
	return resultResponse{Result: r, Minutes: e.Minutes(), Energy: e.Energy(), Gold: e.Gold()}
}
