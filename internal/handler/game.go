package handler

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
	"github.com/osse101/CokeFamer_Go/internal/farm"
	"github.com/osse101/CokeFamer_Go/internal/save"
	"github.com/osse101/CokeFamer_Go/internal/session"
)

// Sessions runs work against the engine of one save slot.
// *session.Manager satisfies it.
type Sessions interface {
	With(ctx context.Context, slot int, fn func(*engine.Engine) error) error
	Slots(ctx context.Context) ([]session.SlotInfo, error)
	Delete(ctx context.Context, slot int) error
}

// GameHandler exposes engine operations over HTTP, one engine per slot.
type GameHandler struct {
	sessions Sessions
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessions Sessions) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// run parses the slot, hands fn the slot's engine and writes fn's payload
// as JSON. Errors from fn are mapped to status codes.
func (h *GameHandler) run(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, e *engine.Engine) (interface{}, error)) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	var payload interface{}
	err := h.sessions.With(ctx, slot, func(e *engine.Engine) error {
		var err error
		payload, err = fn(ctx, e)
		return err
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

// summaryLanguages are the locales the HUD summary is formatted for
var summaryLanguages = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
})

func requestLanguage(r *http.Request) language.Tag {
	tag, _ := language.MatchStrings(summaryLanguages, r.Header.Get("Accept-Language"))
	return tag
}

// StateResponse is the player-facing snapshot of a slot.
type StateResponse struct {
	Slot      int             `json:"slot"`
	Calendar  domain.Calendar `json:"calendar"`
	Energy    int             `json:"energy"`
	EnergyMax int             `json:"energyMax"`
	Gold      int             `json:"gold"`
	Inventory domain.Slots    `json:"inventory"`
	Quest     domain.Quest    `json:"quest"`
	Summary   string          `json:"summary"`
}

func stateOf(e *engine.Engine, lang language.Tag) StateResponse {
	return StateResponse{
		Slot:      e.Slot(),
		Calendar:  e.GetCalendar(),
		Energy:    e.Energy(),
		EnergyMax: e.EnergyMax(),
		Gold:      e.Gold(),
		Inventory: e.GetInventorySlots(),
		Quest:     e.GetQuest(),
		Summary:   e.Summary(lang),
	}
}

// ObjectView is a placed object in its save encoding.
type ObjectView struct {
	X      int              `json:"tx"`
	Y      int              `json:"ty"`
	Object save.ObjectState `json:"object"`
}

// HandleListSlots lists every save slot
func (h *GameHandler) HandleListSlots(w http.ResponseWriter, r *http.Request) {
	infos, err := h.sessions.Slots(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, infos)
}

// HandleGetState returns the calendar, purse, pack and HUD summary
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return stateOf(e, lang), nil
	})
}

// HandleGetTiles returns every farmed tile
func (h *GameHandler) HandleGetTiles(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		tiles := e.GetAllTiles()
		if tiles == nil {
			tiles = []farm.TileEntry{}
		}
		return tiles, nil
	})
}

// HandleGetObjects returns every placed object
func (h *GameHandler) HandleGetObjects(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		entries := e.GetAllObjects()
		out := make([]ObjectView, 0, len(entries))
		for _, en := range entries {
			out = append(out, ObjectView{X: en.Coord.X, Y: en.Coord.Y, Object: save.EncodeObject(en.Object)})
		}
		return out, nil
	})
}
