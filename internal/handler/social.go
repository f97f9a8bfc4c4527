package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
)

// GiftRequest names the item handed to a villager. An empty item gives the
// most valued giftable item in the pack.
type GiftRequest struct {
	Item string `json:"item,omitempty" validate:"omitempty,gameid"`
}

// HandleGetQuest returns today's quest
func (h *GameHandler) HandleGetQuest(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return e.GetQuest(), nil
	})
}

// HandleCompleteQuest hands in today's quest
func (h *GameHandler) HandleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return withClock(e, e.CompleteQuest()), nil
	})
}

// HandleGetRelationships returns friendship with every villager
func (h *GameHandler) HandleGetRelationships(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return e.GetRelationships(), nil
	})
}

// HandleTalk talks to a villager once a day
func (h *GameHandler) HandleTalk(w http.ResponseWriter, r *http.Request) {
	npc := domain.NpcID(chi.URLParam(r, ParamNpc))
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return e.TalkToNpc(npc), nil
	})
}

// HandleGift gives a villager an item once a day
func (h *GameHandler) HandleGift(w http.ResponseWriter, r *http.Request) {
	npc := domain.NpcID(chi.URLParam(r, ParamNpc))
	var req GiftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "gift"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return e.GiftToNpc(npc, domain.ItemID(req.Item)), nil
	})
}
