package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the game API on r. Every route below /slots/{slot} works on
// that slot's engine.
func (h *GameHandler) Routes(r chi.Router) {
	r.Route("/slots", func(r chi.Router) {
		r.Get("/", h.HandleListSlots)
		r.Route("/{slot}", func(r chi.Router) {
			r.Delete("/", h.HandleDeleteSlot)

			r.Get("/state", h.HandleGetState)
			r.Get("/tiles", h.HandleGetTiles)
			r.Get("/objects", h.HandleGetObjects)
			r.Get("/relationships", h.HandleGetRelationships)

			r.Post("/actions/{action}", h.HandleAction)
			r.Post("/clock/advance", h.HandleAdvance)
			r.Post("/sleep", h.HandleSleep)

			r.Post("/shop/buy", h.HandleBuy)
			r.Post("/shop/craft", h.HandleCraft)
			r.Post("/eat", h.HandleEat)
			r.Post("/sell", h.HandleSell)
			r.Post("/shipping-bin", h.HandleEnsureShippingBin)
			r.Post("/shipping-bin/sell", h.HandleSellShippingBin)

			r.Get("/quest", h.HandleGetQuest)
			r.Post("/quest/complete", h.HandleCompleteQuest)
			r.Post("/npcs/{npc}/talk", h.HandleTalk)
			r.Post("/npcs/{npc}/gift", h.HandleGift)

			r.Get("/containers/{container}", h.HandleGetContainer)
			r.Post("/containers/{container}/{op}", h.HandleSlotOp)

			r.Post("/save", h.HandleSave)
			r.Post("/load", h.HandleLoad)
			r.Post("/reset", h.HandleReset)
			r.Get("/export", h.HandleExport)
			r.Post("/import", h.HandleImport)
		})
	})
}
