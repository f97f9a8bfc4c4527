package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
)

// TradeRequest names an item and how many to buy or craft.
type TradeRequest struct {
	Item string `json:"item" validate:"required,gameid"`
	Qty  int    `json:"qty" validate:"min=1,max=999"`
}

// EatRequest names the food to eat.
type EatRequest struct {
	Item string `json:"item" validate:"required,gameid"`
}

// SellRequest sells the whole stack in an inventory slot.
type SellRequest struct {
	Index int `json:"index" validate:"min=0,max=23"`
}

// SellResponse reports the gold earned.
type SellResponse struct {
	Gold int `json:"gold"`
	Sold int `json:"sold"`
}

// BinRequest is where to look for room when the farm has no shipping bin.
type BinRequest struct {
	X int `json:"x" validate:"min=-4096,max=4096"`
	Y int `json:"y" validate:"min=-4096,max=4096"`
}

// BinResponse is the shipping bin's position.
type BinResponse struct {
	OK bool `json:"ok"`
	X  int  `json:"tx"`
	Y  int  `json:"ty"`
}

// HandleBuy purchases from the shop
func (h *GameHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "buy"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return withClock(e, e.Buy(domain.ItemID(req.Item), req.Qty)), nil
	})
}

// HandleCraft crafts from the recipe book
func (h *GameHandler) HandleCraft(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "craft"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return withClock(e, e.Craft(domain.ItemID(req.Item), req.Qty)), nil
	})
}

// HandleEat restores energy from food
func (h *GameHandler) HandleEat(w http.ResponseWriter, r *http.Request) {
	var req EatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "eat"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return withClock(e, e.Eat(domain.ItemID(req.Item))), nil
	})
}

// HandleSell sells an inventory stack. Items without a sell price stay put.
func (h *GameHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "sell"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		held := e.InventoryPickup(req.Index)
		if held == nil {
			return SellResponse{}, nil
		}
		qty := held.Qty
		gold := e.SellStack(held)
		if gold == 0 {
			e.InventoryPlace(req.Index, held)
			return SellResponse{}, nil
		}
		return SellResponse{Gold: gold, Sold: qty}, nil
	})
}

// HandleEnsureShippingBin places the shipping bin if the farm lacks one
func (h *GameHandler) HandleEnsureShippingBin(w http.ResponseWriter, r *http.Request) {
	var req BinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "shipping_bin"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		c, ok := e.EnsureShippingBin(domain.At(req.X, req.Y))
		return BinResponse{OK: ok, X: c.X, Y: c.Y}, nil
	})
}

// HandleSellShippingBin sells the bin's contents now
func (h *GameHandler) HandleSellShippingBin(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return e.SellShippingBin(), nil
	})
}
