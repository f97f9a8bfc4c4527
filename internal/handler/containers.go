package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
)

// Container route names
const (
	ContainerInventory = "inventory"
	ContainerChest     = "chest"
	ContainerShipping  = "shipping_bin"
)

// Slot operation route names
const (
	OpPickup   = "pickup"
	OpSplit    = "split"
	OpPlace    = "place"
	OpPlaceOne = "place_one"
)

// HeldStack is the stack carried on the cursor between slot operations.
type HeldStack struct {
	Item string `json:"itemId" validate:"required,gameid"`
	Qty  int    `json:"qty" validate:"min=1,max=9999"`
}

// SlotOpRequest addresses one slot of a container. X and Y locate a chest.
type SlotOpRequest struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Index int        `json:"index" validate:"min=0,max=23"`
	Held  *HeldStack `json:"held,omitempty"`
}

// HeldResponse is the stack left on the cursor after an operation.
type HeldResponse struct {
	Held *domain.ItemStack `json:"held"`
}

// ContainerResponse lists a container's slots.
type ContainerResponse struct {
	Container string       `json:"container"`
	Slots     domain.Slots `json:"slots"`
}

// slotOps bundles the four slot operations of one container.
type slotOps struct {
	pickup   func(i int) *domain.ItemStack
	split    func(i int) *domain.ItemStack
	place    func(i int, held *domain.ItemStack) *domain.ItemStack
	placeOne func(i int, held *domain.ItemStack) domain.PlaceOneResult
}

func opsFor(e *engine.Engine, container string, x, y int) (slotOps, bool) {
	switch container {
	case ContainerInventory:
		return slotOps{e.InventoryPickup, e.InventorySplitHalf, e.InventoryPlace, e.InventoryPlaceOne}, true
	case ContainerShipping:
		return slotOps{e.ShippingPickup, e.ShippingSplitHalf, e.ShippingPlace, e.ShippingPlaceOne}, true
	case ContainerChest:
		return slotOps{
			pickup:   func(i int) *domain.ItemStack { return e.ChestPickup(x, y, i) },
			split:    func(i int) *domain.ItemStack { return e.ChestSplitHalf(x, y, i) },
			place:    func(i int, held *domain.ItemStack) *domain.ItemStack { return e.ChestPlace(x, y, i, held) },
			placeOne: func(i int, held *domain.ItemStack) domain.PlaceOneResult { return e.ChestPlaceOne(x, y, i, held) },
		}, true
	}
	return slotOps{}, false
}

func knownContainer(name string) bool {
	return name == ContainerInventory || name == ContainerChest || name == ContainerShipping
}

// HandleGetContainer returns a container's slots. A chest needs x and y query
// parameters. A missing chest or bin yields 404.
func (h *GameHandler) HandleGetContainer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamContainer)
	if !knownContainer(name) {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownContainer, name))
		return
	}
	var x, y int
	if name == ContainerChest {
		var ok bool
		if x, ok = intQueryParam(w, r, "x"); !ok {
			return
		}
		if y, ok = intQueryParam(w, r, "y"); !ok {
			return
		}
	}
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	var (
		s     domain.Slots
		found bool
	)
	err := h.sessions.With(r.Context(), slot, func(e *engine.Engine) error {
		switch name {
		case ContainerInventory:
			s, found = e.GetInventorySlots(), true
		case ContainerChest:
			s, found = e.GetChestSlots(x, y)
		case ContainerShipping:
			s, found = e.GetShippingSlots()
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownContainer, name))
		return
	}
	respondJSON(w, http.StatusOK, ContainerResponse{Container: name, Slots: s})
}

// HandleSlotOp runs pickup, split, place or place_one on a container slot
func (h *GameHandler) HandleSlotOp(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamContainer)
	if !knownContainer(name) {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownContainer, name))
		return
	}
	op := chi.URLParam(r, ParamOp)
	switch op {
	case OpPickup, OpSplit, OpPlace, OpPlaceOne:
	default:
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownSlotOp, op))
		return
	}
	var req SlotOpRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}
	var held *domain.ItemStack
	if req.Held != nil {
		held = &domain.ItemStack{Item: domain.ItemID(req.Held.Item), Qty: req.Held.Qty}
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		ops, _ := opsFor(e, name, req.X, req.Y)
		switch op {
		case OpPickup:
			return HeldResponse{Held: ops.pickup(req.Index)}, nil
		case OpSplit:
			return HeldResponse{Held: ops.split(req.Index)}, nil
		case OpPlace:
			return HeldResponse{Held: ops.place(req.Index, held)}, nil
		default:
			return ops.placeOne(req.Index, held), nil
		}
	})
}
