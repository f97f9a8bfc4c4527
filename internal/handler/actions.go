package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
)

// ActionRequest targets a tile. Crop, Kind and Item are read only by the
// actions that need them.
type ActionRequest struct {
	X    int    `json:"x" validate:"min=-4096,max=4096"`
	Y    int    `json:"y" validate:"min=-4096,max=4096"`
	Crop string `json:"crop,omitempty" validate:"omitempty,gameid"`
	Kind string `json:"kind,omitempty" validate:"omitempty,gameid"`
	Item string `json:"item,omitempty" validate:"omitempty,gameid"`
}

type tileAction func(e *engine.Engine, req ActionRequest) interface{}

func okResult(ok bool) domain.Result {
	if ok {
		return domain.Ok()
	}
	return domain.Result{}
}

func boolAction(fn func(e *engine.Engine, x, y int) bool) tileAction {
	return func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, okResult(fn(e, req.X, req.Y)))
	}
}

// tileActions maps the {action} route parameter to an engine operation
var tileActions = map[string]tileAction{
	"hoe":           boolAction((*engine.Engine).Hoe),
	"water":         boolAction((*engine.Engine).Water),
	"harvest":       boolAction((*engine.Engine).Harvest),
	"chop":          boolAction((*engine.Engine).Chop),
	"mine":          boolAction((*engine.Engine).Mine),
	"scythe":        boolAction((*engine.Engine).Scythe),
	"plant_tree":    boolAction((*engine.Engine).PlantTree),
	"place_weed":    boolAction((*engine.Engine).PlaceWeed),
	"place_chest":   boolAction((*engine.Engine).PlaceChest),
	"place_jar":     boolAction((*engine.Engine).PlacePreservesJar),
	"pickup_object": boolAction((*engine.Engine).PickupSimpleObject),
	"plant": func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, okResult(e.Plant(req.X, req.Y, domain.CropID(req.Crop))))
	},
	"place_resource": func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, okResult(e.PlaceResource(req.X, req.Y, domain.ObjectKind(req.Kind))))
	},
	"place_object": func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, okResult(e.PlaceSimpleObject(req.X, req.Y, domain.ObjectKind(req.Kind))))
	},
	"pickup_chest": func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, e.PickupChestIfEmpty(req.X, req.Y))
	},
	"pickup_jar": func(e *engine.Engine, req ActionRequest) interface{} {
		return withClock(e, e.PickupPreservesJarIfIdle(req.X, req.Y))
	},
	"interact_jar": func(e *engine.Engine, req ActionRequest) interface{} {
		return e.InteractPreservesJar(req.X, req.Y, domain.ItemID(req.Item))
	},
}

// HandleAction runs one tile action. Rejections are reported in the body
// with status 200; only an unknown action is an HTTP error.
func (h *GameHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamAction)
	act, ok := tileActions[name]
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownAction, name))
		return
	}
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, name); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		return act(e, req), nil
	})
}

// AdvanceRequest moves the clock forward.
type AdvanceRequest struct {
	Minutes int `json:"minutes" validate:"min=1,max=1440"`
}

// AdvanceResponse reports the clock after advancing.
type AdvanceResponse struct {
	RolledOver bool            `json:"rolledOver"`
	Calendar   domain.Calendar `json:"calendar"`
}

// HandleAdvance advances the clock, sleeping when the day runs out
func (h *GameHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "advance"); err != nil {
		return
	}
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		rolled := e.AdvanceMinutes(req.Minutes)
		return AdvanceResponse{RolledOver: rolled, Calendar: e.GetCalendar()}, nil
	})
}

// SleepResponse reports the overnight sale and the new day.
type SleepResponse struct {
	domain.SleepResult
	Calendar domain.Calendar `json:"calendar"`
}

// HandleSleep ends the day
func (h *GameHandler) HandleSleep(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(_ context.Context, e *engine.Engine) (interface{}, error) {
		res := e.SleepNextDay()
		return SleepResponse{SleepResult: res, Calendar: e.GetCalendar()}, nil
	})
}
