package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CokeFamer_Go/internal/calendar"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/farm"
	"github.com/osse101/CokeFamer_Go/internal/objects"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

func (e *Engine) GetTile(x, y int) domain.TileState {
	return e.field.Get(domain.At(x, y))
}

func (e *Engine) GetAllTiles() []farm.TileEntry {
	return e.field.All()
}

// GetObject returns a copy of the object at (x, y).
func (e *Engine) GetObject(x, y int) (domain.PlacedObject, bool) {
	return e.objects.Get(domain.At(x, y))
}

func (e *Engine) GetAllObjects() []objects.Entry {
	return e.objects.All()
}

func (e *Engine) GetCalendar() domain.Calendar {
	return calendar.For(e.day, e.minutes)
}

func (e *Engine) CountItem(id domain.ItemID) int {
	return slots.Count(e.player.Inventory, id)
}

func (e *Engine) CanAddItem(id domain.ItemID, qty int) bool {
	return slots.CanAdd(e.content, e.player.Inventory, id, qty)
}

// GetInventorySlots returns a copy of the inventory.
func (e *Engine) GetInventorySlots() domain.Slots {
	return e.player.Inventory.Clone()
}

// Summary is the one-line HUD status, with numbers formatted for lang.
func (e *Engine) Summary(lang language.Tag) string {
	p := message.NewPrinter(lang)
	cal := e.GetCalendar()
	return p.Sprintf("%s %d, Year %d | %s | %s | %dg | Energy %d/%d",
		titleCase(string(cal.Season)), cal.DayOfSeason, cal.Year,
		ClockString(cal.Minutes),
		titleCase(string(cal.Weather)),
		e.player.Gold,
		e.player.Energy, e.tuning.EnergyMax)
}

// ClockString renders minutes of the day on a 12-hour clock. Minutes past
// midnight keep counting, so 1500 is 1:00 AM.
func ClockString(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
