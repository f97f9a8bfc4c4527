package engine

import (
	"context"

	"github.com/osse101/CokeFamer_Go/internal/calendar"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/economy"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/quest"
)

// AbsoluteMinutes is the monotonic clock machines are timed against.
func (e *Engine) AbsoluteMinutes() int {
	return calendar.AbsoluteMinutes(e.day, e.minutes)
}

// AdvanceMinutes moves the clock forward by n minutes and resolves finished
// machines. Reaching the day end passes the player out into the next morning.
// It reports whether a day rollover happened.
func (e *Engine) AdvanceMinutes(n int) bool {
	if n > 0 {
		e.minutes += n
	}
	e.objects.UpdateMachines(e.AbsoluteMinutes())
	if e.minutes >= e.tuning.DayEndMinutes {
		e.SleepNextDay()
		return true
	}
	return false
}

// SleepNextDay ends the day and runs the rollover pipeline.
func (e *Engine) SleepNextDay() domain.SleepResult {
	e.field.GrowWatered()
	e.field.ClearWatering()
	e.objects.GrowTrees()

	prevSeason := calendar.SeasonOf(e.day)
	e.day++
	season := calendar.SeasonOf(e.day)

	lost := 0
	if season != prevSeason {
		lost = e.field.KillOutOfSeason(season)
	}

	weather := calendar.WeatherForDay(e.day)
	if weather == domain.WeatherRain {
		for _, c := range e.field.TilledCoords() {
			if !e.objects.Occupied(c) {
				e.field.WaterAt(c)
			}
		}
	}
	for _, c := range e.objects.SprinklerTargets() {
		e.field.WaterAt(c)
	}

	e.quest = quest.Generate(e.day)

	var res domain.SleepResult
	if _, bin, ok := e.objects.ShippingBin(); ok {
		res.ShippedGold, res.ItemsSold = economy.SellAll(e.content, bin.Slots)
		e.player.Gold += res.ShippedGold
	}

	e.minutes = e.tuning.DayStartMinutes
	e.player.Energy = e.tuning.EnergyMax
	e.objects.UpdateMachines(e.AbsoluteMinutes())

	e.log.Info(LogMsgDayEnded,
		"day", e.day,
		"weather", weather,
		"shipped_gold", res.ShippedGold,
		"items_sold", res.ItemsSold,
		"crops_lost", lost)
	e.publish(event.DayEnded, event.DayEndedPayloadV1{
		Day:         e.day,
		Weather:     string(weather),
		ShippedGold: res.ShippedGold,
		ItemsSold:   res.ItemsSold,
		CropsLost:   lost,
	})

	if e.store != nil {
		if err := e.SaveToStorage(context.Background(), e.slot); err != nil {
			e.log.Warn(LogMsgAutosaveFailed, "error", err)
		}
	}
	return res
}
