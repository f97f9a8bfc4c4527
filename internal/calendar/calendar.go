// Package calendar maps absolute day numbers to dates and weather.
package calendar

import "github.com/osse101/CokeFamer_Go/internal/domain"

const (
	DaysPerSeason  = 28
	DaysPerYear    = DaysPerSeason * 4
	MinutesPerDay  = 24 * 60
	rainThreshold  = 0.2
	weatherSeedMul = 99991
	weatherSeedAdd = 1337
)

// Date is the calendar position of a day.
type Date struct {
	Season      domain.Season
	DayOfSeason int
	Year        int
}

// FromDay converts a 1-based day number. Days below 1 clamp to day 1.
func FromDay(day int) Date {
	idx := day - 1
	if idx < 0 {
		idx = 0
	}
	dayOfYear := idx % DaysPerYear
	return Date{
		Season:      domain.Seasons[dayOfYear/DaysPerSeason],
		DayOfSeason: dayOfYear%DaysPerSeason + 1,
		Year:        idx/DaysPerYear + 1,
	}
}

// SeasonOf is shorthand for FromDay(day).Season.
func SeasonOf(day int) domain.Season {
	return FromDay(day).Season
}

// WeatherForDay is a pure function of the day. Winter never rains.
func WeatherForDay(day int) domain.Weather {
	r := mulberry32(uint32(uint64(day)*weatherSeedMul + weatherSeedAdd))
	if SeasonOf(day) == domain.SeasonWinter {
		return domain.WeatherSunny
	}
	if r < rainThreshold {
		return domain.WeatherRain
	}
	return domain.WeatherSunny
}

// AbsoluteMinutes is a monotonic timestamp across days.
func AbsoluteMinutes(day, minutes int) int {
	return (day-1)*MinutesPerDay + minutes
}

// For builds the full calendar view for the given clock.
func For(day, minutes int) domain.Calendar {
	d := FromDay(day)
	return domain.Calendar{
		Day:         day,
		Minutes:     minutes,
		Season:      d.Season,
		DayOfSeason: d.DayOfSeason,
		Year:        d.Year,
		Weather:     WeatherForDay(day),
	}
}

// mulberry32 returns a single draw in [0,1) for the given seed.
func mulberry32(seed uint32) float64 {
	t := seed + 0x6d2b79f5
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}
