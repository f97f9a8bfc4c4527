package domain

// Season is one quarter of the in-game year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Weather for a single day.
type Weather string

const (
	WeatherSunny Weather = "sunny"
	WeatherRain  Weather = "rain"
)

// Calendar is the derived date view for a day number.
type Calendar struct {
	Day         int     `json:"day"`
	Minutes     int     `json:"minutes"`
	Season      Season  `json:"season"`
	DayOfSeason int     `json:"dayOfSeason"`
	Year        int     `json:"year"`
	Weather     Weather `json:"weather"`
}
