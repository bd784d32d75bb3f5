package weather

import "time"

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Day struct {
	Timestamp int64       `json:"dt"`
	Weather   []Condition `json:"weather"`
}

func (day Day) Time() time.Time {
	return time.Unix(day.Timestamp, 0).UTC()
}

// Description is the first condition reported for the day.
func (day Day) Description() string {
	if len(day.Weather) == 0 {
		return "unknown"
	}
	return day.Weather[0].Description
}

type DailyForecastResponse struct {
	List []Day `json:"list"`
}
