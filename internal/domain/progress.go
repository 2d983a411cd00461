package domain

type Streaks struct {
	Gym        int `json:"gym"`
	Cardio     int `json:"cardio"`
	DetoxWater int `json:"detoxWater"`
	Grooming   int `json:"grooming"`
}

// Progress is a best-effort aggregate. It is recomputed and overwritten, never
// updated transactionally with the daily records it summarizes.
type Progress struct {
	CurrentDay     int     `json:"currentDay"`
	StartDate      string  `json:"startDate"`
	TotalDays      int     `json:"totalDays"`
	Streaks        Streaks `json:"streaks"`
	CompletionRate int     `json:"completionRate"`
	WaterDrank     int     `json:"waterDrank"`
	WaterSkipped   int     `json:"waterSkipped"`
}
