package domain

type JournalEntry struct {
	Date          string   `json:"date"`
	WhatWentWell  string   `json:"whatWentWell"`
	WhatToImprove string   `json:"whatToImprove"`
	Gratitude     []string `json:"gratitude"`
	TomorrowFocus string   `json:"tomorrowFocus"`
}
