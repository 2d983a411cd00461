package usecase

import (
	"strings"
	"time"

	"github.com/fardannozami/habit-gateway/internal/catalog"
)

const CoachGreeting = "Hey! I'm your Alpha Male AI coach. I'm here to motivate you, answer questions, and help you stay disciplined. What's on your mind?"

type coachRule struct {
	keywords []string
	reply    string
}

// First matching rule wins.
var coachRules = []coachRule{
	{[]string{"motivat", "encourag"}, "Remember: Discipline is choosing between what you want now and what you want most. Every day you stick to your routine, you're building an unbreakable version of yourself. Keep going! 💪"},
	{[]string{"tired", "hard"}, "The pain of discipline is nothing like the pain of disappointment. You're stronger than you think. Push through. This is where champions are made. 🐺"},
	{[]string{"workout", "gym"}, "The only bad workout is the one that didn't happen. Get in there and dominate. Your future self is watching. Make him proud! 🔥"},
	{[]string{"diet", "food"}, "Eat like a man with purpose, not like someone passing time. Your body is a temple - fuel it right. Protein, vegetables, discipline. That's the formula. 🥗"},
	{[]string{"goal", "dream"}, "Your future is created by what you do today, not tomorrow. Every action you take right now is building the man you want to become. Stay focused. Stay disciplined. 🎯"},
}

const coachDefault = "I hear you. Remember: You don't become a better version of yourself. You bury the old version. Keep pushing forward, warrior. Your silence becomes your aura. 🐺"

// CoachUsecase is a keyword-driven motivational chatbot.
type CoachUsecase struct {
	catalog *catalog.Catalog
}

func NewCoachUsecase(cat *catalog.Catalog) *CoachUsecase {
	return &CoachUsecase{catalog: cat}
}

func (uc *CoachUsecase) Reply(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return CoachGreeting
	}
	for _, rule := range coachRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return coachDefault
}

func (uc *CoachUsecase) QuoteOfTheDay(now time.Time) string {
	return uc.catalog.QuoteForDate(now)
}
