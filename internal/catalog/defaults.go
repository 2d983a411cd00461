package catalog

import (
	"fmt"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		DailyTasks:    make([]domain.Task, len(dailyTasks)),
		CreativeTasks: make(map[string][]domain.Task, len(creativeTasks)),
		Workouts:      make([]domain.Workout, len(workouts)),
		Quotes:        append([]string(nil), quotes...),
	}
	copy(c.DailyTasks, dailyTasks)
	for day, tasks := range creativeTasks {
		c.CreativeTasks[day] = append([]domain.Task(nil), tasks...)
	}
	for i, w := range workouts {
		c.Workouts[i] = w.Copy()
	}
	return c
}

var dailyTasks = []domain.Task{
	{ID: "wake-up", Title: "Wake up, no snooze", Time: "06:30", Category: domain.CategoryMorning},
	{ID: "make-bed", Title: "Make your bed", Time: "06:35", Category: domain.CategoryMorning},
	{ID: "warm-water-lemon", Title: "Warm water with lemon", Time: "06:40", Category: domain.CategoryFood,
		Explanation: "One glass before anything else. Kickstarts digestion and hydration."},
	{ID: "floor-cleaning", Title: "Quick floor cleaning", Time: "06:45", Category: domain.CategoryMorning},
	{ID: "toilet-freshen", Title: "Toilet and freshen up", Time: "06:55", Category: domain.CategoryGrooming},
	{ID: "stretching", Title: "10 min stretching", Time: "07:05", Category: domain.CategoryMorning},
	{ID: "gym", Title: "Gym session", Time: "07:15", Category: domain.CategoryMorning,
		Explanation: "Follow today's plan in the workout tab. Log every set."},
	{ID: "cold-shower", Title: "Cold shower", Time: "08:30", Category: domain.CategoryGrooming},
	{ID: "morning-grooming", Title: "Morning grooming", Time: "08:40", Category: domain.CategoryGrooming,
		Explanation: "Face wash, moisturizer, sunscreen, beard and hair."},
	{ID: "breakfast", Title: "High-protein breakfast", Time: "08:50", Category: domain.CategoryFood},
	{ID: "morning-commute", Title: "Commute: podcast or audiobook", Time: "09:15", Category: domain.CategoryCommute, WeekdaysOnly: true},
	{ID: "office", Title: "Office: deep work first", Time: "10:00", Category: domain.CategoryOffice, WeekdaysOnly: true,
		Explanation: "Hardest task before lunch. Phone in the drawer."},
	{ID: "evening-commute", Title: "Commute: reflect, no scrolling", Time: "18:30", Category: domain.CategoryCommute, WeekdaysOnly: true},
	{ID: "cardio", Title: "Cardio 30 min", Time: "19:15", Category: domain.CategoryEvening},
	{ID: "dinner", Title: "Clean dinner", Time: "20:00", Category: domain.CategoryFood},
	{ID: "creative", Title: "Creative hour", Time: "20:45", Category: domain.CategoryEvening},
	{ID: "night-grooming", Title: "Night grooming", Time: "22:15", Category: domain.CategoryGrooming},
	{ID: "journal", Title: "Journal", Time: "22:30", Category: domain.CategoryBehavior},
	{ID: "sleep", Title: "Lights out", Time: "23:30", Category: domain.CategoryBehavior},
}

var creativeTasks = map[string][]domain.Task{
	"monday": {
		{ID: "guitar", Title: "Guitar practice", Time: "21:00", Category: domain.CategoryEvening},
		{ID: "review-goals", Title: "Review weekly goals", Time: "21:30", Category: domain.CategoryBehavior},
	},
	"tuesday": {
		{ID: "art", Title: "Sketching session", Time: "21:00", Category: domain.CategoryEvening},
	},
	"wednesday": {
		{ID: "photography", Title: "Photography walk or edit", Time: "21:00", Category: domain.CategoryEvening},
	},
	"thursday": {
		{ID: "videography", Title: "Shoot or edit a short video", Time: "21:00", Category: domain.CategoryEvening},
	},
	"friday": {
		{ID: "reading", Title: "Read 20 pages", Time: "21:00", Category: domain.CategoryEvening},
		{ID: "career-growth", Title: "Side project or course", Time: "21:30", Category: domain.CategoryOffice},
	},
	"saturday": {
		{ID: "saturday-morning-skill", Title: "Learn a new skill", Time: "10:00", Category: domain.CategoryMorning},
		{ID: "saturday-adventure", Title: "Go somewhere new", Time: "13:00", Category: domain.CategoryEvening},
		{ID: "saturday-creative", Title: "Long creative session", Time: "16:00", Category: domain.CategoryEvening},
		{ID: "saturday-social", Title: "Meet friends", Time: "19:00", Category: domain.CategoryBehavior},
	},
	"sunday": {
		{ID: "sunday-deep-grooming", Title: "Deep grooming", Time: "09:30", Category: domain.CategoryGrooming},
		{ID: "sunday-meal-prep", Title: "Meal prep for the week", Time: "11:00", Category: domain.CategoryFood},
		{ID: "sunday-light-activity", Title: "Light walk or mobility", Time: "16:00", Category: domain.CategoryMorning},
		{ID: "sunday-planning", Title: "Plan the week", Time: "18:00", Category: domain.CategoryBehavior},
		{ID: "sunday-reflection", Title: "Weekly reflection", Time: "20:00", Category: domain.CategoryBehavior},
		{ID: "sunday-evening-prep", Title: "Prepare bag and clothes", Time: "21:00", Category: domain.CategoryOffice},
	},
}

var workouts = []domain.Workout{
	{ID: "rest-mobility", Name: "Mobility & Recovery", Day: 0, Exercises: []domain.WorkoutExercise{
		{ID: "foam-roll", Name: "Foam rolling", Sets: 1, Reps: "10 min", MuscleGroup: "Full Body"},
		{ID: "hip-openers", Name: "Hip openers", Sets: 2, Reps: "60s", MuscleGroup: "Hips"},
	}},
	{ID: "push", Name: "Push Day", Day: 1, Exercises: []domain.WorkoutExercise{
		{ID: "bench-press", Name: "Bench press", Sets: 4, Reps: "6-8", MuscleGroup: "Chest"},
		{ID: "incline-db-press", Name: "Incline dumbbell press", Sets: 3, Reps: "8-10", MuscleGroup: "Chest"},
		{ID: "ohp", Name: "Overhead press", Sets: 3, Reps: "6-8", MuscleGroup: "Shoulders"},
		{ID: "lateral-raise", Name: "Lateral raise", Sets: 3, Reps: "12-15", MuscleGroup: "Shoulders"},
		{ID: "triceps-pushdown", Name: "Triceps pushdown", Sets: 3, Reps: "10-12", MuscleGroup: "Triceps"},
	}},
	{ID: "pull", Name: "Pull Day", Day: 2, Exercises: []domain.WorkoutExercise{
		{ID: "deadlift", Name: "Deadlift", Sets: 3, Reps: "5", MuscleGroup: "Back"},
		{ID: "pull-up", Name: "Pull-up", Sets: 4, Reps: "AMRAP", MuscleGroup: "Back"},
		{ID: "barbell-row", Name: "Barbell row", Sets: 3, Reps: "8", MuscleGroup: "Back"},
		{ID: "face-pull", Name: "Face pull", Sets: 3, Reps: "15", MuscleGroup: "Shoulders"},
		{ID: "biceps-curl", Name: "Biceps curl", Sets: 3, Reps: "10-12", MuscleGroup: "Biceps"},
	}},
	{ID: "legs", Name: "Leg Day", Day: 3, Exercises: []domain.WorkoutExercise{
		{ID: "squat", Name: "Back squat", Sets: 4, Reps: "6-8", MuscleGroup: "Legs"},
		{ID: "rdl", Name: "Romanian deadlift", Sets: 3, Reps: "8-10", MuscleGroup: "Hamstrings"},
		{ID: "lunges", Name: "Walking lunges", Sets: 3, Reps: "12", MuscleGroup: "Legs"},
		{ID: "calf-raise", Name: "Calf raise", Sets: 4, Reps: "15", MuscleGroup: "Calves"},
	}},
	{ID: "upper", Name: "Upper Body", Day: 4, Exercises: []domain.WorkoutExercise{
		{ID: "db-press", Name: "Dumbbell press", Sets: 3, Reps: "8-10", MuscleGroup: "Chest"},
		{ID: "lat-pulldown", Name: "Lat pulldown", Sets: 3, Reps: "10", MuscleGroup: "Back"},
		{ID: "arnold-press", Name: "Arnold press", Sets: 3, Reps: "10", MuscleGroup: "Shoulders"},
		{ID: "dips", Name: "Dips", Sets: 3, Reps: "AMRAP", MuscleGroup: "Triceps"},
	}},
	{ID: "lower-core", Name: "Lower Body & Core", Day: 5, Exercises: []domain.WorkoutExercise{
		{ID: "front-squat", Name: "Front squat", Sets: 3, Reps: "8", MuscleGroup: "Legs"},
		{ID: "hip-thrust", Name: "Hip thrust", Sets: 3, Reps: "10", MuscleGroup: "Glutes"},
		{ID: "hanging-leg-raise", Name: "Hanging leg raise", Sets: 3, Reps: "12", MuscleGroup: "Core"},
		{ID: "plank", Name: "Plank", Sets: 3, Reps: "60s", MuscleGroup: "Core"},
	}},
	{ID: "conditioning", Name: "Conditioning", Day: 6, Exercises: []domain.WorkoutExercise{
		{ID: "kb-swing", Name: "Kettlebell swing", Sets: 5, Reps: "20", MuscleGroup: "Full Body"},
		{ID: "burpees", Name: "Burpees", Sets: 4, Reps: "15", MuscleGroup: "Full Body"},
		{ID: "farmer-carry", Name: "Farmer carry", Sets: 4, Reps: "40m", MuscleGroup: "Grip"},
	}},
}

var quotes = []string{
	"Your silence becomes your aura.",
	"A warrior sharpens his weapons on Sunday.",
	"Friday nights create future millionaires, not drunk people.",
	"You don't become a better version of yourself. You bury the old version.",
	"Discipline is choosing between what you want now and what you want most.",
	"The only bad workout is the one that didn't happen.",
	"Excellence is not a skill, it's an attitude.",
	"The pain of discipline is nothing like the pain of disappointment.",
	"Success is the sum of small efforts repeated day in and day out.",
	"The body achieves what the mind believes.",
	"Strength does not come from physical capacity. It comes from an indomitable will.",
	"The only way to do great work is to love what you do.",
	"Champions are made in the gym, not in the ring.",
	"Your future is created by what you do today, not tomorrow.",
	"The difference between who you are and who you want to be is what you do.",
	"Don't stop when you're tired. Stop when you're done.",
	"The only person you should try to be better than is the person you were yesterday.",
	"Hard work beats talent when talent doesn't work hard.",
	"Success isn't given. It's earned.",
	"The grind never stops.",
}

// MotivationMessage is the morning line for the given challenge day.
func MotivationMessage(day int) string {
	lines := []string{
		"Day %d - You're becoming unstoppable! 💪",
		"Day %d - Keep going, warrior! 🐺",
		"Day %d - Your future self is watching. Make him proud. 🔥",
		"Day %d - Discipline is choosing between what you want now and what you want most. ⚡",
	}
	if day < 0 {
		day = 0
	}
	return fmt.Sprintf(lines[day%len(lines)], day)
}
