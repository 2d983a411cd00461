package domain

import "errors"

var (
	ErrNoWorkoutToday  = errors.New("no workout planned for today")
	ErrUnknownExercise = errors.New("exercise not found in today's workout")
)

type SetLog struct {
	Set    int     `json:"set"`
	Reps   int     `json:"reps,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

type WorkoutExercise struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Sets          int      `json:"sets" yaml:"sets"`
	Reps          string   `json:"reps" yaml:"reps"`
	MuscleGroup   string   `json:"muscleGroup" yaml:"muscleGroup"`
	Completed     bool     `json:"completed" yaml:"-"`
	SetsCompleted []SetLog `json:"setsCompleted,omitempty" yaml:"-"`
}

type Workout struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Day       int               `json:"day" yaml:"day"` // 0 = Sunday
	Exercises []WorkoutExercise `json:"exercises" yaml:"exercises"`
}

// Copy returns a deep copy so per-date saves never touch catalog data.
func (w Workout) Copy() Workout {
	out := w
	out.Exercises = make([]WorkoutExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		out.Exercises[i] = ex
		out.Exercises[i].SetsCompleted = append([]SetLog(nil), ex.SetsCompleted...)
	}
	return out
}

func (w Workout) CompletedCount() int {
	n := 0
	for _, ex := range w.Exercises {
		if ex.Completed {
			n++
		}
	}
	return n
}

// DatedWorkout is the stored shape of workouts_<date>.
type DatedWorkout struct {
	Date    string  `json:"date"`
	Workout Workout `json:"workout"`
}
