package workout

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mazoezi/core"
)

// Workout types
const (
	TypePatternRecognition   = "pattern_recognition"
	TypeLogicalSequences     = "logical_sequences"
	TypePuzzleSolving        = "puzzle_solving"
	TypeReasoningChains      = "reasoning_chains"
	TypeCriticalThinking     = "critical_thinking"
	TypeProblemDecomposition = "problem_decomposition"
)

// Difficulties, ordered
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Learning levels and their age bands
const (
	LevelFoundation  = "foundation"  // ages 5-8
	LevelDevelopment = "development" // ages 9-12
	LevelMastery     = "mastery"     // ages 13-16

	AgeGroupFoundation  = "5-8"
	AgeGroupDevelopment = "9-12"
	AgeGroupMastery     = "13-16"
)

// Skill areas
const (
	SkillAILiteracy             = "ai_literacy"
	SkillLogicalThinking        = "logical_thinking"
	SkillCreativeProblemSolving = "creative_problem_solving"
	SkillFutureCareerSkills     = "future_career_skills"
	SkillSystemsThinking        = "systems_thinking"
	SkillInnovationMethods      = "innovation_methods"
)

var (
	Types = []string{
		TypePatternRecognition,
		TypeLogicalSequences,
		TypePuzzleSolving,
		TypeReasoningChains,
		TypeCriticalThinking,
		TypeProblemDecomposition,
	}

	Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

	Levels = []string{LevelFoundation, LevelDevelopment, LevelMastery}

	SkillAreas = []string{
		SkillAILiteracy,
		SkillLogicalThinking,
		SkillCreativeProblemSolving,
		SkillFutureCareerSkills,
		SkillSystemsThinking,
		SkillInnovationMethods,
	}

	difficultyRanks = map[string]int{
		DifficultyBeginner:     1,
		DifficultyIntermediate: 2,
		DifficultyAdvanced:     3,
	}

	levelAgeGroups = map[string]string{
		LevelFoundation:  AgeGroupFoundation,
		LevelDevelopment: AgeGroupDevelopment,
		LevelMastery:     AgeGroupMastery,
	}
)

func DifficultyRank(difficulty string) int {
	return difficultyRanks[difficulty]
}

// AgeGroupForLevel returns the age band a learning level targets.
func AgeGroupForLevel(level string) string {
	return levelAgeGroups[level]
}

// LevelForAgeGroup is the inverse of AgeGroupForLevel; "" if unknown.
func LevelForAgeGroup(ageGroup string) string {
	for level, ag := range levelAgeGroups {
		if ag == ageGroup {
			return level
		}
	}
	return ""
}

// Workout is a single logical-thinking exercise with one correct choice among
// the offered choices. Workouts are immutable once created; attempts keep
// referring to the same definition they were graded against.
type Workout struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Type             string    `json:"type"`
	Difficulty       string    `json:"difficulty"`
	Level            string    `json:"level"`
	AgeGroup         string    `json:"age_group"`
	Question         string    `json:"question"`
	Choices          []string  `json:"choices"`
	Solution         string    `json:"solution,omitempty"`
	SkillAreas       []string  `json:"skill_areas"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty"`
	CreatedBy        string    `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"` // UTC
}

// ForLearner returns a copy with the solution redacted. Learners must never
// receive the correct choice ahead of submission.
func (w Workout) ForLearner() Workout {
	w.Solution = ""
	return w
}

// HasChoice reports whether `choice` is one of the offered choices.
func (w Workout) HasChoice(choice string) bool {
	for _, c := range w.Choices {
		if c == choice {
			return true
		}
	}
	return false
}

// NewWorkout contains information needed to author a new Workout.
type NewWorkout struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description"`
	Type             string   `json:"type" validate:"required,workouttype"`
	Difficulty       string   `json:"difficulty" validate:"required,difficulty"`
	Level            string   `json:"level" validate:"required,level"`
	Question         string   `json:"question" validate:"required"`
	Choices          []string `json:"choices" validate:"min=2,dive,required"`
	Solution         string   `json:"solution" validate:"required"`
	SkillAreas       []string `json:"skill_areas" validate:"min=1,dive,skillarea"`
	EstimatedMinutes int      `json:"estimated_minutes" validate:"omitempty,min=1"`
}

func (nw *NewWorkout) Validate(validate *validator.Validate) error {
	nw.Title = core.CleanString(nw.Title)
	nw.Description = core.CleanString(nw.Description)
	nw.Type = core.CleanString(nw.Type, true /* lower */)
	nw.Difficulty = core.CleanString(nw.Difficulty, true /* lower */)
	nw.Level = core.CleanString(nw.Level, true /* lower */)
	nw.Question = core.CleanString(nw.Question)
	return validate.Struct(nw)
}

// QueryFilter filters the catalog; empty fields pass all.
type QueryFilter struct {
	Type       string `query:"type"`
	Difficulty string `query:"difficulty"`
	Level      string `query:"level"`
	AgeGroup   string `query:"age_group"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Type == "" && qf.Difficulty == "" && qf.Level == "" && qf.AgeGroup == ""
}

func (qf *QueryFilter) Clean() {
	qf.Type = core.CleanString(qf.Type, true /* lower */)
	qf.Difficulty = core.CleanString(qf.Difficulty, true /* lower */)
	qf.Level = core.CleanString(qf.Level, true /* lower */)
	qf.AgeGroup = core.CleanString(qf.AgeGroup)
}

// Match reports whether `w` passes all set filter fields (exact match, AND).
func (qf QueryFilter) Match(w Workout) bool {
	if qf.Type != "" && w.Type != qf.Type {
		return false
	}
	if qf.Difficulty != "" && w.Difficulty != qf.Difficulty {
		return false
	}
	if qf.Level != "" && w.Level != qf.Level {
		return false
	}
	if qf.AgeGroup != "" && w.AgeGroup != qf.AgeGroup {
		return false
	}
	return true
}
