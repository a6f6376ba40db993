package workout

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mazoezi/core"
)

var (
	workoutTypeTag  = "workouttype"
	workoutTypeText = "invalid workout type"

	difficultyTag  = "difficulty"
	difficultyText = "invalid difficulty"

	levelTag  = "level"
	levelText = "invalid learning level"

	skillAreaTag  = "skillarea"
	skillAreaText = "invalid skill area"

	solutionTag  = "solution_in_choices"
	solutionText = "solution must be one of the offered choices"
)

// RegisterValidators registers the workout validation tags and their
// translations on the given validator.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(workoutTypeTag, enumValidation(Types))
	core.RegisterCustomTranslation(validate, translator, workoutTypeTag, workoutTypeText)

	_ = validate.RegisterValidation(difficultyTag, enumValidation(Difficulties))
	core.RegisterCustomTranslation(validate, translator, difficultyTag, difficultyText)

	_ = validate.RegisterValidation(levelTag, enumValidation(Levels))
	core.RegisterCustomTranslation(validate, translator, levelTag, levelText)

	_ = validate.RegisterValidation(skillAreaTag, enumValidation(SkillAreas))
	core.RegisterCustomTranslation(validate, translator, skillAreaTag, skillAreaText)

	validate.RegisterStructValidation(newWorkoutStructValidation, NewWorkout{})
	core.RegisterCustomTranslation(validate, translator, solutionTag, solutionText)
}

func enumValidation(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, a := range allowed {
			if val == a {
				return true
			}
		}
		return false
	}
}

// newWorkoutStructValidation enforces invariants spanning several fields;
// it runs after field validations so all violations are reported together.
func newWorkoutStructValidation(sl validator.StructLevel) {
	nw := sl.Current().Interface().(NewWorkout)

	if nw.Solution == "" || len(nw.Choices) == 0 {
		return // already reported by field validations
	}
	for _, choice := range nw.Choices {
		if choice == nw.Solution {
			return
		}
	}
	sl.ReportError(nw.Solution, "solution", "Solution", solutionTag, "")
}
