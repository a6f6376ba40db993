package workout

// SampleWorkouts is the built-in starter catalog, one exercise per workout
// type. Seeded by admins via Service.SeedSamples.
var SampleWorkouts = []NewWorkout{
	{
		Title:            "Pattern Detective",
		Description:      "Spot what comes next in a growing number pattern.",
		Type:             TypePatternRecognition,
		Difficulty:       DifficultyBeginner,
		Level:            LevelFoundation,
		Question:         "Look at this pattern: 1, 3, 5, 7, ... What number comes next?",
		Choices:          []string{"8", "9", "10"},
		Solution:         "9",
		SkillAreas:       []string{SkillLogicalThinking},
		EstimatedMinutes: 5,
	},
	{
		Title:            "Story Sequencer",
		Description:      "Put the steps of a morning routine in a sensible order.",
		Type:             TypeLogicalSequences,
		Difficulty:       DifficultyBeginner,
		Level:            LevelFoundation,
		Question:         "Which step comes first when getting ready for school?",
		Choices:          []string{"Put on shoes", "Wake up", "Eat breakfast"},
		Solution:         "Wake up",
		SkillAreas:       []string{SkillLogicalThinking, SkillSystemsThinking},
		EstimatedMinutes: 5,
	},
	{
		Title:            "River Crossing",
		Description:      "The classic farmer, fox, chicken and grain puzzle.",
		Type:             TypePuzzleSolving,
		Difficulty:       DifficultyIntermediate,
		Level:            LevelDevelopment,
		Question:         "A farmer must ferry a fox, a chicken and a bag of grain across a river, one at a time. What should cross first?",
		Choices:          []string{"The fox", "The chicken", "The grain"},
		Solution:         "The chicken",
		SkillAreas:       []string{SkillLogicalThinking, SkillCreativeProblemSolving},
		EstimatedMinutes: 10,
	},
	{
		Title:            "If-Then Chains",
		Description:      "Follow a chain of conditions to its conclusion.",
		Type:             TypeReasoningChains,
		Difficulty:       DifficultyIntermediate,
		Level:            LevelDevelopment,
		Question:         "If all robots beep, and Zig is a robot, what must be true?",
		Choices:          []string{"Zig is silent", "Zig beeps", "Zig is not a robot"},
		Solution:         "Zig beeps",
		SkillAreas:       []string{SkillLogicalThinking, SkillAILiteracy},
		EstimatedMinutes: 8,
	},
	{
		Title:            "Claim Checker",
		Description:      "Decide which piece of evidence actually supports a claim.",
		Type:             TypeCriticalThinking,
		Difficulty:       DifficultyAdvanced,
		Level:            LevelMastery,
		Question:         "A headline claims 'screens ruin sleep'. Which evidence would best test that claim?",
		Choices: []string{
			"A celebrity says it is true",
			"A study comparing sleep with and without screen use",
			"An advert for blue-light glasses",
		},
		Solution:         "A study comparing sleep with and without screen use",
		SkillAreas:       []string{SkillLogicalThinking, SkillFutureCareerSkills},
		EstimatedMinutes: 12,
	},
	{
		Title:            "Break It Down",
		Description:      "Split a big task into the right first sub-task.",
		Type:             TypeProblemDecomposition,
		Difficulty:       DifficultyAdvanced,
		Level:            LevelMastery,
		Question:         "You are building a school recycling app. What is the best first sub-problem to solve?",
		Choices: []string{
			"Pick the app's colors",
			"List what users need the app to do",
			"Publish the app",
		},
		Solution:         "List what users need the app to do",
		SkillAreas:       []string{SkillSystemsThinking, SkillInnovationMethods},
		EstimatedMinutes: 12,
	},
}
