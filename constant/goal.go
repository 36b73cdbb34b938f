package constant

type GoalCategory string

const (
	GoalCategoryTransport GoalCategory = "TRANSPORT"
	GoalCategoryEnergy    GoalCategory = "ENERGY"
	GoalCategoryFood      GoalCategory = "FOOD"
	GoalCategoryLifestyle GoalCategory = "LIFESTYLE"
	GoalCategoryOther     GoalCategory = "OTHER"
)

type GoalRecurring string

const (
	GoalRecurringNone    GoalRecurring = "NONE"
	GoalRecurringWeekly  GoalRecurring = "WEEKLY"
	GoalRecurringMonthly GoalRecurring = "MONTHLY"
	GoalRecurringYearly  GoalRecurring = "YEARLY"
)

// GoalProgressHistoryLimit caps the progress entries embedded in a goal detail.
const GoalProgressHistoryLimit = 10
