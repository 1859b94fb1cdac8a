package entity

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalMuscleGain  Goal = "Muscle Gain"
	GoalEndurance   Goal = "Endurance"
	GoalStrength    Goal = "Strength"
	GoalFlexibility Goal = "Flexibility"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

type WorkoutLocation string

const (
	LocationHome    WorkoutLocation = "Home"
	LocationGym     WorkoutLocation = "Gym"
	LocationOutdoor WorkoutLocation = "Outdoor"
)

type DietPreference string

const (
	DietVeg    DietPreference = "Veg"
	DietNonVeg DietPreference = "Non-Veg"
	DietVegan  DietPreference = "Vegan"
	DietKeto   DietPreference = "Keto"
)

type StressLevel string

const (
	StressLow      StressLevel = "Low"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
)

// Profile is the user input the plan prompt is compiled from.
// Name, Age and Goal are required; every other field may be left zero.
type Profile struct {
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Gender         Gender          `json:"gender,omitempty"`
	HeightCm       float64         `json:"height,omitempty"`
	WeightKg       float64         `json:"weight,omitempty"`
	Goal           Goal            `json:"goal"`
	Level          FitnessLevel    `json:"level,omitempty"`
	Location       WorkoutLocation `json:"location,omitempty"`
	Diet           DietPreference  `json:"diet,omitempty"`
	MedicalHistory string          `json:"medicalHistory,omitempty"`
	StressLevel    StressLevel     `json:"stressLevel,omitempty"`
}

var (
	Genders      = []Gender{GenderMale, GenderFemale, GenderOther}
	Goals        = []Goal{GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalStrength, GoalFlexibility}
	Levels       = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
	Locations    = []WorkoutLocation{LocationHome, LocationGym, LocationOutdoor}
	Diets        = []DietPreference{DietVeg, DietNonVeg, DietVegan, DietKeto}
	StressLevels = []StressLevel{StressLow, StressModerate, StressHigh}
)
