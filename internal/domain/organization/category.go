package organization

// Category is the cause tag an organization is listed under.
type Category string

const (
	CategoryEnvironment  Category = "environment"
	CategoryEducation    Category = "education"
	CategoryHealth       Category = "health"
	CategoryAnimals      Category = "animals"
	CategoryHumanitarian Category = "humanitarian"
	CategoryArts         Category = "arts"
)

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEnvironment, CategoryEducation, CategoryHealth,
		CategoryAnimals, CategoryHumanitarian, CategoryArts:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
