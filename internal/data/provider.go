package data

// DepartmentProvider supplies the departments listed by the entity demo.
type DepartmentProvider interface {
	Departments() []Department
}

// TeamProvider supplies the teams listed by the disabled item demo.
type TeamProvider interface {
	Teams() []Team
}

// DepartmentData is the built-in department list.
type DepartmentData struct{}

// Departments implements DepartmentProvider.
func (DepartmentData) Departments() []Department {
	return []Department{
		{Name: "Product"},
		{Name: "Service"},
		{Name: "HR"},
		{Name: "Accounting"},
		{Name: "Marketing"},
		{Name: "Sales"},
	}
}

// TeamData is the built-in team list.
type TeamData struct{}

// DisabledTeam is the team the disabled item demo refuses to select.
const DisabledTeam = "Developers Journey and Onboarding"

// Teams implements TeamProvider.
func (TeamData) Teams() []Team {
	return []Team{
		{Name: "Flow"},
		{Name: "Components"},
		{Name: "Designer"},
		{Name: "Framework"},
		{Name: DisabledTeam},
		{Name: "Tools"},
	}
}

// Set is a fixed list of departments and teams, typically loaded from a
// data file. It implements both providers.
type Set struct {
	DepartmentList []Department
	TeamList       []Team
}

// Departments implements DepartmentProvider.
func (s *Set) Departments() []Department {
	return append([]Department(nil), s.DepartmentList...)
}

// Teams implements TeamProvider.
func (s *Set) Teams() []Team {
	return append([]Team(nil), s.TeamList...)
}
