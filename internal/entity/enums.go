package entity

// Enums compartidos entre entidades. Los valores van tal cual a la columna
// enum de Postgres: cambiar un valor aquí rompe las filas ya guardadas.

type LeadType string

const (
	LeadTypeContact         LeadType = "contact"
	LeadTypePreRegistration LeadType = "pre_registration"
	LeadTypeEliteBooking    LeadType = "elite_booking"
	LeadTypeWedding         LeadType = "wedding"
)

func (t LeadType) Valid() bool {
	switch t {
	case LeadTypeContact, LeadTypePreRegistration, LeadTypeEliteBooking, LeadTypeWedding:
		return true
	}
	return false
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}
	return false
}

type ProgramLevel string

const (
	LevelBeginner     ProgramLevel = "beginner"
	LevelIntermediate ProgramLevel = "intermediate"
	LevelAdvanced     ProgramLevel = "advanced"
	LevelProfessional ProgramLevel = "professional"
)

func (l ProgramLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelProfessional:
		return true
	}
	return false
}

type AgeGroup string

const (
	AgeGroupChildren AgeGroup = "children"
	AgeGroupYouth    AgeGroup = "youth"
	AgeGroupAdult    AgeGroup = "adult"
	AgeGroupAllAges  AgeGroup = "all_ages"
)

func (g AgeGroup) Valid() bool {
	switch g {
	case AgeGroupChildren, AgeGroupYouth, AgeGroupAdult, AgeGroupAllAges:
		return true
	}
	return false
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}
