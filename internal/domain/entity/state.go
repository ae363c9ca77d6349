package entity

import "strings"

// StateAcronym is the two-letter code of a Brazilian federative unit.
type StateAcronym string

const (
	StateAC StateAcronym = "AC"
	StateAL StateAcronym = "AL"
	StateAP StateAcronym = "AP"
	StateAM StateAcronym = "AM"
	StateBA StateAcronym = "BA"
	StateCE StateAcronym = "CE"
	StateDF StateAcronym = "DF"
	StateES StateAcronym = "ES"
	StateGO StateAcronym = "GO"
	StateMA StateAcronym = "MA"
	StateMT StateAcronym = "MT"
	StateMS StateAcronym = "MS"
	StateMG StateAcronym = "MG"
	StatePA StateAcronym = "PA"
	StatePB StateAcronym = "PB"
	StatePR StateAcronym = "PR"
	StatePE StateAcronym = "PE"
	StatePI StateAcronym = "PI"
	StateRJ StateAcronym = "RJ"
	StateRN StateAcronym = "RN"
	StateRS StateAcronym = "RS"
	StateRO StateAcronym = "RO"
	StateRR StateAcronym = "RR"
	StateSC StateAcronym = "SC"
	StateSP StateAcronym = "SP"
	StateSE StateAcronym = "SE"
	StateTO StateAcronym = "TO"
)

var stateNames = map[StateAcronym]string{
	StateAC: "Acre",
	StateAL: "Alagoas",
	StateAP: "Amapá",
	StateAM: "Amazonas",
	StateBA: "Bahia",
	StateCE: "Ceará",
	StateDF: "Distrito Federal",
	StateES: "Espírito Santo",
	StateGO: "Goiás",
	StateMA: "Maranhão",
	StateMT: "Mato Grosso",
	StateMS: "Mato Grosso do Sul",
	StateMG: "Minas Gerais",
	StatePA: "Pará",
	StatePB: "Paraíba",
	StatePR: "Paraná",
	StatePE: "Pernambuco",
	StatePI: "Piauí",
	StateRJ: "Rio de Janeiro",
	StateRN: "Rio Grande do Norte",
	StateRS: "Rio Grande do Sul",
	StateRO: "Rondônia",
	StateRR: "Roraima",
	StateSC: "Santa Catarina",
	StateSP: "São Paulo",
	StateSE: "Sergipe",
	StateTO: "Tocantins",
}

// ParseStateAcronym normalizes s and reports whether it names one of the 27 units.
func ParseStateAcronym(s string) (StateAcronym, bool) {
	acronym := StateAcronym(strings.ToUpper(strings.TrimSpace(s)))

	return acronym, acronym.IsValid()
}

// String returns the string representation of the StateAcronym.
func (a StateAcronym) String() string {
	return string(a)
}

// IsValid checks if the StateAcronym is one of the fixed federative units.
func (a StateAcronym) IsValid() bool {
	_, ok := stateNames[a]

	return ok
}

// Name returns the display name of the unit, or an empty string for unknown acronyms.
func (a StateAcronym) Name() string {
	return stateNames[a]
}

// State is a Brazilian federative unit. States are static reference data.
type State struct {
	Acronym StateAcronym `json:"acronym"`
	Name    string       `json:"name"`
}

// NewState builds the reference State for acronym with its display name.
func NewState(acronym StateAcronym) State {
	return State{Acronym: acronym, Name: acronym.Name()}
}
