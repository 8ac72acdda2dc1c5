package domain

// Especialidade é o conjunto fechado de especialidades aceitas no cadastro.
type Especialidade string

const (
	Ortopedia    Especialidade = "ORTOPEDIA"
	Cardiologia  Especialidade = "CARDIOLOGIA"
	Ginecologia  Especialidade = "GINECOLOGIA"
	Dermatologia Especialidade = "DERMATOLOGIA"
)

// Especialidades lista os valores válidos, na ordem de exibição.
var Especialidades = []Especialidade{Ortopedia, Cardiologia, Ginecologia, Dermatologia}

// Valid informa se o valor pertence ao conjunto de especialidades.
func (e Especialidade) Valid() bool {
	switch e {
	case Ortopedia, Cardiologia, Ginecologia, Dermatologia:
		return true
	}
	return false
}
