package domain

// Endereco é um objeto de valor embutido no Medico. Não possui identidade própria
// e é comparável por valor.
type Endereco struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep,omitempty"`
}

// DadosEndereco é o payload de entrada do endereço, usado no cadastro e na atualização.
type DadosEndereco struct {
	Logradouro  string `json:"logradouro" validate:"required,notblank"`
	Numero      string `json:"numero" validate:"required,notblank"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro" validate:"required,notblank"`
	Cidade      string `json:"cidade" validate:"required,notblank"`
	UF          string `json:"uf" validate:"required,notblank,len=2"`
	CEP         string `json:"cep" validate:"omitempty,cep"`
}

// NewEndereco constrói o objeto de valor a partir do payload validado.
func NewEndereco(dados DadosEndereco) Endereco {
	return Endereco{
		Logradouro:  dados.Logradouro,
		Numero:      dados.Numero,
		Complemento: dados.Complemento,
		Bairro:      dados.Bairro,
		Cidade:      dados.Cidade,
		UF:          dados.UF,
		CEP:         dados.CEP,
	}
}
