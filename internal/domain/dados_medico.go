package domain

import (
	apperror "vollmed/internal/errors"
	"vollmed/internal/pkg/validator"
)

// DadosCadastroMedico é o payload de entrada de POST /medicos.
type DadosCadastroMedico struct {
	Nome          string         `json:"nome" validate:"required,notblank"`
	Email         string         `json:"email" validate:"required,notblank,email"`
	Telefone      string         `json:"telefone" validate:"required,notblank"`
	CRM           string         `json:"crm" validate:"required,notblank,crm"`
	Especialidade Especialidade  `json:"especialidade" validate:"required,especialidade"`
	Endereco      *DadosEndereco `json:"endereco" validate:"required"`
}

// Validate aplica as regras de entrada do cadastro, incluindo as do endereço aninhado.
func (d DadosCadastroMedico) Validate() error {
	return validateStruct(d)
}

// DadosAtualizacaoMedico é o payload de PUT /medicos. Campos nil não são alterados.
type DadosAtualizacaoMedico struct {
	ID       string         `json:"id" validate:"required,uuid"`
	Nome     *string        `json:"nome" validate:"omitnil,notblank"`
	Telefone *string        `json:"telefone" validate:"omitnil,notblank"`
	Endereco *DadosEndereco `json:"endereco" validate:"omitnil"`
}

// Validate aplica as regras de entrada da atualização.
func (d DadosAtualizacaoMedico) Validate() error {
	return validateStruct(d)
}

// DadosListagemMedico é a projeção resumida usada na listagem paginada.
type DadosListagemMedico struct {
	ID            string        `json:"id"`
	Nome          string        `json:"nome"`
	Email         string        `json:"email"`
	CRM           string        `json:"crm"`
	Especialidade Especialidade `json:"especialidade"`
}

// NewDadosListagemMedico copia os campos da listagem a partir da entidade.
func NewDadosListagemMedico(m Medico) DadosListagemMedico {
	return DadosListagemMedico{
		ID:            m.ID,
		Nome:          m.Nome,
		Email:         m.Email,
		CRM:           m.CRM,
		Especialidade: m.Especialidade,
	}
}

// DadosDetalhamentoMedico é a projeção completa devolvida no cadastro, atualização e detalhe.
type DadosDetalhamentoMedico struct {
	ID            string        `json:"id"`
	Nome          string        `json:"nome"`
	Email         string        `json:"email"`
	Telefone      string        `json:"telefone"`
	CRM           string        `json:"crm"`
	Especialidade Especialidade `json:"especialidade"`
	Endereco      Endereco      `json:"endereco"`
}

// NewDadosDetalhamentoMedico copia os campos do detalhe a partir da entidade.
func NewDadosDetalhamentoMedico(m Medico) DadosDetalhamentoMedico {
	return DadosDetalhamentoMedico{
		ID:            m.ID,
		Nome:          m.Nome,
		Email:         m.Email,
		Telefone:      m.Telefone,
		CRM:           m.CRM,
		Especialidade: m.Especialidade,
		Endereco:      m.Endereco,
	}
}

func validateStruct(v any) error {
	if fields := validator.Struct(v); len(fields) > 0 {
		return apperror.NewFieldValidationError(fields)
	}
	return nil
}
