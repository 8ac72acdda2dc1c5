package domain

import "time"

// Medico é a raiz do agregado persistida na tabela medicos.
// O Endereco pertence exclusivamente ao Medico e não tem ciclo de vida próprio.
type Medico struct {
	ID            string        `json:"id"`
	Nome          string        `json:"nome"`
	Email         string        `json:"email"`
	Telefone      string        `json:"telefone"`
	CRM           string        `json:"crm"`
	Especialidade Especialidade `json:"especialidade"`
	Endereco      Endereco      `json:"endereco"`
	Ativo         bool          `json:"ativo"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewMedico cria um médico ativo a partir dos dados de cadastro.
// O ID é atribuído pelo repositório no primeiro Save.
func NewMedico(dados DadosCadastroMedico) Medico {
	return Medico{
		Nome:          dados.Nome,
		Email:         dados.Email,
		Telefone:      dados.Telefone,
		CRM:           dados.CRM,
		Especialidade: dados.Especialidade,
		Endereco:      NewEndereco(*dados.Endereco),
		Ativo:         true,
	}
}

// AtualizarInformacoes sobrescreve apenas os campos presentes no payload.
// CRM, email e especialidade são imutáveis após o cadastro.
func (m *Medico) AtualizarInformacoes(dados DadosAtualizacaoMedico) {
	if dados.Nome != nil {
		m.Nome = *dados.Nome
	}
	if dados.Telefone != nil {
		m.Telefone = *dados.Telefone
	}
	if dados.Endereco != nil {
		m.Endereco = NewEndereco(*dados.Endereco)
	}
}

// Excluir realiza a exclusão lógica. Chamadas repetidas não têm efeito adicional.
func (m *Medico) Excluir() {
	m.Ativo = false
}
