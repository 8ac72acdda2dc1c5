package medicoservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vollmed/internal/domain"
	apperror "vollmed/internal/errors"
	"vollmed/internal/pkg/logger"
)

// MedicoRepository define o contrato que este Serviço espera da camada de Persistência.
type MedicoRepository interface {
	Save(ctx context.Context, m *domain.Medico) error
	FindByID(ctx context.Context, id string) (domain.Medico, error)
	FindAllAtivos(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Medico], error)
}

// Transactor demarca a unidade de trabalho. fn recebe o contexto que carrega a transação.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implementa os casos de uso do cadastro de médicos.
type Service struct {
	repo   MedicoRepository
	tx     Transactor
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Médicos.
func NewService(repo MedicoRepository, tx Transactor, log logger.Logger) *Service {
	return &Service{repo: repo, tx: tx, logger: log}
}

// Cadastrar valida o payload e persiste um novo médico ativo.
func (s *Service) Cadastrar(ctx context.Context, dados domain.DadosCadastroMedico) (domain.DadosDetalhamentoMedico, error) {
	if err := dados.Validate(); err != nil {
		s.logger.Debug("Cadastro de médico rejeitado na validação.", map[string]interface{}{"error": err.Error()})
		return domain.DadosDetalhamentoMedico{}, err
	}

	medico := domain.NewMedico(dados)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, &medico)
	})
	if err != nil {
		return domain.DadosDetalhamentoMedico{}, fmt.Errorf("cadastrar médico: %w", err)
	}

	s.logger.Info("Médico cadastrado.", map[string]interface{}{"id": medico.ID, "crm": medico.CRM})
	return domain.NewDadosDetalhamentoMedico(medico), nil
}

// Listar devolve a página de médicos ativos na projeção de listagem.
func (s *Service) Listar(ctx context.Context, req domain.PageRequest) (domain.Page[domain.DadosListagemMedico], error) {
	// COUNT e SELECT no mesmo snapshot: totalElements sempre bate com content.
	var page domain.Page[domain.Medico]
	err := s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.repo.FindAllAtivos(ctx, req)
		return err
	})
	if err != nil {
		return domain.Page[domain.DadosListagemMedico]{}, fmt.Errorf("listar médicos: %w", err)
	}
	return domain.MapPage(page, domain.NewDadosListagemMedico), nil
}

// Atualizar aplica a atualização parcial de nome, telefone e endereço.
// Médicos excluídos logicamente também podem ser atualizados.
func (s *Service) Atualizar(ctx context.Context, dados domain.DadosAtualizacaoMedico) (domain.DadosDetalhamentoMedico, error) {
	if err := dados.Validate(); err != nil {
		s.logger.Debug("Atualização de médico rejeitada na validação.", map[string]interface{}{"error": err.Error()})
		return domain.DadosDetalhamentoMedico{}, err
	}
	if err := validateID(dados.ID); err != nil {
		return domain.DadosDetalhamentoMedico{}, err
	}

	var medico domain.Medico
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		medico, err = s.repo.FindByID(ctx, dados.ID)
		if err != nil {
			return err
		}
		medico.AtualizarInformacoes(dados)
		return s.repo.Save(ctx, &medico)
	})
	if err != nil {
		return domain.DadosDetalhamentoMedico{}, fmt.Errorf("atualizar médico %s: %w", dados.ID, err)
	}

	s.logger.Info("Médico atualizado.", map[string]interface{}{"id": medico.ID})
	return domain.NewDadosDetalhamentoMedico(medico), nil
}

// Excluir realiza a exclusão lógica (ativo = false). Repetir a exclusão não é erro.
func (s *Service) Excluir(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		medico, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !medico.Ativo {
			return nil
		}
		medico.Excluir()
		return s.repo.Save(ctx, &medico)
	})
	if err != nil {
		return fmt.Errorf("excluir médico %s: %w", id, err)
	}

	s.logger.Info("Médico excluído logicamente.", map[string]interface{}{"id": id})
	return nil
}

// Detalhar devolve o médico pelo ID, sem filtrar por ativo.
func (s *Service) Detalhar(ctx context.Context, id string) (domain.DadosDetalhamentoMedico, error) {
	if err := validateID(id); err != nil {
		return domain.DadosDetalhamentoMedico{}, err
	}

	medico, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DadosDetalhamentoMedico{}, fmt.Errorf("detalhar médico %s: %w", id, err)
	}
	return domain.NewDadosDetalhamentoMedico(medico), nil
}

// validateID aceita apenas a forma canônica (minúscula, com hífens), a mesma exigida
// pela tag uuid no PUT. Formas como urn:uuid:, {...} ou sem hífens são rejeitadas.
func validateID(id string) error {
	if parsed, err := uuid.Parse(id); err != nil || parsed.String() != id {
		return apperror.NewFieldValidationError([]apperror.FieldError{
			{Campo: "id", Mensagem: "deve ser um UUID válido"},
		})
	}
	return nil
}
