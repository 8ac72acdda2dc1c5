package medicoservice_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vollmed/internal/domain"
	apperror "vollmed/internal/errors"
	"vollmed/internal/pkg/logger"
	"vollmed/internal/service/medicoservice"
)

const medicoID = "0b8f6a8e-5f5b-4b55-9f0e-5a7e1d0d1c11"

// MockMedicoRepository é uma implementação mock da interface MedicoRepository
type MockMedicoRepository struct {
	mock.Mock
}

func (m *MockMedicoRepository) Save(ctx context.Context, medico *domain.Medico) error {
	args := m.Called(ctx, medico)
	return args.Error(0)
}

func (m *MockMedicoRepository) FindByID(ctx context.Context, id string) (domain.Medico, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Medico), args.Error(1)
}

func (m *MockMedicoRepository) FindAllAtivos(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Medico], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[domain.Medico]), args.Error(1)
}

// fakeTransactor executa fn diretamente e conta as transações abertas.
type fakeTransactor struct {
	calls     int
	readCalls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func (f *fakeTransactor) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readCalls++
	return fn(ctx)
}

func newService() (*medicoservice.Service, *MockMedicoRepository, *fakeTransactor) {
	repo := new(MockMedicoRepository)
	tx := &fakeTransactor{}
	return medicoservice.NewService(repo, tx, logger.New(io.Discard, "error")), repo, tx
}

func cadastroValido() domain.DadosCadastroMedico {
	return domain.DadosCadastroMedico{
		Nome:          "Ana Souza",
		Email:         "ana.souza@voll.med",
		Telefone:      "61999990000",
		CRM:           "4321",
		Especialidade: domain.Cardiologia,
		Endereco: &domain.DadosEndereco{
			Logradouro: "rua 1", Numero: "10", Bairro: "centro", Cidade: "Brasilia", UF: "DF",
		},
	}
}

func medicoSalvo(ativo bool) domain.Medico {
	m := domain.NewMedico(cadastroValido())
	m.ID = medicoID
	m.Ativo = ativo
	return m
}

func strPtr(s string) *string { return &s }

// --- Cadastrar ---

func TestCadastrar_Success(t *testing.T) {
	svc, repo, tx := newService()

	repo.On("Save", mock.Anything, mock.MatchedBy(func(m *domain.Medico) bool {
		return m.Ativo && m.CRM == "4321"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Medico).ID = medicoID
	}).Return(nil)

	detalhe, err := svc.Cadastrar(context.Background(), cadastroValido())

	require.NoError(t, err)
	assert.Equal(t, medicoID, detalhe.ID)
	assert.Equal(t, "Ana Souza", detalhe.Nome)
	assert.Equal(t, "61999990000", detalhe.Telefone)
	assert.Equal(t, "Brasilia", detalhe.Endereco.Cidade)
	assert.Equal(t, 1, tx.calls)
	repo.AssertExpectations(t)
}

func TestCadastrar_Fail_CRMInvalido(t *testing.T) {
	svc, repo, tx := newService()
	dados := cadastroValido()
	dados.CRM = "12"

	_, err := svc.Cadastrar(context.Background(), dados)

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, "crm", apperror.FieldErrors(err)[0].Campo)
	assert.Equal(t, 0, tx.calls)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCadastrar_Fail_Conflito(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("Save", mock.Anything, mock.Anything).Return(apperror.NewConflictError("CRM duplicado", nil))

	_, err := svc.Cadastrar(context.Background(), cadastroValido())

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

// --- Listar ---

func TestListar_MapeiaParaListagem(t *testing.T) {
	svc, repo, tx := newService()
	req := domain.DefaultPageRequest()
	page := domain.NewPage([]domain.Medico{medicoSalvo(true)}, req, 1)
	repo.On("FindAllAtivos", mock.Anything, req).Return(page, nil)

	result, err := svc.Listar(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, domain.DadosListagemMedico{
		ID: medicoID, Nome: "Ana Souza", Email: "ana.souza@voll.med", CRM: "4321", Especialidade: domain.Cardiologia,
	}, result.Content[0])
	assert.Equal(t, int64(1), result.TotalElements)
	// Contagem e página vêm da mesma transação somente leitura.
	assert.Equal(t, 1, tx.readCalls)
	assert.Equal(t, 0, tx.calls)
}

func TestListar_Fail_RepoError(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindAllAtivos", mock.Anything, mock.Anything).
		Return(domain.Page[domain.Medico]{}, apperror.NewDBError("falha", errors.New("database connection lost")))

	_, err := svc.Listar(context.Background(), domain.DefaultPageRequest())

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
	assert.Contains(t, err.Error(), "database connection lost")
}

// --- Atualizar ---

func TestAtualizar_SomenteTelefone(t *testing.T) {
	svc, repo, tx := newService()
	original := medicoSalvo(true)
	repo.On("FindByID", mock.Anything, medicoID).Return(original, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	detalhe, err := svc.Atualizar(context.Background(), domain.DadosAtualizacaoMedico{
		ID:       medicoID,
		Telefone: strPtr("6133334444"),
	})

	require.NoError(t, err)
	assert.Equal(t, "6133334444", detalhe.Telefone)
	assert.Equal(t, original.Nome, detalhe.Nome)
	assert.Equal(t, original.Email, detalhe.Email)
	assert.Equal(t, original.CRM, detalhe.CRM)
	assert.Equal(t, original.Especialidade, detalhe.Especialidade)
	assert.Equal(t, original.Endereco, detalhe.Endereco)
	assert.Equal(t, 1, tx.calls)
	repo.AssertExpectations(t)
}

func TestAtualizar_Fail_NaoEncontrado(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(domain.Medico{}, apperror.NewNotFoundError("médico"))

	_, err := svc.Atualizar(context.Background(), domain.DadosAtualizacaoMedico{ID: medicoID, Nome: strPtr("X")})

	assert.True(t, apperror.IsNotFound(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAtualizar_Fail_Validacao(t *testing.T) {
	svc, repo, tx := newService()

	_, err := svc.Atualizar(context.Background(), domain.DadosAtualizacaoMedico{ID: medicoID, Nome: strPtr("")})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, 0, tx.calls)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// --- Excluir ---

func TestExcluir_MarcaInativo(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(medicoSalvo(true), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(m *domain.Medico) bool { return !m.Ativo })).Return(nil)

	require.NoError(t, svc.Excluir(context.Background(), medicoID))
	repo.AssertExpectations(t)
}

func TestExcluir_JaExcluidoNaoAltera(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(medicoSalvo(false), nil)

	require.NoError(t, svc.Excluir(context.Background(), medicoID))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExcluir_Fail_NaoEncontrado(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(domain.Medico{}, apperror.NewNotFoundError("médico"))

	err := svc.Excluir(context.Background(), medicoID)

	assert.True(t, apperror.IsNotFound(err))
}

func TestExcluir_Fail_IDInvalido(t *testing.T) {
	svc, repo, tx := newService()

	err := svc.Excluir(context.Background(), "42")

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, 0, tx.calls)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestIDNaoCanonico_Rejeitado(t *testing.T) {
	for _, id := range []string{
		"urn:uuid:" + medicoID,
		"{" + medicoID + "}",
		"0B8F6A8E-5F5B-4B55-9F0E-5A7E1D0D1C11",
		"0b8f6a8e5f5b4b559f0e5a7e1d0d1c11",
	} {
		t.Run(id, func(t *testing.T) {
			svc, repo, tx := newService()

			errExcluir := svc.Excluir(context.Background(), id)
			_, errDetalhar := svc.Detalhar(context.Background(), id)
			_, errAtualizar := svc.Atualizar(context.Background(), domain.DadosAtualizacaoMedico{ID: id, Telefone: strPtr("6133334444")})

			assert.IsType(t, &apperror.ValidationError{}, errExcluir)
			assert.IsType(t, &apperror.ValidationError{}, errDetalhar)
			assert.IsType(t, &apperror.ValidationError{}, errAtualizar)
			assert.Equal(t, 0, tx.calls)
			repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

// --- Detalhar ---

func TestDetalhar_MedicoInativoAindaRetorna(t *testing.T) {
	svc, repo, tx := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(medicoSalvo(false), nil)

	detalhe, err := svc.Detalhar(context.Background(), medicoID)

	require.NoError(t, err)
	assert.Equal(t, medicoID, detalhe.ID)
	assert.Equal(t, 0, tx.calls)
}

func TestDetalhar_Fail_NaoEncontrado(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, medicoID).Return(domain.Medico{}, apperror.NewNotFoundError("médico"))

	_, err := svc.Detalhar(context.Background(), medicoID)

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 404, status)
}
