package medico

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"vollmed/internal/domain"
	apperror "vollmed/internal/errors"
	"vollmed/internal/pkg/logger"
)

// maxBodyBytes limita o tamanho do payload JSON aceito.
const maxBodyBytes = 1 << 20

// MedicoService define o contrato que o Handler espera da camada de Serviço.
type MedicoService interface {
	Cadastrar(ctx context.Context, dados domain.DadosCadastroMedico) (domain.DadosDetalhamentoMedico, error)
	Listar(ctx context.Context, req domain.PageRequest) (domain.Page[domain.DadosListagemMedico], error)
	Atualizar(ctx context.Context, dados domain.DadosAtualizacaoMedico) (domain.DadosDetalhamentoMedico, error)
	Excluir(ctx context.Context, id string) error
	Detalhar(ctx context.Context, id string) (domain.DadosDetalhamentoMedico, error)
}

// SortValidator informa se um campo pode ser usado em ?sort=.
type SortValidator func(field string) bool

// Handler agrupa todos os métodos de Handler de médicos.
type Handler struct {
	Service  MedicoService
	Logger   logger.Logger
	sortable SortValidator
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc MedicoService, log logger.Logger, sortable SortValidator) *Handler {
	return &Handler{
		Service:  svc,
		Logger:   log,
		sortable: sortable,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) são registrados em debug
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.FieldErrors(err),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// decode lê o corpo JSON da requisição em dst.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

// CadastrarHandler lida com a requisição POST /medicos.
// @Summary Cadastra um médico
// @Description Cadastra um novo médico ativo e devolve o detalhamento com o Location do recurso.
// @Tags medicos
// @Accept json
// @Produce json
// @Param medico body domain.DadosCadastroMedico true "Dados de cadastro"
// @Success 201 {object} domain.DadosDetalhamentoMedico "Médico cadastrado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "CRM ou email já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /medicos [post]
func (h *Handler) CadastrarHandler(w http.ResponseWriter, r *http.Request) {
	var dados domain.DadosCadastroMedico
	if err := decode(w, r, &dados); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	detalhe, err := h.Service.Cadastrar(r.Context(), dados)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	w.Header().Set("Location", resourceURL(r, detalhe.ID))
	h.handleServiceResponse(w, r, detalhe, nil, http.StatusCreated)
}

// ListarHandler lida com a requisição GET /medicos.
// @Summary Lista médicos ativos
// @Description Lista paginada dos médicos ativos. Padrão: page=0, size=10, sort=nome,asc.
// @Tags medicos
// @Produce json
// @Param page query int false "Índice da página (a partir de 0)"
// @Param size query int false "Tamanho da página (máximo 100)"
// @Param sort query string false "Campo e direção, e.g. nome,desc"
// @Success 200 {object} domain.Page[domain.DadosListagemMedico] "Página de médicos"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros de paginação inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /medicos [get]
func (h *Handler) ListarHandler(w http.ResponseWriter, r *http.Request) {
	req, err := h.parsePageRequest(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	page, err := h.Service.Listar(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, page, nil, http.StatusOK)
}

// AtualizarHandler lida com a requisição PUT /medicos.
// @Summary Atualiza um médico
// @Description Atualiza nome, telefone e/ou endereço. Campos ausentes não são alterados.
// @Tags medicos
// @Accept json
// @Produce json
// @Param medico body domain.DadosAtualizacaoMedico true "Dados de atualização"
// @Success 200 {object} domain.DadosDetalhamentoMedico "Médico atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Médico não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /medicos [put]
func (h *Handler) AtualizarHandler(w http.ResponseWriter, r *http.Request) {
	var dados domain.DadosAtualizacaoMedico
	if err := decode(w, r, &dados); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	detalhe, err := h.Service.Atualizar(r.Context(), dados)
	h.handleServiceResponse(w, r, detalhe, err, http.StatusOK)
}

// ExcluirHandler lida com a requisição DELETE /medicos/{id}.
// @Summary Exclui um médico
// @Description Exclusão lógica: o médico deixa de aparecer na listagem, mas continua acessível por ID.
// @Tags medicos
// @Param id path string true "ID do médico"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Médico não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /medicos/{id} [delete]
func (h *Handler) ExcluirHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Excluir(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// DetalharHandler lida com a requisição GET /medicos/{id}.
// @Summary Detalha um médico
// @Description Busca um médico pelo ID, inclusive se tiver sido excluído logicamente.
// @Tags medicos
// @Produce json
// @Param id path string true "ID do médico"
// @Success 200 {object} domain.DadosDetalhamentoMedico "Médico encontrado"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Médico não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /medicos/{id} [get]
func (h *Handler) DetalharHandler(w http.ResponseWriter, r *http.Request) {
	detalhe, err := h.Service.Detalhar(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, detalhe, err, http.StatusOK)
}

// parsePageRequest lê page, size e sort da query string, aplicando os padrões da listagem.
func (h *Handler) parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	req := domain.DefaultPageRequest()
	q := r.URL.Query()
	var fields []apperror.FieldError

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			fields = append(fields, apperror.FieldError{Campo: "page", Mensagem: "deve ser um inteiro maior ou igual a 0"})
		} else {
			req.Page = page
		}
	}

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			fields = append(fields, apperror.FieldError{Campo: "size", Mensagem: "deve ser um inteiro maior que 0"})
		} else {
			req.Size = min(size, domain.MaxPageSize)
		}
	}

	if v := q.Get("sort"); v != "" {
		parts := strings.Split(v, ",")
		field := strings.TrimSpace(parts[0])
		if h.sortable != nil && !h.sortable(field) {
			fields = append(fields, apperror.FieldError{Campo: "sort", Mensagem: fmt.Sprintf("campo de ordenação %q não suportado", field)})
		} else {
			req.Sort = field
			req.Direcao = domain.Asc
		}
		if len(parts) > 1 {
			switch strings.ToUpper(strings.TrimSpace(parts[1])) {
			case "ASC":
				req.Direcao = domain.Asc
			case "DESC":
				req.Direcao = domain.Desc
			default:
				fields = append(fields, apperror.FieldError{Campo: "sort", Mensagem: "direção deve ser asc ou desc"})
			}
		}
	}

	// Evita overflow de page*size no OFFSET.
	if req.Page > domain.MaxOffset/req.Size {
		fields = append(fields, apperror.FieldError{Campo: "page", Mensagem: fmt.Sprintf("página fora do intervalo (page*size deve ser no máximo %d)", domain.MaxOffset)})
	}

	if len(fields) > 0 {
		return domain.PageRequest{}, apperror.NewFieldValidationError(fields)
	}
	return req, nil
}

// resourceURL monta a URL absoluta do médico criado para o header Location.
func resourceURL(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	// Só aceitamos esquemas conhecidos vindos do proxy.
	switch proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto {
	case "http", "https":
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/medicos/%s", scheme, r.Host, id)
}
