package medicorepo

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vollmed/internal/domain"
	"vollmed/internal/errors"
	"vollmed/internal/pkg/database"
	"vollmed/internal/pkg/logger"
)

// uniqueViolation é o SQLSTATE do PostgreSQL para violação de UNIQUE.
const uniqueViolation = "23505"

// colunas ordenáveis aceitas em ?sort=, mapeadas para a coluna SQL.
var sortColumns = map[string]string{
	"id":            "id",
	"nome":          "nome",
	"email":         "email",
	"crm":           "crm",
	"especialidade": "especialidade",
}

// SortableField informa se o campo pode ser usado na ordenação da listagem.
func SortableField(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

const selectColumns = `
	id, nome, email, telefone, crm, especialidade,
	logradouro, COALESCE(numero, '') AS numero, COALESCE(complemento, '') AS complemento,
	bairro, cidade, uf, COALESCE(cep, '') AS cep,
	ativo, created_at, updated_at`

// medicoRow espelha uma linha da tabela medicos.
type medicoRow struct {
	ID            string    `db:"id"`
	Nome          string    `db:"nome"`
	Email         string    `db:"email"`
	Telefone      string    `db:"telefone"`
	CRM           string    `db:"crm"`
	Especialidade string    `db:"especialidade"`
	Logradouro    string    `db:"logradouro"`
	Numero        string    `db:"numero"`
	Complemento   string    `db:"complemento"`
	Bairro        string    `db:"bairro"`
	Cidade        string    `db:"cidade"`
	UF            string    `db:"uf"`
	CEP           string    `db:"cep"`
	Ativo         bool      `db:"ativo"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r medicoRow) toDomain() domain.Medico {
	return domain.Medico{
		ID:            r.ID,
		Nome:          r.Nome,
		Email:         r.Email,
		Telefone:      r.Telefone,
		CRM:           r.CRM,
		Especialidade: domain.Especialidade(r.Especialidade),
		Endereco: domain.Endereco{
			Logradouro:  r.Logradouro,
			Numero:      r.Numero,
			Complemento: r.Complemento,
			Bairro:      r.Bairro,
			Cidade:      r.Cidade,
			UF:          r.UF,
			CEP:         r.CEP,
		},
		Ativo:     r.Ativo,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// MedicoRepository persiste médicos no PostgreSQL.
// As operações participam da transação presente no contexto, quando houver.
type MedicoRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewMedicoRepository cria e retorna uma nova instância do Repositório de Médicos.
func NewMedicoRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *MedicoRepository {
	return &MedicoRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Save insere o médico se o ID for novo, ou atualiza a linha existente (upsert por id).
// Um ID vazio recebe um UUID antes da inserção.
func (r *MedicoRepository) Save(ctx context.Context, m *domain.Medico) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	query := `
        INSERT INTO medicos (id, nome, email, telefone, crm, especialidade,
                             logradouro, numero, complemento, bairro, cidade, uf, cep,
                             ativo, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        ON CONFLICT (id) DO UPDATE SET
            nome = EXCLUDED.nome,
            telefone = EXCLUDED.telefone,
            logradouro = EXCLUDED.logradouro,
            numero = EXCLUDED.numero,
            complemento = EXCLUDED.complemento,
            bairro = EXCLUDED.bairro,
            cidade = EXCLUDED.cidade,
            uf = EXCLUDED.uf,
            cep = EXCLUDED.cep,
            ativo = EXCLUDED.ativo,
            updated_at = EXCLUDED.updated_at
        RETURNING created_at, updated_at`

	e := m.Endereco
	err := database.ExecutorFrom(ctx, r.DB).QueryRowxContext(ctxTimeout, query,
		m.ID, m.Nome, m.Email, m.Telefone, m.CRM, string(m.Especialidade),
		e.Logradouro, e.Numero, e.Complemento, e.Bairro, e.Cidade, e.UF, e.CEP,
		m.Ativo, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			r.logger.Debug("Violação de unicidade ao salvar médico.", map[string]interface{}{"id": m.ID, "error": err.Error()})
			return conflict
		}
		r.logger.Error("Falha ao salvar médico no DB.", err)
		return errors.NewDBError("Falha ao salvar médico", err)
	}

	r.logger.Debug("Médico salvo.", map[string]interface{}{"id": m.ID, "ativo": m.Ativo})
	return nil
}

// FindByID busca um médico pelo ID, ativo ou não.
// Devolve NotFoundError quando o ID não existe.
func (r *MedicoRepository) FindByID(ctx context.Context, id string) (domain.Medico, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + selectColumns + ` FROM medicos WHERE id = $1`

	var row medicoRow
	err := database.ExecutorFrom(ctx, r.DB).GetContext(ctxTimeout, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("Médico não encontrado.", map[string]interface{}{"id": id})
		return domain.Medico{}, errors.NewNotFoundError(fmt.Sprintf("Médico com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar médico no DB.", err)
		return domain.Medico{}, errors.NewDBError("Falha ao buscar médico", err)
	}

	return row.toDomain(), nil
}

// FindAllAtivos devolve uma página de médicos com ativo = true.
func (r *MedicoRepository) FindAllAtivos(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Medico], error) {
	column, ok := sortColumns[req.Sort]
	if !ok {
		return domain.Page[domain.Medico]{}, errors.NewValidationError(fmt.Sprintf("Campo de ordenação %q não suportado.", req.Sort))
	}
	direction := "ASC"
	if strings.EqualFold(string(req.Direcao), string(domain.Desc)) {
		direction = "DESC"
	}
	orderBy := column + " " + direction
	if column != "id" {
		// Desempate estável entre páginas.
		orderBy += ", id ASC"
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	exec := database.ExecutorFrom(ctx, r.DB)

	var total int64
	if err := exec.GetContext(ctxTimeout, &total, `SELECT COUNT(*) FROM medicos WHERE ativo = true`); err != nil {
		r.logger.Error("Falha ao contar médicos ativos.", err)
		return domain.Page[domain.Medico]{}, errors.NewDBError("Falha ao contar médicos", err)
	}

	// orderBy vem exclusivamente do mapa sortColumns, nunca do cliente.
	query := `SELECT ` + selectColumns + `
        FROM medicos
        WHERE ativo = true
        ORDER BY ` + orderBy + `
        LIMIT $1 OFFSET $2`

	var rows []medicoRow
	if err := exec.SelectContext(ctxTimeout, &rows, query, req.Size, req.Offset()); err != nil {
		r.logger.Error("Falha ao listar médicos ativos.", err)
		return domain.Page[domain.Medico]{}, errors.NewDBError("Falha ao listar médicos", err)
	}

	medicos := make([]domain.Medico, 0, len(rows))
	for _, row := range rows {
		medicos = append(medicos, row.toDomain())
	}

	r.logger.Debug("Listagem de médicos ativos concluída.", map[string]interface{}{
		"page":  req.Page,
		"size":  req.Size,
		"total": total,
	})
	return domain.NewPage(medicos, req, total), nil
}

// conflictFrom traduz violações de UNIQUE do PostgreSQL em ConflictError.
func conflictFrom(err error) error {
	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case "medicos_crm_key":
		return errors.NewConflictError("Já existe um médico cadastrado com este CRM.", err)
	case "medicos_email_key":
		return errors.NewConflictError("Já existe um médico cadastrado com este email.", err)
	}
	return errors.NewConflictError("Registro duplicado.", err)
}
