package domain

import "math"

// Direcao de ordenação da listagem.
type Direcao string

const (
	Asc  Direcao = "ASC"
	Desc Direcao = "DESC"
)

// Valores padrão da paginação de GET /medicos.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSort     = "nome"

	// MaxOffset é o maior page*size aceito; acima disso a conta do OFFSET pode estourar.
	MaxOffset = math.MaxInt32
)

// PageRequest define a página solicitada (índice a partir de 0), o tamanho e a ordenação.
type PageRequest struct {
	Page    int
	Size    int
	Sort    string
	Direcao Direcao
}

// DefaultPageRequest devolve a página 0 com 10 registros ordenados por nome crescente.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 0, Size: DefaultPageSize, Sort: DefaultSort, Direcao: Asc}
}

// Offset é a quantidade de registros a pular antes da página.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page é o envelope de paginação devolvido pela API.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage monta o envelope calculando os metadados a partir do total.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// MapPage converte o conteúdo da página mantendo os metadados.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[R]{
		Content:          content,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: len(content),
		First:            p.First,
		Last:             p.Last,
		Empty:            len(content) == 0,
	}
}
