package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vollmed/internal/domain"
)

func TestNewPage_Metadados(t *testing.T) {
	req := domain.PageRequest{Page: 1, Size: 5, Sort: "nome", Direcao: domain.Asc}

	p := domain.NewPage([]int{6, 7, 8, 9, 10}, req, 15)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(15), p.TotalElements)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 5, p.Size)
	assert.Equal(t, 5, p.NumberOfElements)
	assert.False(t, p.First)
	assert.False(t, p.Last)
	assert.False(t, p.Empty)
}

func TestNewPage_Vazia(t *testing.T) {
	p := domain.NewPage[string](nil, domain.DefaultPageRequest(), 0)

	assert.NotNil(t, p.Content)
	assert.Equal(t, 0, p.TotalPages)
	assert.True(t, p.First)
	assert.True(t, p.Last)
	assert.True(t, p.Empty)
}

func TestMapPage(t *testing.T) {
	req := domain.PageRequest{Page: 2, Size: 2}
	p := domain.NewPage([]int{5}, req, 5)

	mapped := domain.MapPage(p, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(t, []string{"f"}, mapped.Content)
	assert.Equal(t, p.TotalPages, mapped.TotalPages)
	assert.True(t, mapped.Last)
	assert.Equal(t, 4, req.Offset())
}
