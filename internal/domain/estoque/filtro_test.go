package estoque_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/estoque"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func materiasDeTeste() []*entity.MateriaPrima {
	return []*entity.MateriaPrima{
		{ID: "1", Codigo: "MP001", Descricao: "Resina Epóxi", Categoria: "Química",
			PrecoUnitario: dec("10.5000"), EstoqueAtual: dec("100"), EstoqueMinimo: dec("20")},
		{ID: "2", Codigo: "MP002", Descricao: "Solvente", Categoria: "Química",
			PrecoUnitario: dec("4.0000"), EstoqueAtual: dec("5"), EstoqueMinimo: dec("10")},
		{ID: "3", Codigo: "MP003", Descricao: "Papelão Ondulado", Categoria: "Embalagem",
			PrecoUnitario: dec("1.2500"), EstoqueAtual: dec("0"), EstoqueMinimo: dec("50")},
	}
}

func TestClassificar(t *testing.T) {
	assert.Equal(t, estoque.StatusNormal, estoque.Classificar(dec("100"), dec("20")))
	assert.Equal(t, estoque.StatusCritico, estoque.Classificar(dec("10"), dec("10")),
		"estoque no limiar deve ser crítico")
	assert.Equal(t, estoque.StatusCritico, estoque.Classificar(dec("5"), dec("10")))
	assert.Equal(t, estoque.StatusZerado, estoque.Classificar(dec("0"), dec("10")))
	assert.Equal(t, estoque.StatusZerado, estoque.Classificar(dec("-3"), dec("0")),
		"estoque negativo conta como zerado")
}

func TestFiltrar_BuscaSemAcentos(t *testing.T) {
	// A busca cobre código e descrição, sem diferenciar acentos nem caixa:
	// "epoxi" deve encontrar "Epóxi".
	out := estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Busca: "epoxi"})
	require.Len(t, out, 1)
	assert.Equal(t, "MP001", out[0].Codigo)

	out = estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Busca: "PAPELAO"})
	require.Len(t, out, 1)
	assert.Equal(t, "MP003", out[0].Codigo)
}

func TestFiltrar_CategoriaEStatus(t *testing.T) {
	out := estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Categoria: "Química"})
	assert.Len(t, out, 2)

	out = estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Status: estoque.StatusCritico})
	require.Len(t, out, 1)
	assert.Equal(t, "MP002", out[0].Codigo)

	// "todas"/"todos" não filtram.
	out = estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Categoria: "todas", Status: "todos"})
	assert.Len(t, out, 3)

	// Critérios combinados.
	out = estoque.Filtrar(materiasDeTeste(), estoque.Filtro{Categoria: "Química", Status: estoque.StatusNormal})
	require.Len(t, out, 1)
	assert.Equal(t, "MP001", out[0].Codigo)
}

func TestResumir(t *testing.T) {
	r := estoque.Resumir(materiasDeTeste())
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.Criticos)
	assert.Equal(t, 1, r.Zerados)
	// 100×10.50 + 5×4.00 + 0×1.25 = 1070
	assert.True(t, r.ValorTotal.Equal(dec("1070")), "valor total: %s", r.ValorTotal)
}

func TestResumir_Vazio(t *testing.T) {
	r := estoque.Resumir(nil)
	assert.Equal(t, 0, r.Total)
	assert.True(t, r.ValorTotal.IsZero())
}
