package estoque

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// Filtro critérios de filtragem em memória sobre o cadastro de matérias-primas.
// Campos vazios (ou "todas"/"todos") não filtram.
type Filtro struct {
	Busca     string // código ou descrição, sem diferenciar acentos/caixa
	Categoria string
	Status    string // NORMAL, CRÍTICO ou ZERADO
}

// Resumo estatísticas derivadas do conjunto em memória.
type Resumo struct {
	Total      int             `json:"total"`
	Criticos   int             `json:"criticos"`
	Zerados    int             `json:"zerados"`
	ValorTotal decimal.Decimal `json:"valor_total"` // Σ estoque_atual × preco_unitario
}

// Filtrar aplica os critérios sobre a lista, preservando a ordem de entrada.
// Função pura: não depende de transporte nem de persistência.
func Filtrar(materias []*entity.MateriaPrima, f Filtro) []*entity.MateriaPrima {
	busca := normalizar(f.Busca)
	out := make([]*entity.MateriaPrima, 0, len(materias))
	for _, m := range materias {
		if busca != "" &&
			!strings.Contains(normalizar(m.Codigo), busca) &&
			!strings.Contains(normalizar(m.Descricao), busca) {
			continue
		}
		if f.Categoria != "" && f.Categoria != "todas" && m.Categoria != f.Categoria {
			continue
		}
		if f.Status != "" && f.Status != "todos" && Classificar(m.EstoqueAtual, m.EstoqueMinimo) != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Resumir calcula as estatísticas do conjunto (contagens e valor do estoque).
func Resumir(materias []*entity.MateriaPrima) Resumo {
	r := Resumo{Total: len(materias), ValorTotal: decimal.Zero}
	for _, m := range materias {
		switch Classificar(m.EstoqueAtual, m.EstoqueMinimo) {
		case StatusCritico:
			r.Criticos++
		case StatusZerado:
			r.Zerados++
		}
		r.ValorTotal = r.ValorTotal.Add(m.EstoqueAtual.Mul(m.PrecoUnitario))
	}
	return r
}

// semAcentos remove marcas diacríticas ("Química" → "Quimica") para a busca.
var semAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(semAcentos, s)
	if err != nil {
		return s
	}
	return out
}
