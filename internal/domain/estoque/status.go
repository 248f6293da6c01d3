package estoque

import (
	"github.com/shopspring/decimal"
)

// Status de estoque derivados de estoque_atual × estoque_minimo.
const (
	StatusNormal  = "NORMAL"
	StatusCritico = "CRÍTICO"
	StatusZerado  = "ZERADO"
)

// Classificar deriva o status de estoque de uma matéria-prima.
// Zerado tem precedência sobre crítico; crítico é estoque no limiar ou abaixo.
func Classificar(atual, minimo decimal.Decimal) string {
	if atual.LessThanOrEqual(decimal.Zero) {
		return StatusZerado
	}
	if atual.LessThanOrEqual(minimo) {
		return StatusCritico
	}
	return StatusNormal
}
