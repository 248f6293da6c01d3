package dto

import "github.com/shopspring/decimal"

// ProdutoRequest body para criar/atualizar produto (full replace).
type ProdutoRequest struct {
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	UnidadeMedida string          `json:"unidade_medida"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	Categoria     string          `json:"categoria"`
}

// FormulaItemRequest body para POST /produtos/:id/formula.
type FormulaItemRequest struct {
	MateriaPrimaID       string          `json:"id_materia_prima"`
	QuantidadeNecessaria decimal.Decimal `json:"quantidade_necessaria"`
	TipoUso              string          `json:"tipo_uso"`
}
