package dto

import "github.com/shopspring/decimal"

// MateriaPrimaRequest body para criar/atualizar matéria-prima (full replace).
type MateriaPrimaRequest struct {
	Codigo         string          `json:"codigo"`
	Descricao      string          `json:"descricao"`
	UnidadeMedida  string          `json:"unidade_medida"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
	EstoqueMinimo  decimal.Decimal `json:"estoque_minimo"`
	EstoqueAtual   decimal.Decimal `json:"estoque_atual"`
	Categoria      string          `json:"categoria"`
	Especificacoes string          `json:"especificacoes"`
}

// AtualizarPrecoRequest body para PUT /materias-primas/:id/preco.
type AtualizarPrecoRequest struct {
	NovoPreco decimal.Decimal `json:"novo_preco"`
}
