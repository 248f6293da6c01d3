package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimentacaoRequest body para POST /estoque/movimentacao.
type MovimentacaoRequest struct {
	MateriaPrimaID      string          `json:"id_materia_prima"`
	UsuarioID           string          `json:"id_usuario"`
	Tipo                string          `json:"tipo_movimentacao"` // entrada | saida
	Quantidade          decimal.Decimal `json:"quantidade"`
	DocumentoReferencia string          `json:"documento_referencia"`
	Observacoes         string          `json:"observacoes"`
}

// MovimentacaoResponse resultado do registro: estoque já ajustado.
type MovimentacaoResponse struct {
	MateriaPrimaID string          `json:"id_materia_prima"`
	Tipo           string          `json:"tipo_movimentacao"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	EstoqueAtual   decimal.Decimal `json:"estoque_atual"`
}

// ItemEstoque linha da visão de estoque com o status derivado.
type ItemEstoque struct {
	MateriaPrimaID string          `json:"id_materia_prima"`
	Codigo         string          `json:"codigo"`
	Descricao      string          `json:"descricao"`
	UnidadeMedida  string          `json:"unidade_medida"`
	EstoqueAtual   decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo  decimal.Decimal `json:"estoque_minimo"`
	Categoria      string          `json:"categoria"`
	StatusEstoque  string          `json:"status_estoque"` // NORMAL | CRÍTICO | ZERADO
	DataCadastro   time.Time       `json:"data_cadastro"`
}

// EstoqueTotalResponse saldo do livro de movimentações para uma matéria-prima.
type EstoqueTotalResponse struct {
	MateriaPrimaID string          `json:"id_materia_prima"`
	EstoqueTotal   decimal.Decimal `json:"estoque_total"`
}
