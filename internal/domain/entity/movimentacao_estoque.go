package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque (vocabulário fechado).
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
)

// MovimentacaoEstoque é uma linha imutável do livro de estoque (append-only).
// Quantidade é sempre estritamente positiva; o sinal vem do Tipo.
type MovimentacaoEstoque struct {
	ID                  string          `json:"id_movimentacao"`
	MateriaPrimaID      string          `json:"id_materia_prima"`
	UsuarioID           string          `json:"id_usuario"`
	Tipo                string          `json:"tipo_movimentacao"` // entrada | saida
	Quantidade          decimal.Decimal `json:"quantidade"`
	DocumentoReferencia string          `json:"documento_referencia,omitempty"`
	Observacoes         string          `json:"observacoes,omitempty"`
	DataMovimentacao    time.Time       `json:"data_movimentacao"`

	// Campos preenchidos apenas nas consultas com join (histórico).
	MateriaPrima string `json:"materia_prima,omitempty"`
	Usuario      string `json:"usuario,omitempty"`
}
