package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto item acabado vendável. Possui uma fórmula (lista de matérias-primas).
type Produto struct {
	ID            string          `json:"id_produto"`
	Codigo        string          `json:"codigo"` // único entre registros ativos
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao,omitempty"`
	UnidadeMedida string          `json:"unidade_medida"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	Categoria     string          `json:"categoria"`
	DataCadastro  time.Time       `json:"data_cadastro"`
	Ativo         bool            `json:"ativo"`
}

// Tipos de uso de uma matéria-prima na fórmula.
const (
	TipoUsoPrincipal = "principal"
	TipoUsoAuxiliar  = "auxiliar"
)

// FormulaProduto linha da fórmula (bill of materials) de um produto.
// O par (produto, matéria-prima) é único.
type FormulaProduto struct {
	ID                    string          `json:"id_formula"`
	ProdutoID             string          `json:"id_produto"`
	MateriaPrimaID        string          `json:"id_materia_prima"`
	QuantidadeNecessaria  decimal.Decimal `json:"quantidade_necessaria"`
	TipoUso               string          `json:"tipo_uso"`
	Ativo                 bool            `json:"ativo"`

	// Campos da matéria-prima preenchidos nas consultas com join.
	Codigo        string `json:"codigo,omitempty"`
	Descricao     string `json:"descricao,omitempty"`
	UnidadeMedida string `json:"unidade_medida,omitempty"`
}
