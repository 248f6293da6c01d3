package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MateriaPrima representa um insumo do estoque. EstoqueAtual é mantido pelo
// livro de movimentações (ajuste atômico na mesma transação da movimentação);
// nunca é editado diretamente fora do update completo do cadastro.
type MateriaPrima struct {
	ID             string          `json:"id_materia_prima"`
	Codigo         string          `json:"codigo"` // único entre registros ativos
	Descricao      string          `json:"descricao"`
	UnidadeMedida  string          `json:"unidade_medida"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"` // 4 casas decimais
	EstoqueMinimo  decimal.Decimal `json:"estoque_minimo"`
	EstoqueAtual   decimal.Decimal `json:"estoque_atual"`
	Categoria      string          `json:"categoria"`
	Especificacoes string          `json:"especificacoes,omitempty"`
	DataCadastro   time.Time       `json:"data_cadastro"`
	Ativo          bool            `json:"ativo"`
}
