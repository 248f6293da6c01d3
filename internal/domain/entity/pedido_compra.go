package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido de compra. Um pedido só pode ser cancelado
// enquanto estiver pendente ou enviado; o cancelamento não apaga os itens.
const (
	PedidoPendente  = "pendente"
	PedidoEnviado   = "enviado"
	PedidoEntregue  = "entregue"
	PedidoCancelado = "cancelado"
)

// PedidoCompra cabeçalho de um pedido de compra. ValorTotal é derivado:
// soma dos subtotais dos itens, calculada e persistida na criação.
type PedidoCompra struct {
	ID                  string          `json:"id_pedido"`
	FornecedorID        string          `json:"id_fornecedor"`
	UsuarioID           string          `json:"id_usuario"`
	NumeroPedido        string          `json:"numero_pedido"` // único
	DataPedido          time.Time       `json:"data_pedido"`
	DataPrevistaEntrega *time.Time      `json:"data_prevista_entrega,omitempty"`
	Observacoes         string          `json:"observacoes,omitempty"`
	Status              string          `json:"status"`
	ValorTotal          decimal.Decimal `json:"valor_total"`

	// Campos preenchidos nas consultas com join.
	RazaoSocial string `json:"razao_social,omitempty"`
	Usuario     string `json:"usuario,omitempty"`

	// Itens preenchidos na consulta por ID.
	Itens []*ItemPedidoCompra `json:"itens,omitempty"`
}

// ItemPedidoCompra linha de um pedido. Subtotal = Quantidade × PrecoUnitario.
// Nenhum item existe sem o pedido pai.
type ItemPedidoCompra struct {
	ID             string          `json:"id_item"`
	PedidoID       string          `json:"id_pedido"`
	MateriaPrimaID string          `json:"id_materia_prima"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`

	// Campos da matéria-prima preenchidos nas consultas com join.
	Codigo        string `json:"codigo,omitempty"`
	Descricao     string `json:"descricao,omitempty"`
	UnidadeMedida string `json:"unidade_medida,omitempty"`
}
