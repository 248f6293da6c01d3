package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemPedidoRequest linha de um pedido de compra a criar.
type ItemPedidoRequest struct {
	MateriaPrimaID string          `json:"id_materia_prima"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
}

// CriarPedidoRequest body para POST /pedidos-compra. O pedido precisa de ao
// menos um item; o valor total é derivado, nunca aceito do cliente.
type CriarPedidoRequest struct {
	FornecedorID        string              `json:"id_fornecedor"`
	UsuarioID           string              `json:"id_usuario"`
	NumeroPedido        string              `json:"numero_pedido"`
	DataPrevistaEntrega *time.Time          `json:"data_prevista_entrega,omitempty"`
	Observacoes         string              `json:"observacoes"`
	Itens               []ItemPedidoRequest `json:"itens"`
}

// AtualizarStatusRequest body para PUT /pedidos-compra/:id/status.
type AtualizarStatusRequest struct {
	Status string `json:"status"`
}
