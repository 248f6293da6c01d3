package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// PedidoCompraRepository porta de persistência de pedidos de compra.
// CriarCabecalho, CriarItem e AtualizarTotal são pensados para rodar dentro
// de uma transação (via TxRunner); as consultas usam o pool direto.
type PedidoCompraRepository interface {
	CriarCabecalho(ctx context.Context, p *entity.PedidoCompra) error
	CriarItem(ctx context.Context, item *entity.ItemPedidoCompra) error
	AtualizarTotal(ctx context.Context, pedidoID string, total decimal.Decimal) error

	// ListarAbertos retorna pedidos pendentes ou enviados, com razão social do
	// fornecedor e nome do usuário, do mais recente para o mais antigo.
	ListarAbertos(ctx context.Context) ([]*entity.PedidoCompra, error)
	ListarTodos(ctx context.Context) ([]*entity.PedidoCompra, error)
	// BuscarPorID retorna o cabeçalho (qualquer status) com os joins; nil se
	// não existir. Os itens vêm por ListarItens.
	BuscarPorID(ctx context.Context, id string) (*entity.PedidoCompra, error)
	ListarItens(ctx context.Context, pedidoID string) ([]*entity.ItemPedidoCompra, error)

	// AtualizarStatus sobrescreve o status sem tabela de transição (comportamento
	// permissivo herdado do sistema). Retorna false se o pedido não existir.
	AtualizarStatus(ctx context.Context, id, status string) (bool, error)
	// Cancelar muda o status para cancelado somente se o atual for pendente ou
	// enviado. Retorna false caso contrário (inclusive pedido inexistente).
	Cancelar(ctx context.Context, id string) (bool, error)
}
