package compras

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação de banco, passando um
// repositório de pedidos atado a essa tx. Cabeçalho, itens e total são
// persistidos em tudo-ou-nada: nenhum pedido parcial fica visível.
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(
		pedidoRepo repository.PedidoCompraRepository,
	) error) error
}
