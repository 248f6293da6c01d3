package compras

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos de compra. A criação (criar_pedido.go)
// roda via TxRunner; consultas, status e cancelamento usam o repositório
// atado ao pool.
type PedidoUseCase struct {
	txRunner   TxRunner
	pedidoRepo repository.PedidoCompraRepository
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(txRunner TxRunner, pedidoRepo repository.PedidoCompraRepository) *PedidoUseCase {
	return &PedidoUseCase{txRunner: txRunner, pedidoRepo: pedidoRepo}
}

// ListarAbertos pedidos pendentes ou enviados.
func (uc *PedidoUseCase) ListarAbertos(ctx context.Context) ([]*entity.PedidoCompra, error) {
	return uc.pedidoRepo.ListarAbertos(ctx)
}

// ListarTodos todos os pedidos, inclusive entregues e cancelados.
func (uc *PedidoUseCase) ListarTodos(ctx context.Context) ([]*entity.PedidoCompra, error) {
	return uc.pedidoRepo.ListarTodos(ctx)
}

// BuscarPorID cabeçalho com itens; ErrNotFound se o cabeçalho não existir.
func (uc *PedidoUseCase) BuscarPorID(ctx context.Context, id string) (*entity.PedidoCompra, error) {
	pedido, err := uc.pedidoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.pedidoRepo.ListarItens(ctx, id)
	if err != nil {
		return nil, err
	}
	pedido.Itens = itens
	return pedido, nil
}

// AtualizarStatus sobrescreve o status do pedido. Não há tabela de transição:
// qualquer valor é aceito, inclusive reabrir um pedido cancelado.
func (uc *PedidoUseCase) AtualizarStatus(ctx context.Context, id, status string) (*entity.PedidoCompra, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.pedidoRepo.AtualizarStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.pedidoRepo.BuscarPorID(ctx, id)
}

// Cancelar muda o status para cancelado, permitido apenas a partir de
// pendente ou enviado. Os itens permanecem para histórico.
func (uc *PedidoUseCase) Cancelar(ctx context.Context, id string) error {
	ok, err := uc.pedidoRepo.Cancelar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
