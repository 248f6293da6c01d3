package compras

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// Criar cria um pedido de compra completo em uma única transação:
// cabeçalho (status pendente), itens na ordem de entrada com
// subtotal = quantidade × preço, e o valor total acumulado gravado no
// cabeçalho. Qualquer falha no caminho desfaz tudo — número de pedido
// duplicado chega ao chamador como ErrDuplicate.
func (uc *PedidoUseCase) Criar(ctx context.Context, in dto.CriarPedidoRequest) (*entity.PedidoCompra, error) {
	if in.FornecedorID == "" || in.UsuarioID == "" || in.NumeroPedido == "" || len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Itens {
		if item.MateriaPrimaID == "" || !item.Quantidade.GreaterThan(decimal.Zero) ||
			item.PrecoUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	pedido := &entity.PedidoCompra{
		ID:                  uuid.New().String(),
		FornecedorID:        in.FornecedorID,
		UsuarioID:           in.UsuarioID,
		NumeroPedido:        in.NumeroPedido,
		DataPedido:          time.Now(),
		DataPrevistaEntrega: in.DataPrevistaEntrega,
		Observacoes:         in.Observacoes,
		Status:              entity.PedidoPendente,
		ValorTotal:          decimal.Zero,
	}

	var itens []*entity.ItemPedidoCompra
	err := uc.txRunner.RunPedido(ctx, func(pedidoRepo repository.PedidoCompraRepository) error {
		if err := pedidoRepo.CriarCabecalho(ctx, pedido); err != nil {
			return err
		}
		total := decimal.Zero
		for _, item := range in.Itens {
			subtotal := item.Quantidade.Mul(item.PrecoUnitario)
			linha := &entity.ItemPedidoCompra{
				ID:             uuid.New().String(),
				PedidoID:       pedido.ID,
				MateriaPrimaID: item.MateriaPrimaID,
				Quantidade:     item.Quantidade,
				PrecoUnitario:  item.PrecoUnitario,
				Subtotal:       subtotal,
			}
			if err := pedidoRepo.CriarItem(ctx, linha); err != nil {
				return err
			}
			total = total.Add(subtotal)
			itens = append(itens, linha)
		}
		if err := pedidoRepo.AtualizarTotal(ctx, pedido.ID, total); err != nil {
			return err
		}
		pedido.ValorTotal = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	pedido.Itens = itens
	return pedido, nil
}
