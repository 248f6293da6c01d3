package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Luan-zanardo/Insumix/internal/application/compras"
	appestoque "github.com/Luan-zanardo/Insumix/internal/application/estoque"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

var (
	_ appestoque.TxRunner = (*TxRunner)(nil)
	_ compras.TxRunner    = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL: begin,
// callback com repositórios atados à tx, Commit no sucesso e Rollback em
// qualquer falha. A transação nunca sobrevive à chamada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunMovimentacao abre a transação usada pelo registro de movimentação:
// insert no livro + ajuste atômico do estoque da matéria-prima.
func (r *TxRunner) RunMovimentacao(ctx context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	materiaRepo repository.MateriaPrimaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimentacaoRepository(tx), NewMateriaPrimaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPedido abre a transação da criação de pedido de compra: cabeçalho,
// itens e total em tudo-ou-nada.
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidoRepo repository.PedidoCompraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPedidoCompraRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
