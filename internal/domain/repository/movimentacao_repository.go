package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// MovimentacaoEstoqueRepository porta do livro de movimentações (append-only;
// não há update nem delete de movimentações).
type MovimentacaoEstoqueRepository interface {
	Criar(ctx context.Context, m *entity.MovimentacaoEstoque) error
	// Historico lista movimentações com descrição da matéria-prima e nome do
	// usuário. materiaID vazio lista todas; limite <= 0 usa o padrão do adaptador.
	Historico(ctx context.Context, materiaID string, limite int) ([]*entity.MovimentacaoEstoque, error)
	// Saldo soma o livro do zero: entradas positivas, saídas negativas.
	Saldo(ctx context.Context, materiaID string) (decimal.Decimal, error)
}
