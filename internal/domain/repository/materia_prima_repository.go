package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// MateriaPrimaRepository porta de persistência de matérias-primas.
// Consultas retornam nil (sem erro) quando o registro não existe ou está inativo.
type MateriaPrimaRepository interface {
	Criar(ctx context.Context, m *entity.MateriaPrima) error
	BuscarPorID(ctx context.Context, id string) (*entity.MateriaPrima, error)
	Listar(ctx context.Context) ([]*entity.MateriaPrima, error)
	ListarCriticas(ctx context.Context) ([]*entity.MateriaPrima, error)
	// Atualizar substitui todos os campos editáveis (full replace).
	// Retorna false quando o registro não existe ou está inativo.
	Atualizar(ctx context.Context, m *entity.MateriaPrima) (bool, error)
	AtualizarPreco(ctx context.Context, id string, preco decimal.Decimal) (bool, error)
	Desativar(ctx context.Context, id string) (bool, error)
	// AjustarEstoque soma delta (negativo para saída) de forma atômica no banco
	// e retorna o estoque resultante. Usado dentro da transação de movimentação.
	AjustarEstoque(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}
