package repository

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// ProdutoRepository porta de persistência de produtos e suas fórmulas.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *entity.Produto) error
	BuscarPorID(ctx context.Context, id string) (*entity.Produto, error)
	Listar(ctx context.Context) ([]*entity.Produto, error)
	Atualizar(ctx context.Context, p *entity.Produto) (bool, error)
	Desativar(ctx context.Context, id string) (bool, error)

	// ListarFormula retorna as linhas ativas da fórmula, ordenadas por tipo de
	// uso e descrição da matéria-prima.
	ListarFormula(ctx context.Context, produtoID string) ([]*entity.FormulaProduto, error)
	AdicionarItemFormula(ctx context.Context, item *entity.FormulaProduto) error
}
