package repository

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// FornecedorRepository porta de persistência de fornecedores.
type FornecedorRepository interface {
	Criar(ctx context.Context, f *entity.Fornecedor) error
	BuscarPorID(ctx context.Context, id string) (*entity.Fornecedor, error)
	Listar(ctx context.Context) ([]*entity.Fornecedor, error)
	Atualizar(ctx context.Context, f *entity.Fornecedor) (bool, error)
	Desativar(ctx context.Context, id string) (bool, error)
}
