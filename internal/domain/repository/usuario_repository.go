package repository

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
)

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error
	BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error)
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	Atualizar(ctx context.Context, u *entity.Usuario) (bool, error)
	Desativar(ctx context.Context, id string) (bool, error)
	AtualizarSenha(ctx context.Context, id, senhaHash string) error
}
