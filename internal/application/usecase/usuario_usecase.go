package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// UsuarioUseCase CRUD de usuários e troca de senha. Toda senha passa por
// bcrypt antes de chegar ao repositório.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar usuários ativos. O hash de senha nunca sai no JSON.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.repo.Listar(ctx)
}

// BuscarPorID retorna o usuário ativo ou ErrNotFound.
func (uc *UsuarioUseCase) BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	u, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Criar valida obrigatórios, aplica o hash e persiste. Tipo default
// "operador"; e-mail duplicado vira ErrDuplicate.
func (uc *UsuarioUseCase) Criar(ctx context.Context, in dto.CriarUsuarioRequest) (*entity.Usuario, error) {
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.TipoUsuario
	switch tipo {
	case "":
		tipo = entity.UsuarioOperador
	case entity.UsuarioOperador, entity.UsuarioAdministrador:
	default:
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        in.Email,
		SenhaHash:    string(hash),
		TipoUsuario:  tipo,
		DataCadastro: time.Now(),
		Ativo:        true,
	}
	if err := uc.repo.Criar(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Atualizar altera nome, e-mail e tipo. A senha só muda via TrocarSenha.
func (uc *UsuarioUseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarUsuarioRequest) (*entity.Usuario, error) {
	if in.Nome == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.TipoUsuario
	switch tipo {
	case entity.UsuarioOperador, entity.UsuarioAdministrador:
	default:
		return nil, domain.ErrInvalidInput
	}
	u := &entity.Usuario{
		ID:          id,
		Nome:        in.Nome,
		Email:       in.Email,
		TipoUsuario: tipo,
	}
	ok, err := uc.repo.Atualizar(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.BuscarPorID(ctx, id)
}

// TrocarSenha confere a senha atual contra o hash armazenado antes de gravar
// a nova. Senha atual errada vira ErrUnauthorized.
func (uc *UsuarioUseCase) TrocarSenha(ctx context.Context, id string, in dto.TrocarSenhaRequest) error {
	if in.SenhaAtual == "" || in.NovaSenha == "" {
		return domain.ErrInvalidInput
	}
	u, err := uc.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.SenhaAtual)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.AtualizarSenha(ctx, id, string(hash))
}

// Desativar soft delete; o histórico de movimentações mantém a referência.
func (uc *UsuarioUseCase) Desativar(ctx context.Context, id string) error {
	ok, err := uc.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
