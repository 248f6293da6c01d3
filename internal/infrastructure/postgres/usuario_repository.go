package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColunas = `id_usuario, nome, email, senha, tipo_usuario, data_cadastro, ativo`

// Criar persiste um novo usuário (senha já em hash). Email duplicado vira ErrDuplicate.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuario (id_usuario, nome, email, senha, tipo_usuario, data_cadastro, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.TipoUsuario, u.DataCadastro, u.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorID retorna o usuário ativo (incluindo o hash, que o use case não
// expõe) ou nil.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + `
		FROM usuario WHERE id_usuario = $1 AND ativo = true`
	u, err := scanUsuario(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// Listar retorna os usuários ativos ordenados por nome.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + `
		FROM usuario WHERE ativo = true ORDER BY nome`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuario: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Atualizar altera nome, email e tipo; a senha só muda via AtualizarSenha.
func (r *UsuarioRepo) Atualizar(ctx context.Context, u *entity.Usuario) (bool, error) {
	query := `
		UPDATE usuario SET nome = $2, email = $3, tipo_usuario = $4
		WHERE id_usuario = $1 AND ativo = true`
	cmd, err := r.q.Exec(ctx, query, u.ID, u.Nome, u.Email, u.TipoUsuario)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Desativar soft delete.
func (r *UsuarioRepo) Desativar(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE usuario SET ativo = false WHERE id_usuario = $1 AND ativo = true`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("desativar usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AtualizarSenha grava o novo hash.
func (r *UsuarioRepo) AtualizarSenha(ctx context.Context, id, senhaHash string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE usuario SET senha = $2 WHERE id_usuario = $1`,
		id, senhaHash,
	)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.TipoUsuario, &u.DataCadastro, &u.Ativo)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
