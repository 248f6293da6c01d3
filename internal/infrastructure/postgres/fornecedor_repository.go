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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const fornecedorColunas = `id_fornecedor, razao_social, nome_fantasia, cnpj, inscricao_estadual,
		telefone, email, endereco, cidade, estado, cep, status, data_cadastro`

// Criar persiste um novo fornecedor. CNPJ duplicado vira ErrDuplicate.
func (r *FornecedorRepo) Criar(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedor (id_fornecedor, razao_social, nome_fantasia, cnpj, inscricao_estadual,
		                        telefone, email, endereco, cidade, estado, cep, status, data_cadastro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.RazaoSocial, f.NomeFantasia, f.CNPJ, f.InscricaoEstadual,
		f.Telefone, f.Email, f.Endereco, f.Cidade, f.Estado, f.CEP, f.Status, f.DataCadastro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// BuscarPorID retorna o fornecedor ativo ou nil.
func (r *FornecedorRepo) BuscarPorID(ctx context.Context, id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + `
		FROM fornecedor WHERE id_fornecedor = $1 AND status = 'ativo'`
	f, err := scanFornecedor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// Listar retorna os fornecedores ativos ordenados por razão social.
func (r *FornecedorRepo) Listar(ctx context.Context) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + `
		FROM fornecedor WHERE status = 'ativo' ORDER BY razao_social`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fornecedor: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Atualizar substitui todos os campos editáveis.
func (r *FornecedorRepo) Atualizar(ctx context.Context, f *entity.Fornecedor) (bool, error) {
	query := `
		UPDATE fornecedor
		SET razao_social = $2, nome_fantasia = $3, cnpj = $4, inscricao_estadual = $5,
		    telefone = $6, email = $7, endereco = $8, cidade = $9, estado = $10, cep = $11
		WHERE id_fornecedor = $1 AND status = 'ativo'`
	cmd, err := r.q.Exec(ctx, query,
		f.ID, f.RazaoSocial, f.NomeFantasia, f.CNPJ, f.InscricaoEstadual,
		f.Telefone, f.Email, f.Endereco, f.Cidade, f.Estado, f.CEP,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update fornecedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Desativar soft delete via status.
func (r *FornecedorRepo) Desativar(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE fornecedor SET status = 'inativo' WHERE id_fornecedor = $1 AND status = 'ativo'`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("desativar fornecedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(
		&f.ID, &f.RazaoSocial, &f.NomeFantasia, &f.CNPJ, &f.InscricaoEstadual,
		&f.Telefone, &f.Email, &f.Endereco, &f.Cidade, &f.Estado, &f.CEP, &f.Status, &f.DataCadastro,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
