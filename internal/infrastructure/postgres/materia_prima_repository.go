package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

var _ repository.MateriaPrimaRepository = (*MateriaPrimaRepo)(nil)

// MateriaPrimaRepo implementação do porto MateriaPrimaRepository sobre
// PostgreSQL (usável com pool ou tx).
type MateriaPrimaRepo struct {
	q Querier
}

// NewMateriaPrimaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMateriaPrimaRepository(q Querier) *MateriaPrimaRepo {
	return &MateriaPrimaRepo{q: q}
}

const materiaPrimaColunas = `id_materia_prima, codigo, descricao, unidade_medida, preco_unitario,
		estoque_minimo, estoque_atual, categoria, especificacoes, data_cadastro, ativo`

// Criar persiste uma nova matéria-prima. Código duplicado vira ErrDuplicate.
func (r *MateriaPrimaRepo) Criar(ctx context.Context, m *entity.MateriaPrima) error {
	query := `
		INSERT INTO materia_prima (id_materia_prima, codigo, descricao, unidade_medida, preco_unitario,
		                           estoque_minimo, estoque_atual, categoria, especificacoes, data_cadastro, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Codigo, m.Descricao, m.UnidadeMedida, m.PrecoUnitario,
		m.EstoqueMinimo, m.EstoqueAtual, m.Categoria, m.Especificacoes, m.DataCadastro, m.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert materia_prima: %w", err)
	}
	return nil
}

// BuscarPorID retorna a matéria-prima ativa ou nil se não existir/inativa.
func (r *MateriaPrimaRepo) BuscarPorID(ctx context.Context, id string) (*entity.MateriaPrima, error) {
	query := `SELECT ` + materiaPrimaColunas + `
		FROM materia_prima WHERE id_materia_prima = $1 AND ativo = true`
	m, err := scanMateriaPrima(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get materia_prima: %w", err)
	}
	return m, nil
}

// Listar retorna as matérias-primas ativas ordenadas por descrição.
func (r *MateriaPrimaRepo) Listar(ctx context.Context) ([]*entity.MateriaPrima, error) {
	query := `SELECT ` + materiaPrimaColunas + `
		FROM materia_prima WHERE ativo = true ORDER BY descricao`
	return r.listar(ctx, query)
}

// ListarCriticas retorna as ativas com estoque no limiar mínimo ou abaixo.
func (r *MateriaPrimaRepo) ListarCriticas(ctx context.Context) ([]*entity.MateriaPrima, error) {
	query := `SELECT ` + materiaPrimaColunas + `
		FROM materia_prima WHERE ativo = true AND estoque_atual <= estoque_minimo ORDER BY descricao`
	return r.listar(ctx, query)
}

func (r *MateriaPrimaRepo) listar(ctx context.Context, query string) ([]*entity.MateriaPrima, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materia_prima: %w", err)
	}
	defer rows.Close()
	var list []*entity.MateriaPrima
	for rows.Next() {
		m, err := scanMateriaPrima(rows)
		if err != nil {
			return nil, fmt.Errorf("scan materia_prima: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Atualizar substitui todos os campos editáveis (full replace, não patch).
func (r *MateriaPrimaRepo) Atualizar(ctx context.Context, m *entity.MateriaPrima) (bool, error) {
	query := `
		UPDATE materia_prima
		SET codigo = $2, descricao = $3, unidade_medida = $4, preco_unitario = $5,
		    estoque_minimo = $6, estoque_atual = $7, categoria = $8, especificacoes = $9
		WHERE id_materia_prima = $1 AND ativo = true`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.Codigo, m.Descricao, m.UnidadeMedida, m.PrecoUnitario,
		m.EstoqueMinimo, m.EstoqueAtual, m.Categoria, m.Especificacoes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update materia_prima: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AtualizarPreco altera somente o preço unitário.
func (r *MateriaPrimaRepo) AtualizarPreco(ctx context.Context, id string, preco decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materia_prima SET preco_unitario = $2 WHERE id_materia_prima = $1 AND ativo = true`,
		id, preco,
	)
	if err != nil {
		return false, fmt.Errorf("update preco materia_prima: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Desativar soft delete: só vira ativo=false, a linha nunca é removida.
func (r *MateriaPrimaRepo) Desativar(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materia_prima SET ativo = false WHERE id_materia_prima = $1 AND ativo = true`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("desativar materia_prima: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AjustarEstoque soma delta de forma atômica (sem read-modify-write) e devolve
// o estoque resultante. Chamado dentro da transação de movimentação.
func (r *MateriaPrimaRepo) AjustarEstoque(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	var atual decimal.Decimal
	err := r.q.QueryRow(ctx,
		`UPDATE materia_prima SET estoque_atual = estoque_atual + $2
		 WHERE id_materia_prima = $1 AND ativo = true
		 RETURNING estoque_atual`,
		id, delta,
	).Scan(&atual)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("ajustar estoque: %w", err)
	}
	return atual, nil
}

func scanMateriaPrima(row pgx.Row) (*entity.MateriaPrima, error) {
	var m entity.MateriaPrima
	err := row.Scan(
		&m.ID, &m.Codigo, &m.Descricao, &m.UnidadeMedida, &m.PrecoUnitario,
		&m.EstoqueMinimo, &m.EstoqueAtual, &m.Categoria, &m.Especificacoes, &m.DataCadastro, &m.Ativo,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
