package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

var _ repository.MovimentacaoEstoqueRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do livro de movimentações sobre PostgreSQL
// (usável com pool ou tx). Só insere e consulta: o livro é append-only.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar persiste uma movimentação imutável.
func (r *MovimentacaoRepo) Criar(ctx context.Context, m *entity.MovimentacaoEstoque) error {
	query := `
		INSERT INTO movimentacao_estoque (id_movimentacao, id_materia_prima, id_usuario, tipo_movimentacao,
		                                  quantidade, documento_referencia, observacoes, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.MateriaPrimaID, m.UsuarioID, m.Tipo,
		m.Quantidade, m.DocumentoReferencia, m.Observacoes, m.DataMovimentacao,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// Historico lista movimentações com descrição da matéria-prima e nome do
// usuário, da mais recente para a mais antiga.
func (r *MovimentacaoRepo) Historico(ctx context.Context, materiaID string, limite int) ([]*entity.MovimentacaoEstoque, error) {
	if limite <= 0 {
		limite = 50
	}
	query := `
		SELECT m.id_movimentacao, m.id_materia_prima, m.id_usuario, m.tipo_movimentacao,
		       m.quantidade, m.documento_referencia, m.observacoes, m.data_movimentacao,
		       mp.descricao AS materia_prima, u.nome AS usuario
		FROM movimentacao_estoque m
		JOIN materia_prima mp ON mp.id_materia_prima = m.id_materia_prima
		JOIN usuario u ON u.id_usuario = m.id_usuario`
	args := []any{}
	if materiaID != "" {
		query += ` WHERE m.id_materia_prima = $1`
		args = append(args, materiaID)
	}
	query += fmt.Sprintf(` ORDER BY m.data_movimentacao DESC LIMIT $%d`, len(args)+1)
	args = append(args, limite)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("historico movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		if err := rows.Scan(&m.ID, &m.MateriaPrimaID, &m.UsuarioID, &m.Tipo,
			&m.Quantidade, &m.DocumentoReferencia, &m.Observacoes, &m.DataMovimentacao,
			&m.MateriaPrima, &m.Usuario); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Saldo replay do livro a partir do zero: entradas somam, saídas subtraem.
// Deve reconciliar com materia_prima.estoque_atual.
func (r *MovimentacaoRepo) Saldo(ctx context.Context, materiaID string) (decimal.Decimal, error) {
	var saldo decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN tipo_movimentacao = 'entrada' THEN quantidade ELSE -quantidade END), 0)
		FROM movimentacao_estoque WHERE id_materia_prima = $1`,
		materiaID,
	).Scan(&saldo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("saldo movimentacoes: %w", err)
	}
	return saldo, nil
}
