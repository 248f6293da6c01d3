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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL,
// incluindo a fórmula (bill of materials).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id_produto, codigo, nome, descricao, unidade_medida,
		preco_venda, estoque_atual, categoria, data_cadastro, ativo`

// Criar persiste um novo produto. Código duplicado vira ErrDuplicate.
func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produto (id_produto, codigo, nome, descricao, unidade_medida,
		                     preco_venda, estoque_atual, categoria, data_cadastro, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nome, p.Descricao, p.UnidadeMedida,
		p.PrecoVenda, p.EstoqueAtual, p.Categoria, p.DataCadastro, p.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorID retorna o produto ativo ou nil.
func (r *ProdutoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + `
		FROM produto WHERE id_produto = $1 AND ativo = true`
	p, err := scanProduto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// Listar retorna os produtos ativos ordenados por nome.
func (r *ProdutoRepo) Listar(ctx context.Context) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + `
		FROM produto WHERE ativo = true ORDER BY nome`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list produto: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Atualizar substitui todos os campos editáveis.
func (r *ProdutoRepo) Atualizar(ctx context.Context, p *entity.Produto) (bool, error) {
	query := `
		UPDATE produto
		SET codigo = $2, nome = $3, descricao = $4, unidade_medida = $5,
		    preco_venda = $6, estoque_atual = $7, categoria = $8
		WHERE id_produto = $1 AND ativo = true`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nome, p.Descricao, p.UnidadeMedida,
		p.PrecoVenda, p.EstoqueAtual, p.Categoria,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update produto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Desativar soft delete.
func (r *ProdutoRepo) Desativar(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produto SET ativo = false WHERE id_produto = $1 AND ativo = true`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("desativar produto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListarFormula linhas ativas da fórmula ordenadas por tipo de uso e descrição.
func (r *ProdutoRepo) ListarFormula(ctx context.Context, produtoID string) ([]*entity.FormulaProduto, error) {
	query := `
		SELECT fp.id_formula, fp.id_produto, fp.id_materia_prima, fp.quantidade_necessaria,
		       fp.tipo_uso, fp.ativo, mp.codigo, mp.descricao, mp.unidade_medida
		FROM formula_produto fp
		JOIN materia_prima mp ON mp.id_materia_prima = fp.id_materia_prima
		WHERE fp.id_produto = $1 AND fp.ativo = true
		ORDER BY fp.tipo_uso, mp.descricao`
	rows, err := r.q.Query(ctx, query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list formula: %w", err)
	}
	defer rows.Close()
	var list []*entity.FormulaProduto
	for rows.Next() {
		var item entity.FormulaProduto
		if err := rows.Scan(&item.ID, &item.ProdutoID, &item.MateriaPrimaID, &item.QuantidadeNecessaria,
			&item.TipoUso, &item.Ativo, &item.Codigo, &item.Descricao, &item.UnidadeMedida); err != nil {
			return nil, fmt.Errorf("scan formula: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// AdicionarItemFormula insere uma linha na fórmula. O par (produto, matéria)
// é único: violação vira ErrDuplicate.
func (r *ProdutoRepo) AdicionarItemFormula(ctx context.Context, item *entity.FormulaProduto) error {
	query := `
		INSERT INTO formula_produto (id_formula, id_produto, id_materia_prima, quantidade_necessaria, tipo_uso, ativo)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ProdutoID, item.MateriaPrimaID, item.QuantidadeNecessaria, item.TipoUso, item.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert formula: %w", err)
	}
	return nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.UnidadeMedida,
		&p.PrecoVenda, &p.EstoqueAtual, &p.Categoria, &p.DataCadastro, &p.Ativo,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
