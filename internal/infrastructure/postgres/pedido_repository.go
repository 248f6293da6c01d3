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

var _ repository.PedidoCompraRepository = (*PedidoCompraRepo)(nil)

// PedidoCompraRepo implementação do porto PedidoCompraRepository sobre
// PostgreSQL (usável com pool ou tx — as escritas da criação rodam em tx).
type PedidoCompraRepo struct {
	q Querier
}

// NewPedidoCompraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPedidoCompraRepository(q Querier) *PedidoCompraRepo {
	return &PedidoCompraRepo{q: q}
}

// CriarCabecalho insere o cabeçalho do pedido. Número duplicado vira ErrDuplicate.
func (r *PedidoCompraRepo) CriarCabecalho(ctx context.Context, p *entity.PedidoCompra) error {
	query := `
		INSERT INTO pedido_compra (id_pedido, id_fornecedor, id_usuario, numero_pedido,
		                           data_pedido, data_prevista_entrega, observacoes, status, valor_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FornecedorID, p.UsuarioID, p.NumeroPedido,
		p.DataPedido, p.DataPrevistaEntrega, p.Observacoes, p.Status, p.ValorTotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CriarItem insere uma linha do pedido com o subtotal já calculado.
func (r *PedidoCompraRepo) CriarItem(ctx context.Context, item *entity.ItemPedidoCompra) error {
	query := `
		INSERT INTO item_pedido_compra (id_item, id_pedido, id_materia_prima, quantidade, preco_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.PedidoID, item.MateriaPrimaID, item.Quantidade, item.PrecoUnitario, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert item_pedido: %w", err)
	}
	return nil
}

// AtualizarTotal grava o valor total derivado no cabeçalho.
func (r *PedidoCompraRepo) AtualizarTotal(ctx context.Context, pedidoID string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE pedido_compra SET valor_total = $2 WHERE id_pedido = $1`,
		pedidoID, total,
	)
	if err != nil {
		return fmt.Errorf("update valor_total: %w", err)
	}
	return nil
}

const pedidoJoin = `
		SELECT p.id_pedido, p.id_fornecedor, p.id_usuario, p.numero_pedido,
		       p.data_pedido, p.data_prevista_entrega, p.observacoes, p.status, p.valor_total,
		       f.razao_social, u.nome AS usuario
		FROM pedido_compra p
		JOIN fornecedor f ON f.id_fornecedor = p.id_fornecedor
		JOIN usuario u ON u.id_usuario = p.id_usuario`

// ListarAbertos pedidos pendentes ou enviados, do mais recente para o mais antigo.
func (r *PedidoCompraRepo) ListarAbertos(ctx context.Context) ([]*entity.PedidoCompra, error) {
	query := pedidoJoin + `
		WHERE p.status IN ('pendente', 'enviado')
		ORDER BY p.data_pedido DESC`
	return r.listar(ctx, query)
}

// ListarTodos todos os pedidos independente do status.
func (r *PedidoCompraRepo) ListarTodos(ctx context.Context) ([]*entity.PedidoCompra, error) {
	query := pedidoJoin + ` ORDER BY p.data_pedido DESC`
	return r.listar(ctx, query)
}

func (r *PedidoCompraRepo) listar(ctx context.Context, query string) ([]*entity.PedidoCompra, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.PedidoCompra
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// BuscarPorID cabeçalho com joins, qualquer status; nil se não existir.
func (r *PedidoCompraRepo) BuscarPorID(ctx context.Context, id string) (*entity.PedidoCompra, error) {
	p, err := scanPedido(r.q.QueryRow(ctx, pedidoJoin+` WHERE p.id_pedido = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// ListarItens linhas do pedido com os campos da matéria-prima, por descrição.
func (r *PedidoCompraRepo) ListarItens(ctx context.Context, pedidoID string) ([]*entity.ItemPedidoCompra, error) {
	query := `
		SELECT i.id_item, i.id_pedido, i.id_materia_prima, i.quantidade, i.preco_unitario, i.subtotal,
		       mp.codigo, mp.descricao, mp.unidade_medida
		FROM item_pedido_compra i
		JOIN materia_prima mp ON mp.id_materia_prima = i.id_materia_prima
		WHERE i.id_pedido = $1
		ORDER BY mp.descricao`
	rows, err := r.q.Query(ctx, query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list itens pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemPedidoCompra
	for rows.Next() {
		var item entity.ItemPedidoCompra
		if err := rows.Scan(&item.ID, &item.PedidoID, &item.MateriaPrimaID,
			&item.Quantidade, &item.PrecoUnitario, &item.Subtotal,
			&item.Codigo, &item.Descricao, &item.UnidadeMedida); err != nil {
			return nil, fmt.Errorf("scan item pedido: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// AtualizarStatus sobrescreve o status sem validar transição.
func (r *PedidoCompraRepo) AtualizarStatus(ctx context.Context, id, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedido_compra SET status = $2 WHERE id_pedido = $1`,
		id, status,
	)
	if err != nil {
		return false, fmt.Errorf("update status pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Cancelar só a partir de pendente ou enviado; os itens ficam para histórico.
func (r *PedidoCompraRepo) Cancelar(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedido_compra SET status = 'cancelado'
		 WHERE id_pedido = $1 AND status IN ('pendente', 'enviado')`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("cancelar pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanPedido(row pgx.Row) (*entity.PedidoCompra, error) {
	var p entity.PedidoCompra
	err := row.Scan(
		&p.ID, &p.FornecedorID, &p.UsuarioID, &p.NumeroPedido,
		&p.DataPedido, &p.DataPrevistaEntrega, &p.Observacoes, &p.Status, &p.ValorTotal,
		&p.RazaoSocial, &p.Usuario,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
