package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luan-zanardo/Insumix/internal/application/compras"
	"github.com/Luan-zanardo/Insumix/internal/application/estoque"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// Fakes em memória só com o que estes testes tocam.

type memPedidoRepo struct {
	pedidos map[string]*entity.PedidoCompra
	itens   []*entity.ItemPedidoCompra
	numeros map[string]bool
}

func newMemPedidoRepo() *memPedidoRepo {
	return &memPedidoRepo{pedidos: map[string]*entity.PedidoCompra{}, numeros: map[string]bool{}}
}

func (r *memPedidoRepo) CriarCabecalho(_ context.Context, p *entity.PedidoCompra) error {
	if r.numeros[p.NumeroPedido] {
		return domain.ErrDuplicate
	}
	clone := *p
	r.pedidos[p.ID] = &clone
	r.numeros[p.NumeroPedido] = true
	return nil
}

func (r *memPedidoRepo) CriarItem(_ context.Context, item *entity.ItemPedidoCompra) error {
	clone := *item
	r.itens = append(r.itens, &clone)
	return nil
}

func (r *memPedidoRepo) AtualizarTotal(_ context.Context, pedidoID string, total decimal.Decimal) error {
	p, ok := r.pedidos[pedidoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.ValorTotal = total
	return nil
}

func (r *memPedidoRepo) ListarAbertos(_ context.Context) ([]*entity.PedidoCompra, error) {
	out := []*entity.PedidoCompra{}
	for _, p := range r.pedidos {
		if p.Status == entity.PedidoPendente || p.Status == entity.PedidoEnviado {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPedidoRepo) ListarTodos(_ context.Context) ([]*entity.PedidoCompra, error) {
	out := []*entity.PedidoCompra{}
	for _, p := range r.pedidos {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPedidoRepo) BuscarPorID(_ context.Context, id string) (*entity.PedidoCompra, error) {
	return r.pedidos[id], nil
}

func (r *memPedidoRepo) ListarItens(_ context.Context, pedidoID string) ([]*entity.ItemPedidoCompra, error) {
	var out []*entity.ItemPedidoCompra
	for _, item := range r.itens {
		if item.PedidoID == pedidoID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memPedidoRepo) AtualizarStatus(_ context.Context, id, status string) (bool, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	return true, nil
}

func (r *memPedidoRepo) Cancelar(_ context.Context, id string) (bool, error) {
	p, ok := r.pedidos[id]
	if !ok || (p.Status != entity.PedidoPendente && p.Status != entity.PedidoEnviado) {
		return false, nil
	}
	p.Status = entity.PedidoCancelado
	return true, nil
}

type memPedidoTxRunner struct{ repo *memPedidoRepo }

func (t *memPedidoTxRunner) RunPedido(ctx context.Context, fn func(repository.PedidoCompraRepository) error) error {
	return fn(t.repo)
}

type memMateriaRepo struct {
	materias map[string]*entity.MateriaPrima
}

func (r *memMateriaRepo) Criar(_ context.Context, m *entity.MateriaPrima) error {
	r.materias[m.ID] = m
	return nil
}

func (r *memMateriaRepo) BuscarPorID(_ context.Context, id string) (*entity.MateriaPrima, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return nil, nil
	}
	return m, nil
}

func (r *memMateriaRepo) Listar(_ context.Context) ([]*entity.MateriaPrima, error) {
	out := []*entity.MateriaPrima{}
	for _, m := range r.materias {
		if m.Ativo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMateriaRepo) ListarCriticas(_ context.Context) ([]*entity.MateriaPrima, error) {
	return nil, nil
}

func (r *memMateriaRepo) Atualizar(_ context.Context, m *entity.MateriaPrima) (bool, error) {
	_, ok := r.materias[m.ID]
	return ok, nil
}

func (r *memMateriaRepo) AtualizarPreco(_ context.Context, id string, preco decimal.Decimal) (bool, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return false, nil
	}
	m.PrecoUnitario = preco
	return true, nil
}

func (r *memMateriaRepo) Desativar(_ context.Context, id string) (bool, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return false, nil
	}
	m.Ativo = false
	return true, nil
}

func (r *memMateriaRepo) AjustarEstoque(_ context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return decimal.Zero, domain.ErrNotFound
	}
	m.EstoqueAtual = m.EstoqueAtual.Add(delta)
	return m.EstoqueAtual, nil
}

type memMovRepo struct {
	movs []*entity.MovimentacaoEstoque
}

func (r *memMovRepo) Criar(_ context.Context, m *entity.MovimentacaoEstoque) error {
	r.movs = append(r.movs, m)
	return nil
}

func (r *memMovRepo) Historico(_ context.Context, _ string, _ int) ([]*entity.MovimentacaoEstoque, error) {
	return r.movs, nil
}

func (r *memMovRepo) Saldo(_ context.Context, materiaID string) (decimal.Decimal, error) {
	saldo := decimal.Zero
	for _, m := range r.movs {
		if m.MateriaPrimaID != materiaID {
			continue
		}
		if m.Tipo == entity.MovimentacaoEntrada {
			saldo = saldo.Add(m.Quantidade)
		} else {
			saldo = saldo.Sub(m.Quantidade)
		}
	}
	return saldo, nil
}

type memMovTxRunner struct {
	movRepo     *memMovRepo
	materiaRepo *memMateriaRepo
}

func (t *memMovTxRunner) RunMovimentacao(ctx context.Context, fn func(
	repository.MovimentacaoEstoqueRepository,
	repository.MateriaPrimaRepository,
) error) error {
	return fn(t.movRepo, t.materiaRepo)
}

func novaApp(t *testing.T) (*fiber.App, *memPedidoRepo, *memMateriaRepo) {
	t.Helper()
	pedidoRepo := newMemPedidoRepo()
	materiaRepo := &memMateriaRepo{materias: map[string]*entity.MateriaPrima{}}
	movRepo := &memMovRepo{}

	app := fiber.New()
	Router(app, RouterDeps{
		MateriaPrimaUC: usecase.NewMateriaPrimaUseCase(materiaRepo),
		MovimentacaoUC: estoque.NewMovimentacaoUseCase(&memMovTxRunner{movRepo: movRepo, materiaRepo: materiaRepo}, materiaRepo),
		ConsultaUC:     estoque.NewConsultaUseCase(materiaRepo, movRepo),
		PedidoUC:       compras.NewPedidoUseCase(&memPedidoTxRunner{repo: pedidoRepo}, pedidoRepo),
	})
	return app, pedidoRepo, materiaRepo
}

func doPost(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func pedidoBody() map[string]any {
	return map[string]any{
		"id_fornecedor": "forn-1",
		"id_usuario":    "user-1",
		"numero_pedido": "PC-2026-001",
		"itens": []map[string]any{
			{"id_materia_prima": "mp-1", "quantidade": "2", "preco_unitario": "10"},
			{"id_materia_prima": "mp-2", "quantidade": "3", "preco_unitario": "5"},
		},
	}
}

func TestPostPedidoCriado(t *testing.T) {
	app, _, _ := novaApp(t)

	status, out := doPost(t, app, "/api/pedidos-compra", pedidoBody())
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, out["success"])

	data := out["data"].(map[string]any)
	assert.Equal(t, "pendente", data["status"])
	assert.Equal(t, "35", data["valor_total"])
}

func TestPostPedidoSemItens(t *testing.T) {
	app, repo, _ := novaApp(t)

	body := pedidoBody()
	body["itens"] = []map[string]any{}
	status, out := doPost(t, app, "/api/pedidos-compra", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, out["success"])
	assert.NotEmpty(t, out["message"])
	assert.Empty(t, repo.pedidos)
}

func TestPostPedidoNumeroDuplicado(t *testing.T) {
	app, _, _ := novaApp(t)

	status, _ := doPost(t, app, "/api/pedidos-compra", pedidoBody())
	require.Equal(t, fiber.StatusCreated, status)

	status, out := doPost(t, app, "/api/pedidos-compra", pedidoBody())
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, out["success"])
}

func TestPostMovimentacao(t *testing.T) {
	app, _, materiaRepo := novaApp(t)
	materiaRepo.materias["mp-1"] = &entity.MateriaPrima{
		ID: "mp-1", Codigo: "RES-001", Descricao: "Resina",
		UnidadeMedida: "kg", EstoqueMinimo: decimal.NewFromInt(10),
		Categoria: "resinas", DataCadastro: time.Now(), Ativo: true,
	}

	status, out := doPost(t, app, "/api/estoque/movimentacao", map[string]any{
		"id_materia_prima":  "mp-1",
		"id_usuario":        "user-1",
		"tipo_movimentacao": "entrada",
		"quantidade":        "100",
	})
	require.Equal(t, fiber.StatusCreated, status)
	data := out["data"].(map[string]any)
	assert.Equal(t, "100", data["estoque_atual"])
}

func TestPostMovimentacaoMateriaDesconhecida(t *testing.T) {
	app, _, _ := novaApp(t)

	status, out := doPost(t, app, "/api/estoque/movimentacao", map[string]any{
		"id_materia_prima":  "nao-existe",
		"id_usuario":        "user-1",
		"tipo_movimentacao": "entrada",
		"quantidade":        "5",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, out["success"])
}

func TestGetEstoqueEnvelope(t *testing.T) {
	app, _, materiaRepo := novaApp(t)
	materiaRepo.materias["mp-1"] = &entity.MateriaPrima{
		ID: "mp-1", Codigo: "RES-001", Descricao: "Resina",
		UnidadeMedida: "kg", EstoqueAtual: decimal.NewFromInt(5),
		EstoqueMinimo: decimal.NewFromInt(10), Categoria: "resinas",
		DataCadastro: time.Now(), Ativo: true,
	}

	status, out := doGet(t, app, "/api/estoque")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(1), out["total"])
	assert.Equal(t, float64(1), out["criticos"])
}

func TestGetMateriaPrimaInexistente(t *testing.T) {
	app, _, _ := novaApp(t)

	status, out := doGet(t, app, "/api/materias-primas/nao-existe")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "matéria-prima não encontrada", out["message"])
}
