package estoque

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	domestoque "github.com/Luan-zanardo/Insumix/internal/domain/estoque"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// fakeMateriaRepo só implementa o que o caso de uso de movimentação toca.
type fakeMateriaRepo struct {
	materias map[string]*entity.MateriaPrima
}

func (r *fakeMateriaRepo) Criar(_ context.Context, m *entity.MateriaPrima) error {
	r.materias[m.ID] = m
	return nil
}

func (r *fakeMateriaRepo) BuscarPorID(_ context.Context, id string) (*entity.MateriaPrima, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return nil, nil
	}
	return m, nil
}

func (r *fakeMateriaRepo) Listar(_ context.Context) ([]*entity.MateriaPrima, error) {
	var out []*entity.MateriaPrima
	for _, m := range r.materias {
		if m.Ativo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMateriaRepo) ListarCriticas(_ context.Context) ([]*entity.MateriaPrima, error) {
	var out []*entity.MateriaPrima
	for _, m := range r.materias {
		if m.Ativo && m.EstoqueAtual.LessThanOrEqual(m.EstoqueMinimo) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMateriaRepo) Atualizar(_ context.Context, m *entity.MateriaPrima) (bool, error) {
	atual, ok := r.materias[m.ID]
	if !ok || !atual.Ativo {
		return false, nil
	}
	m.Ativo = true
	r.materias[m.ID] = m
	return true, nil
}

func (r *fakeMateriaRepo) AtualizarPreco(_ context.Context, id string, preco decimal.Decimal) (bool, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return false, nil
	}
	m.PrecoUnitario = preco
	return true, nil
}

func (r *fakeMateriaRepo) Desativar(_ context.Context, id string) (bool, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return false, nil
	}
	m.Ativo = false
	return true, nil
}

func (r *fakeMateriaRepo) AjustarEstoque(_ context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	m, ok := r.materias[id]
	if !ok || !m.Ativo {
		return decimal.Zero, domain.ErrNotFound
	}
	m.EstoqueAtual = m.EstoqueAtual.Add(delta)
	return m.EstoqueAtual, nil
}

type fakeMovRepo struct {
	movs []*entity.MovimentacaoEstoque
}

func (r *fakeMovRepo) Criar(_ context.Context, m *entity.MovimentacaoEstoque) error {
	clone := *m
	r.movs = append(r.movs, &clone)
	return nil
}

func (r *fakeMovRepo) Historico(_ context.Context, materiaID string, limite int) ([]*entity.MovimentacaoEstoque, error) {
	var out []*entity.MovimentacaoEstoque
	for _, m := range r.movs {
		if materiaID == "" || m.MateriaPrimaID == materiaID {
			out = append(out, m)
		}
	}
	if limite > 0 && len(out) > limite {
		out = out[:limite]
	}
	return out, nil
}

func (r *fakeMovRepo) Saldo(_ context.Context, materiaID string) (decimal.Decimal, error) {
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

// fakeMovTxRunner passa os repositórios direto; o suficiente para validar a
// lógica do caso de uso, já que o rollback real é coberto pelo adaptador.
type fakeMovTxRunner struct {
	movRepo     repository.MovimentacaoEstoqueRepository
	materiaRepo repository.MateriaPrimaRepository
}

func (t *fakeMovTxRunner) RunMovimentacao(ctx context.Context, fn func(
	repository.MovimentacaoEstoqueRepository,
	repository.MateriaPrimaRepository,
) error) error {
	return fn(t.movRepo, t.materiaRepo)
}

func novaMateria(id string, atual, minimo int64) *entity.MateriaPrima {
	return &entity.MateriaPrima{
		ID:            id,
		Codigo:        "MP-" + id,
		Descricao:     "Matéria " + id,
		UnidadeMedida: "kg",
		EstoqueAtual:  decimal.NewFromInt(atual),
		EstoqueMinimo: decimal.NewFromInt(minimo),
		Categoria:     "resinas",
		DataCadastro:  time.Now(),
		Ativo:         true,
	}
}

func setupMovimentacao() (*fakeMateriaRepo, *fakeMovRepo, *MovimentacaoUseCase) {
	materiaRepo := &fakeMateriaRepo{materias: map[string]*entity.MateriaPrima{}}
	movRepo := &fakeMovRepo{}
	runner := &fakeMovTxRunner{movRepo: movRepo, materiaRepo: materiaRepo}
	return materiaRepo, movRepo, NewMovimentacaoUseCase(runner, materiaRepo)
}

func movRequest(materiaID, tipo string, qtd decimal.Decimal) dto.MovimentacaoRequest {
	return dto.MovimentacaoRequest{
		MateriaPrimaID: materiaID,
		UsuarioID:      "user-1",
		Tipo:           tipo,
		Quantidade:     qtd,
	}
}

func TestRegistrarEntradaESaida(t *testing.T) {
	materiaRepo, movRepo, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 0, 10)

	resp, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoEntrada, decimal.NewFromInt(100)))
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAtual.Equal(decimal.NewFromInt(100)))

	resp, err = uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoSaida, decimal.NewFromInt(30)))
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAtual.Equal(decimal.NewFromInt(70)))

	require.Len(t, movRepo.movs, 2)
	// o livro guarda a quantidade sempre positiva; o sinal fica no tipo
	assert.True(t, movRepo.movs[1].Quantidade.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, entity.MovimentacaoSaida, movRepo.movs[1].Tipo)
}

func TestRegistrarQuantidadeInvalida(t *testing.T) {
	materiaRepo, movRepo, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 50, 10)

	for _, qtd := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoEntrada, qtd))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, movRepo.movs)
	assert.True(t, materiaRepo.materias["mp-1"].EstoqueAtual.Equal(decimal.NewFromInt(50)))
}

func TestRegistrarQuantidadeFracionaria(t *testing.T) {
	materiaRepo, _, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 0, 10)

	qtd := decimal.RequireFromString("0.0001")
	resp, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoEntrada, qtd))
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAtual.Equal(qtd))
}

func TestRegistrarTipoDesconhecido(t *testing.T) {
	materiaRepo, _, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 50, 10)

	_, err := uc.Registrar(context.Background(), movRequest("mp-1", "transferencia", decimal.NewFromInt(5)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarMateriaInativa(t *testing.T) {
	materiaRepo, movRepo, uc := setupMovimentacao()
	m := novaMateria("mp-1", 50, 10)
	m.Ativo = false
	materiaRepo.materias["mp-1"] = m

	_, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoEntrada, decimal.NewFromInt(5)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movs)
}

func TestRegistrarSaidaPodeNegativar(t *testing.T) {
	materiaRepo, _, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 10, 5)

	resp, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoSaida, decimal.NewFromInt(25)))
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAtual.Equal(decimal.NewFromInt(-15)),
		"não há piso de estoque: a saída registra e o saldo fica negativo")
}

func TestEstoqueTotalBateComEstoqueAtual(t *testing.T) {
	materiaRepo, movRepo, uc := setupMovimentacao()
	materiaRepo.materias["mp-1"] = novaMateria("mp-1", 0, 10)
	consulta := NewConsultaUseCase(materiaRepo, movRepo)

	entradas := []int64{100, 40}
	saidas := []int64{30, 15}
	for _, q := range entradas {
		_, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoEntrada, decimal.NewFromInt(q)))
		require.NoError(t, err)
	}
	for _, q := range saidas {
		_, err := uc.Registrar(context.Background(), movRequest("mp-1", entity.MovimentacaoSaida, decimal.NewFromInt(q)))
		require.NoError(t, err)
	}

	total, err := consulta.EstoqueTotal(context.Background(), "mp-1")
	require.NoError(t, err)
	assert.True(t, total.EstoqueTotal.Equal(decimal.NewFromInt(95)))
	// replay do livro coincide com o estoque materializado
	assert.True(t, total.EstoqueTotal.Equal(materiaRepo.materias["mp-1"].EstoqueAtual))
}

func TestEstoqueTotalMateriaInexistente(t *testing.T) {
	materiaRepo, movRepo, _ := setupMovimentacao()
	consulta := NewConsultaUseCase(materiaRepo, movRepo)

	_, err := consulta.EstoqueTotal(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVisaoOrdenaCriticosPrimeiro(t *testing.T) {
	materiaRepo, movRepo, _ := setupMovimentacao()
	materiaRepo.materias["a"] = novaMateria("a", 100, 10) // normal
	materiaRepo.materias["b"] = novaMateria("b", 5, 10)   // crítico
	materiaRepo.materias["c"] = novaMateria("c", 0, 10)   // zerado
	consulta := NewConsultaUseCase(materiaRepo, movRepo)

	itens, resumo, err := consulta.Visao(context.Background(), domestoque.Filtro{})
	require.NoError(t, err)
	require.Len(t, itens, 3)
	assert.Equal(t, 1, resumo.Criticos)
	assert.Equal(t, 1, resumo.Zerados)
	assert.Equal(t, "NORMAL", itens[2].StatusEstoque, "itens normais devem vir por último")
}

func TestVisaoComFiltro(t *testing.T) {
	materiaRepo, movRepo, _ := setupMovimentacao()
	a := novaMateria("a", 100, 10)
	a.Descricao = "Resina Epóxi"
	b := novaMateria("b", 5, 10)
	b.Descricao = "Solvente"
	b.Categoria = "solventes"
	materiaRepo.materias["a"] = a
	materiaRepo.materias["b"] = b
	consulta := NewConsultaUseCase(materiaRepo, movRepo)

	// busca sem acento encontra a descrição acentuada
	itens, resumo, err := consulta.Visao(context.Background(), domestoque.Filtro{Busca: "epoxi"})
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Equal(t, "Resina Epóxi", itens[0].Descricao)
	assert.Equal(t, 1, resumo.Total)

	itens, _, err = consulta.Visao(context.Background(), domestoque.Filtro{Categoria: "solventes", Status: domestoque.StatusCritico})
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Equal(t, "Solvente", itens[0].Descricao)
}
