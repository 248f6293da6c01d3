package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// MateriaPrimaUseCase CRUD de matérias-primas com soft delete.
type MateriaPrimaUseCase struct {
	repo repository.MateriaPrimaRepository
}

// NewMateriaPrimaUseCase constrói o caso de uso.
func NewMateriaPrimaUseCase(repo repository.MateriaPrimaRepository) *MateriaPrimaUseCase {
	return &MateriaPrimaUseCase{repo: repo}
}

// Listar matérias-primas ativas.
func (uc *MateriaPrimaUseCase) Listar(ctx context.Context) ([]*entity.MateriaPrima, error) {
	return uc.repo.Listar(ctx)
}

// BuscarPorID retorna a matéria ativa ou ErrNotFound.
func (uc *MateriaPrimaUseCase) BuscarPorID(ctx context.Context, id string) (*entity.MateriaPrima, error) {
	m, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// Criar valida campos obrigatórios e não-negatividade, gera o ID e persiste.
// Código duplicado entre ativos vira ErrDuplicate.
func (uc *MateriaPrimaUseCase) Criar(ctx context.Context, in dto.MateriaPrimaRequest) (*entity.MateriaPrima, error) {
	if err := validarMateriaPrima(in); err != nil {
		return nil, err
	}
	m := &entity.MateriaPrima{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Descricao:      in.Descricao,
		UnidadeMedida:  in.UnidadeMedida,
		PrecoUnitario:  in.PrecoUnitario,
		EstoqueMinimo:  in.EstoqueMinimo,
		EstoqueAtual:   in.EstoqueAtual,
		Categoria:      in.Categoria,
		Especificacoes: in.Especificacoes,
		DataCadastro:   time.Now(),
		Ativo:          true,
	}
	if err := uc.repo.Criar(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Atualizar full replace dos campos editáveis; ErrNotFound se inativa/inexistente.
func (uc *MateriaPrimaUseCase) Atualizar(ctx context.Context, id string, in dto.MateriaPrimaRequest) (*entity.MateriaPrima, error) {
	if err := validarMateriaPrima(in); err != nil {
		return nil, err
	}
	m := &entity.MateriaPrima{
		ID:             id,
		Codigo:         in.Codigo,
		Descricao:      in.Descricao,
		UnidadeMedida:  in.UnidadeMedida,
		PrecoUnitario:  in.PrecoUnitario,
		EstoqueMinimo:  in.EstoqueMinimo,
		EstoqueAtual:   in.EstoqueAtual,
		Categoria:      in.Categoria,
		Especificacoes: in.Especificacoes,
	}
	ok, err := uc.repo.Atualizar(ctx, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.BuscarPorID(ctx, id)
}

// AtualizarPreco altera somente o preço; exige preço estritamente positivo.
func (uc *MateriaPrimaUseCase) AtualizarPreco(ctx context.Context, id string, novoPreco decimal.Decimal) (*entity.MateriaPrima, error) {
	if !novoPreco.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.repo.AtualizarPreco(ctx, id, novoPreco)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.BuscarPorID(ctx, id)
}

// Desativar soft delete; ErrNotFound se já inativa.
func (uc *MateriaPrimaUseCase) Desativar(ctx context.Context, id string) error {
	ok, err := uc.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func validarMateriaPrima(in dto.MateriaPrimaRequest) error {
	if in.Codigo == "" || in.Descricao == "" || in.UnidadeMedida == "" || in.Categoria == "" {
		return domain.ErrInvalidInput
	}
	if in.PrecoUnitario.LessThan(decimal.Zero) ||
		in.EstoqueMinimo.LessThan(decimal.Zero) ||
		in.EstoqueAtual.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
