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

// ProdutoUseCase CRUD de produtos acabados e gestão da fórmula.
type ProdutoUseCase struct {
	repo        repository.ProdutoRepository
	materiaRepo repository.MateriaPrimaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, materiaRepo repository.MateriaPrimaRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, materiaRepo: materiaRepo}
}

// Listar produtos ativos.
func (uc *ProdutoUseCase) Listar(ctx context.Context) ([]*entity.Produto, error) {
	return uc.repo.Listar(ctx)
}

// BuscarPorID retorna o produto ativo ou ErrNotFound.
func (uc *ProdutoUseCase) BuscarPorID(ctx context.Context, id string) (*entity.Produto, error) {
	p, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Criar valida obrigatórios e não-negatividade; código duplicado vira ErrDuplicate.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.ProdutoRequest) (*entity.Produto, error) {
	if err := validarProduto(in); err != nil {
		return nil, err
	}
	p := &entity.Produto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		UnidadeMedida: in.UnidadeMedida,
		PrecoVenda:    in.PrecoVenda,
		EstoqueAtual:  in.EstoqueAtual,
		Categoria:     in.Categoria,
		DataCadastro:  time.Now(),
		Ativo:         true,
	}
	if err := uc.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Atualizar full replace dos campos editáveis.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, id string, in dto.ProdutoRequest) (*entity.Produto, error) {
	if err := validarProduto(in); err != nil {
		return nil, err
	}
	p := &entity.Produto{
		ID:            id,
		Codigo:        in.Codigo,
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		UnidadeMedida: in.UnidadeMedida,
		PrecoVenda:    in.PrecoVenda,
		EstoqueAtual:  in.EstoqueAtual,
		Categoria:     in.Categoria,
	}
	ok, err := uc.repo.Atualizar(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.BuscarPorID(ctx, id)
}

// Desativar soft delete; a fórmula permanece associada ao registro.
func (uc *ProdutoUseCase) Desativar(ctx context.Context, id string) error {
	ok, err := uc.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListarFormula retorna a fórmula do produto; ErrNotFound se o produto não existe.
func (uc *ProdutoUseCase) ListarFormula(ctx context.Context, produtoID string) ([]*entity.FormulaProduto, error) {
	if _, err := uc.BuscarPorID(ctx, produtoID); err != nil {
		return nil, err
	}
	return uc.repo.ListarFormula(ctx, produtoID)
}

// AdicionarItemFormula acrescenta uma matéria-prima à fórmula. A matéria deve
// existir e estar ativa; quantidade estritamente positiva; tipo de uso default
// "principal". Par (produto, matéria) repetido vira ErrDuplicate.
func (uc *ProdutoUseCase) AdicionarItemFormula(ctx context.Context, produtoID string, in dto.FormulaItemRequest) (*entity.FormulaProduto, error) {
	if _, err := uc.BuscarPorID(ctx, produtoID); err != nil {
		return nil, err
	}
	if in.MateriaPrimaID == "" || !in.QuantidadeNecessaria.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tipoUso := in.TipoUso
	switch tipoUso {
	case "":
		tipoUso = entity.TipoUsoPrincipal
	case entity.TipoUsoPrincipal, entity.TipoUsoAuxiliar:
	default:
		return nil, domain.ErrInvalidInput
	}
	materia, err := uc.materiaRepo.BuscarPorID(ctx, in.MateriaPrimaID)
	if err != nil {
		return nil, err
	}
	if materia == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.FormulaProduto{
		ID:                   uuid.New().String(),
		ProdutoID:            produtoID,
		MateriaPrimaID:       in.MateriaPrimaID,
		QuantidadeNecessaria: in.QuantidadeNecessaria,
		TipoUso:              tipoUso,
		Ativo:                true,
		Codigo:               materia.Codigo,
		Descricao:            materia.Descricao,
		UnidadeMedida:        materia.UnidadeMedida,
	}
	if err := uc.repo.AdicionarItemFormula(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func validarProduto(in dto.ProdutoRequest) error {
	if in.Codigo == "" || in.Nome == "" || in.UnidadeMedida == "" || in.Categoria == "" {
		return domain.ErrInvalidInput
	}
	if in.PrecoVenda.LessThan(decimal.Zero) || in.EstoqueAtual.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
