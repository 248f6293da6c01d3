package estoque

import (
	"context"
	"sort"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	domestoque "github.com/Luan-zanardo/Insumix/internal/domain/estoque"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// ConsultaUseCase consultas de estoque somente-leitura: visão geral com status
// derivado, itens críticos, histórico do livro e saldo por matéria-prima.
type ConsultaUseCase struct {
	materiaRepo repository.MateriaPrimaRepository
	movRepo     repository.MovimentacaoEstoqueRepository
}

// NewConsultaUseCase constrói o caso de uso.
func NewConsultaUseCase(materiaRepo repository.MateriaPrimaRepository, movRepo repository.MovimentacaoEstoqueRepository) *ConsultaUseCase {
	return &ConsultaUseCase{materiaRepo: materiaRepo, movRepo: movRepo}
}

// Visao retorna as matérias ativas que passam pelo filtro, com status
// derivado e itens críticos primeiro, mais o resumo (contagens e valor total)
// do conjunto filtrado.
func (uc *ConsultaUseCase) Visao(ctx context.Context, f domestoque.Filtro) ([]*dto.ItemEstoque, domestoque.Resumo, error) {
	materias, err := uc.materiaRepo.Listar(ctx)
	if err != nil {
		return nil, domestoque.Resumo{}, err
	}
	materias = domestoque.Filtrar(materias, f)
	resumo := domestoque.Resumir(materias)

	itens := make([]*dto.ItemEstoque, 0, len(materias))
	for _, m := range materias {
		itens = append(itens, toItemEstoque(m))
	}
	// Críticos/zerados primeiro; dentro de cada grupo mantém a ordem por
	// descrição vinda do repositório.
	sort.SliceStable(itens, func(i, j int) bool {
		return rank(itens[i].StatusEstoque) < rank(itens[j].StatusEstoque)
	})
	return itens, resumo, nil
}

// Criticas retorna somente as matérias no limiar mínimo ou abaixo.
func (uc *ConsultaUseCase) Criticas(ctx context.Context) ([]*dto.ItemEstoque, error) {
	materias, err := uc.materiaRepo.ListarCriticas(ctx)
	if err != nil {
		return nil, err
	}
	itens := make([]*dto.ItemEstoque, 0, len(materias))
	for _, m := range materias {
		itens = append(itens, toItemEstoque(m))
	}
	return itens, nil
}

// Historico lista as movimentações (com matéria e usuário) mais recentes.
func (uc *ConsultaUseCase) Historico(ctx context.Context, materiaID string, limite int) ([]*entity.MovimentacaoEstoque, error) {
	return uc.movRepo.Historico(ctx, materiaID, limite)
}

// EstoqueTotal saldo do livro (replay do zero) para uma matéria-prima ativa.
// Deve coincidir com o estoque_atual armazenado.
func (uc *ConsultaUseCase) EstoqueTotal(ctx context.Context, materiaID string) (*dto.EstoqueTotalResponse, error) {
	materia, err := uc.materiaRepo.BuscarPorID(ctx, materiaID)
	if err != nil {
		return nil, err
	}
	if materia == nil {
		return nil, domain.ErrNotFound
	}
	saldo, err := uc.movRepo.Saldo(ctx, materiaID)
	if err != nil {
		return nil, err
	}
	return &dto.EstoqueTotalResponse{MateriaPrimaID: materiaID, EstoqueTotal: saldo}, nil
}

func toItemEstoque(m *entity.MateriaPrima) *dto.ItemEstoque {
	return &dto.ItemEstoque{
		MateriaPrimaID: m.ID,
		Codigo:         m.Codigo,
		Descricao:      m.Descricao,
		UnidadeMedida:  m.UnidadeMedida,
		EstoqueAtual:   m.EstoqueAtual,
		EstoqueMinimo:  m.EstoqueMinimo,
		Categoria:      m.Categoria,
		StatusEstoque:  domestoque.Classificar(m.EstoqueAtual, m.EstoqueMinimo),
		DataCadastro:   m.DataCadastro,
	}
}

func rank(status string) int {
	if status == domestoque.StatusNormal {
		return 2
	}
	return 1
}
