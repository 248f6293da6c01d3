package estoque

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

// MovimentacaoUseCase registra movimentações de estoque de forma transacional:
// uma linha imutável no livro mais o ajuste atômico do estoque atual, com
// Commit ou Rollback em conjunto.
type MovimentacaoUseCase struct {
	txRunner    TxRunner
	materiaRepo repository.MateriaPrimaRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(txRunner TxRunner, materiaRepo repository.MateriaPrimaRepository) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{txRunner: txRunner, materiaRepo: materiaRepo}
}

// Registrar valida, abre a transação, insere a movimentação e ajusta o
// estoque. Saída pode levar o estoque a negativo: o sistema não aplica piso.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, in dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if in.MateriaPrimaID == "" || in.UsuarioID == "" || in.Tipo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovimentacaoEntrada && in.Tipo != entity.MovimentacaoSaida {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantidade.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	materia, err := uc.materiaRepo.BuscarPorID(ctx, in.MateriaPrimaID)
	if err != nil {
		return nil, err
	}
	if materia == nil {
		return nil, domain.ErrNotFound
	}

	delta := in.Quantidade
	if in.Tipo == entity.MovimentacaoSaida {
		delta = delta.Neg()
	}

	mov := &entity.MovimentacaoEstoque{
		ID:                  uuid.New().String(),
		MateriaPrimaID:      in.MateriaPrimaID,
		UsuarioID:           in.UsuarioID,
		Tipo:                in.Tipo,
		Quantidade:          in.Quantidade,
		DocumentoReferencia: in.DocumentoReferencia,
		Observacoes:         in.Observacoes,
		DataMovimentacao:    time.Now(),
	}

	var estoqueAtual decimal.Decimal
	err = uc.txRunner.RunMovimentacao(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		materiaRepo repository.MateriaPrimaRepository,
	) error {
		if err := movRepo.Criar(ctx, mov); err != nil {
			return err
		}
		estoqueAtual, err = materiaRepo.AjustarEstoque(ctx, in.MateriaPrimaID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovimentacaoResponse{
		MateriaPrimaID: in.MateriaPrimaID,
		Tipo:           in.Tipo,
		Quantidade:     in.Quantidade,
		EstoqueAtual:   estoqueAtual,
	}, nil
}
