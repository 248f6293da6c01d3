package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
	"github.com/Luan-zanardo/Insumix/internal/domain/entity"
	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores. Soft delete via status "inativo".
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Listar fornecedores ativos.
func (uc *FornecedorUseCase) Listar(ctx context.Context) ([]*entity.Fornecedor, error) {
	return uc.repo.Listar(ctx)
}

// BuscarPorID retorna o fornecedor ativo ou ErrNotFound.
func (uc *FornecedorUseCase) BuscarPorID(ctx context.Context, id string) (*entity.Fornecedor, error) {
	f, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// Criar exige razão social e CNPJ; CNPJ duplicado entre ativos vira ErrDuplicate.
func (uc *FornecedorUseCase) Criar(ctx context.Context, in dto.FornecedorRequest) (*entity.Fornecedor, error) {
	if in.RazaoSocial == "" || in.CNPJ == "" {
		return nil, domain.ErrInvalidInput
	}
	f := &entity.Fornecedor{
		ID:                uuid.New().String(),
		RazaoSocial:       in.RazaoSocial,
		NomeFantasia:      in.NomeFantasia,
		CNPJ:              in.CNPJ,
		InscricaoEstadual: in.InscricaoEstadual,
		Telefone:          in.Telefone,
		Email:             in.Email,
		Endereco:          in.Endereco,
		Cidade:            in.Cidade,
		Estado:            in.Estado,
		CEP:               in.CEP,
		Status:            entity.FornecedorAtivo,
		DataCadastro:      time.Now(),
	}
	if err := uc.repo.Criar(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Atualizar full replace dos campos editáveis.
func (uc *FornecedorUseCase) Atualizar(ctx context.Context, id string, in dto.FornecedorRequest) (*entity.Fornecedor, error) {
	if in.RazaoSocial == "" || in.CNPJ == "" {
		return nil, domain.ErrInvalidInput
	}
	f := &entity.Fornecedor{
		ID:                id,
		RazaoSocial:       in.RazaoSocial,
		NomeFantasia:      in.NomeFantasia,
		CNPJ:              in.CNPJ,
		InscricaoEstadual: in.InscricaoEstadual,
		Telefone:          in.Telefone,
		Email:             in.Email,
		Endereco:          in.Endereco,
		Cidade:            in.Cidade,
		Estado:            in.Estado,
		CEP:               in.CEP,
	}
	ok, err := uc.repo.Atualizar(ctx, f)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.BuscarPorID(ctx, id)
}

// Desativar soft delete; pedidos existentes continuam apontando para o registro.
func (uc *FornecedorUseCase) Desativar(ctx context.Context, id string) error {
	ok, err := uc.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
