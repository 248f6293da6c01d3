package entity

import "time"

// Status possíveis de um fornecedor (soft delete via status).
const (
	FornecedorAtivo   = "ativo"
	FornecedorInativo = "inativo"
)

// Fornecedor cadastro de fornecedor. CNPJ é único entre registros ativos.
type Fornecedor struct {
	ID                string    `json:"id_fornecedor"`
	RazaoSocial       string    `json:"razao_social"`
	NomeFantasia      string    `json:"nome_fantasia,omitempty"`
	CNPJ              string    `json:"cnpj"`
	InscricaoEstadual string    `json:"inscricao_estadual,omitempty"`
	Telefone          string    `json:"telefone,omitempty"`
	Email             string    `json:"email,omitempty"`
	Endereco          string    `json:"endereco,omitempty"`
	Cidade            string    `json:"cidade,omitempty"`
	Estado            string    `json:"estado,omitempty"`
	CEP               string    `json:"cep,omitempty"`
	Status            string    `json:"status"`
	DataCadastro      time.Time `json:"data_cadastro"`
}
