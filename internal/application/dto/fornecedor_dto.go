package dto

// FornecedorRequest body para criar/atualizar fornecedor (full replace).
type FornecedorRequest struct {
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	CNPJ              string `json:"cnpj"`
	InscricaoEstadual string `json:"inscricao_estadual"`
	Telefone          string `json:"telefone"`
	Email             string `json:"email"`
	Endereco          string `json:"endereco"`
	Cidade            string `json:"cidade"`
	Estado            string `json:"estado"`
	CEP               string `json:"cep"`
}
