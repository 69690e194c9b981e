package pessoa

import "time"

// CriarPessoaRequest é usado em POST /pessoas/create.
type CriarPessoaRequest struct {
	Nome       string  `json:"nome" validate:"required"`
	Telefone   string  `json:"telefone"`
	Documento  *string `json:"documento"`
	Nascimento *string `json:"nascimento"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Usuario    string  `json:"usuario" validate:"required"`
	Senha      string  `json:"senha" validate:"required"`
	EnderecoID *uint   `json:"enderecoId"`
}

// AtualizarPessoaRequest é usado em PUT /pessoas/{id}; campos nulos
// são mantidos como estão.
type AtualizarPessoaRequest struct {
	Nome       *string `json:"nome"`
	Telefone   *string `json:"telefone"`
	Documento  *string `json:"documento"`
	Nascimento *string `json:"nascimento"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Senha      *string `json:"senha"`
	IsActive   *bool   `json:"isActive"`
	EnderecoID *uint   `json:"enderecoId"`
}

// ParseData converte datas "AAAA-MM-DD" vindas do cliente.
func ParseData(valor *string) (*time.Time, error) {
	if valor == nil || *valor == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *valor)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
