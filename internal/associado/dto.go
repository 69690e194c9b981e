package associado

// CriarAssociadoRequest vincula um perfil a uma Pessoa já existente.
type CriarAssociadoRequest struct {
	PessoaID      uint    `json:"pessoaId" validate:"required"`
	DataAtivacao  *string `json:"dataAtivacao"`
	DataPagamento *string `json:"dataPagamento"`
	PlanoID       *uint   `json:"planoId"`
	ConsultorID   *uint   `json:"consultorId"`
}

// CriarCompletoRequest é o payload do provisionamento de associado:
// Pessoa e Associado nascem juntos em uma transação.
type CriarCompletoRequest struct {
	Nome       string  `json:"nome" validate:"required"`
	Telefone   string  `json:"telefone"`
	Documento  *string `json:"documento"`
	Nascimento *string `json:"nascimento"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Usuario    string  `json:"usuario" validate:"required"`
	Senha      string  `json:"senha" validate:"required"`

	DataAtivacao  *string `json:"dataAtivacao"`
	DataPagamento *string `json:"dataPagamento"`
	PlanoID       *uint   `json:"planoId"`
	ConsultorID   *uint   `json:"consultorId"`
}

// AtualizarAssociadoRequest é usado em PUT /associados/{id}.
type AtualizarAssociadoRequest struct {
	DataAtivacao  *string `json:"dataAtivacao"`
	DataPagamento *string `json:"dataPagamento"`
	PlanoID       *uint   `json:"planoId"`
	ConsultorID   *uint   `json:"consultorId"`
}
