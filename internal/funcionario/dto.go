package funcionario

// CriarFuncionarioRequest vincula um perfil a uma Pessoa já existente.
type CriarFuncionarioRequest struct {
	PessoaID       uint     `json:"pessoaId" validate:"required"`
	Salario        *float64 `json:"salario"`
	Comissao       *float64 `json:"comissao"`
	DataAdmissao   *string  `json:"dataAdmissao"`
	DepartamentoID *uint    `json:"departamentoId"`
	CargoID        *uint    `json:"cargoId"`
	GestorID       *uint    `json:"gestorId"`
	IsGestor       bool     `json:"isGestor"`
}

// CriarCompletoRequest é o payload do fluxo de provisionamento: os
// campos de Pessoa e de Funcionario chegam juntos e viram duas linhas
// em uma única transação.
type CriarCompletoRequest struct {
	Nome       string  `json:"nome" validate:"required"`
	Telefone   string  `json:"telefone"`
	Documento  *string `json:"documento"`
	Nascimento *string `json:"nascimento"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Usuario    string  `json:"usuario" validate:"required"`
	Senha      string  `json:"senha" validate:"required"`

	Salario        *float64 `json:"salario"`
	Comissao       *float64 `json:"comissao"`
	DataAdmissao   *string  `json:"dataAdmissao"`
	DepartamentoID *uint    `json:"departamentoId"`
	CargoID        *uint    `json:"cargoId"`
	GestorID       *uint    `json:"gestorId"`
	IsGestor       bool     `json:"isGestor"`
}

// AtualizarFuncionarioRequest é usado em PUT /funcionarios/{id}.
type AtualizarFuncionarioRequest struct {
	Salario        *float64 `json:"salario"`
	Comissao       *float64 `json:"comissao"`
	DataAdmissao   *string  `json:"dataAdmissao"`
	DepartamentoID *uint    `json:"departamentoId"`
	CargoID        *uint    `json:"cargoId"`
	GestorID       *uint    `json:"gestorId"`
	IsGestor       *bool    `json:"isGestor"`
}
