package endereco

// Endereco é referenciado opcionalmente por Pessoa; a exclusão do
// endereço anula a referência, nunca remove a pessoa.
type Endereco struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Logradouro  string `gorm:"not null" json:"logradouro"`
	Numero      string `gorm:"size:10" json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `gorm:"not null" json:"bairro"`
	Cidade      string `gorm:"not null" json:"cidade"`
	CEP         string `gorm:"size:10" json:"cep"`
}
