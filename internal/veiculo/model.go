package veiculo

// Veiculo pertence a exatamente um associado; a chave estrangeira (com
// cascata) é declarada do lado do Associado.
type Veiculo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"size:100;not null" json:"nome"`
	Ano         *int   `json:"ano"`
	Placa       string `gorm:"size:10;uniqueIndex;not null" json:"placa"`
	AssociadoID uint   `gorm:"not null;index" json:"associadoId"`
}
