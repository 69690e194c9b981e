package plano

// Plano é entidade de referência; a exclusão anula o campo dos
// associados que o referenciam.
type Plano struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;not null" json:"nome"`
}
