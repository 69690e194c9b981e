package cargo

// Cargo é entidade de referência; a exclusão anula o campo dos
// funcionários que a referenciam.
type Cargo struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;not null" json:"nome"`
}
