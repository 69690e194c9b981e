package departamento

// Departamento é entidade de referência; a exclusão anula o campo dos
// funcionários que a referenciam.
type Departamento struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;not null" json:"nome"`
}
