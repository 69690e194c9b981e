package funcionario

import (
	"time"

	"github.com/MemberTruck/api-membertruck/internal/cargo"
	"github.com/MemberTruck/api-membertruck/internal/departamento"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
)

// Funcionario é o perfil de equipe de uma Pessoa. GestorID forma a
// relação gestor-consultor; ciclos não são rejeitados na escrita.
type Funcionario struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	PessoaID uint          `gorm:"uniqueIndex;not null" json:"pessoaId"`
	Pessoa   pessoa.Pessoa `gorm:"foreignKey:PessoaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"pessoa"`

	Salario      *float64   `json:"salario"`
	Comissao     *float64   `json:"comissao"`
	DataAdmissao *time.Time `json:"dataAdmissao"`

	DepartamentoID *uint                      `json:"departamentoId"`
	Departamento   *departamento.Departamento `gorm:"foreignKey:DepartamentoID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"departamento,omitempty"`
	CargoID        *uint                      `json:"cargoId"`
	Cargo          *cargo.Cargo               `gorm:"foreignKey:CargoID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"cargo,omitempty"`

	GestorID *uint        `json:"gestorId"`
	Gestor   *Funcionario `gorm:"foreignKey:GestorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"gestor,omitempty"`
	IsGestor bool         `gorm:"default:false" json:"isGestor"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}
