package pessoa

import (
	"time"

	"github.com/MemberTruck/api-membertruck/internal/endereco"
)

// Pessoa é a identidade única por trás de todo usuário do sistema.
// Usuario é a chave de login; Documento e Email, quando presentes,
// são globalmente únicos.
type Pessoa struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Nome        string     `gorm:"size:255;not null" json:"nome"`
	Telefone    string     `gorm:"size:20" json:"telefone"`
	Documento   *string    `gorm:"size:30;uniqueIndex" json:"documento"`
	Nascimento  *time.Time `json:"nascimento"`
	Email       *string    `gorm:"size:100;uniqueIndex" json:"email"`
	Usuario     string     `gorm:"size:150;uniqueIndex;not null" json:"usuario"`
	Senha       string     `gorm:"size:255;not null" json:"-"`
	IsStaff     bool       `gorm:"default:false" json:"isStaff"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	IsSuperuser bool       `gorm:"default:false" json:"isSuperuser"`

	EnderecoID *uint              `json:"enderecoId"`
	Endereco   *endereco.Endereco `gorm:"foreignKey:EnderecoID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"endereco,omitempty"`

	CriadoEm    time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	UltimoLogin *time.Time `json:"ultimoLogin"`
}
