package associado

import (
	"time"

	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/plano"
	"github.com/MemberTruck/api-membertruck/internal/veiculo"
)

// Associado é o perfil de sócio de uma Pessoa. Consultor aponta para o
// funcionário que o indicou; a restrição "consultor não é gestor" é
// apenas consultiva, checada no handler e nunca pelo banco.
type Associado struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	PessoaID uint          `gorm:"uniqueIndex;not null" json:"pessoaId"`
	Pessoa   pessoa.Pessoa `gorm:"foreignKey:PessoaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"pessoa"`

	DataAtivacao  *time.Time `json:"dataAtivacao"`
	DataPagamento *time.Time `json:"dataPagamento"`

	PlanoID *uint        `json:"planoId"`
	Plano   *plano.Plano `gorm:"foreignKey:PlanoID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"plano,omitempty"`

	ConsultorID *uint                    `json:"consultorId"`
	Consultor   *funcionario.Funcionario `gorm:"foreignKey:ConsultorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"consultor,omitempty"`

	Veiculos []veiculo.Veiculo `gorm:"foreignKey:AssociadoID;constraint:OnDelete:CASCADE" json:"veiculos"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}
