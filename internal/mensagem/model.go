package mensagem

import (
	"time"

	"github.com/MemberTruck/api-membertruck/internal/associado"
)

// Tipos de mensagem aceitos.
const (
	TipoCobranca     = "cobranca"
	TipoComemorativa = "comemorativa"
	TipoPromocional  = "promocional"
)

// Status do envio; a transição é só de pendente para enviada ou erro,
// nunca de volta.
const (
	StatusPendente = "pendente"
	StatusEnviada  = "enviada"
	StatusErro     = "erro"
)

// Mensagem é o registro histórico de um disparo de WhatsApp para um
// associado; cai em cascata junto com ele.
type Mensagem struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	AssociadoID uint                `gorm:"not null;index" json:"associadoId"`
	Associado   associado.Associado `gorm:"foreignKey:AssociadoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Tipo        string              `gorm:"size:20;not null" json:"tipo"`
	Conteudo    string              `gorm:"not null" json:"conteudo"`
	DataEnvio   time.Time           `gorm:"autoCreateTime" json:"dataEnvio"`
	Status      string              `gorm:"size:20;not null;default:pendente" json:"status"`
}

// TipoValido responde se o tipo informado é um dos aceitos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoCobranca, TipoComemorativa, TipoPromocional:
		return true
	}
	return false
}
