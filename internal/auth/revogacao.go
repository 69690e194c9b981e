package auth

import (
	"time"

	"gorm.io/gorm"
)

// TokenRevogado registra o jti de um refresh token invalidado por logout.
// A linha só precisa viver até a expiração natural do token.
type TokenRevogado struct {
	ID       uint      `gorm:"primaryKey"`
	JTI      string    `gorm:"uniqueIndex;size:64"`
	UserID   uint      `gorm:"index"`
	ExpiraEm time.Time `gorm:"index"`
	CriadoEm time.Time `gorm:"autoCreateTime"`
}

// Revogar marca o refresh token das claims como inválido.
func Revogar(db *gorm.DB, claims *Claims) error {
	rev := TokenRevogado{
		JTI:      claims.ID,
		UserID:   claims.UserID,
		ExpiraEm: claims.ExpiresAt.Time,
	}
	return db.Create(&rev).Error
}

// EstaRevogado responde se o jti consta da lista de revogados. Um erro
// de consulta não pode liberar o token; o chamador decide a resposta.
func EstaRevogado(db *gorm.DB, jti string) (bool, error) {
	var count int64
	if err := db.Model(&TokenRevogado{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return true, err
	}
	return count > 0, nil
}
