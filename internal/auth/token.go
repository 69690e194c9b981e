package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MemberTruck/api-membertruck/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token emitidos pelo serviço.
const (
	TipoAccess  = "access"
	TipoRefresh = "refresh"
)

// Claims do token, com o tipo embutido para impedir o uso de um refresh
// token como access token (e vice-versa).
type Claims struct {
	UserID uint   `json:"userId"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

// Service assina e valida tokens HS256. Chave e TTLs vêm do Config do
// processo, nunca de estado global.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

func (s *Service) gerar(userID uint, tipo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Tipo:   tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GerarTokenAcesso emite um access token de vida curta.
func (s *Service) GerarTokenAcesso(userID uint) (string, error) {
	return s.gerar(userID, TipoAccess, s.accessTTL)
}

// GerarTokenRefresh emite um refresh token de vida longa.
func (s *Service) GerarTokenRefresh(userID uint) (string, error) {
	return s.gerar(userID, TipoRefresh, s.refreshTTL)
}

// ParseAndValidate valida assinatura, expiração e tipo do token.
func (s *Service) ParseAndValidate(tokenStr, tipo string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("não foi possível extrair claims")
	}
	if claims.Tipo != tipo {
		return nil, errors.New("tipo de token incorreto")
	}
	return claims, nil
}
