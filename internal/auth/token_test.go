package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MemberTruck/api-membertruck/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoService(t *testing.T, accessTTL, refreshTTL time.Duration) *Service {
	t.Helper()
	return NewService(&config.Config{
		JWTSecret:  "segredo-de-teste",
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	})
}

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "auth.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("abrir banco: %v", err)
	}
	if err := db.AutoMigrate(&TokenRevogado{}); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func TestGerarEValidarTokenAcesso(t *testing.T) {
	s := novoService(t, time.Hour, 24*time.Hour)

	token, err := s.GerarTokenAcesso(42)
	if err != nil {
		t.Fatalf("GerarTokenAcesso: %v", err)
	}
	claims, err := s.ParseAndValidate(token, TipoAccess)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, esperado 42", claims.UserID)
	}
	if claims.ID == "" {
		t.Fatal("token emitido sem jti")
	}
}

func TestRefreshNaoValeComoAccess(t *testing.T) {
	s := novoService(t, time.Hour, 24*time.Hour)

	refresh, err := s.GerarTokenRefresh(7)
	if err != nil {
		t.Fatalf("GerarTokenRefresh: %v", err)
	}
	if _, err := s.ParseAndValidate(refresh, TipoAccess); err == nil {
		t.Fatal("refresh token aceito como access token")
	}
	if _, err := s.ParseAndValidate(refresh, TipoRefresh); err != nil {
		t.Fatalf("refresh token rejeitado no uso correto: %v", err)
	}
}

func TestTokenExpiradoERejeitado(t *testing.T) {
	s := novoService(t, -time.Minute, 24*time.Hour)

	token, err := s.GerarTokenAcesso(1)
	if err != nil {
		t.Fatalf("GerarTokenAcesso: %v", err)
	}
	if _, err := s.ParseAndValidate(token, TipoAccess); err == nil {
		t.Fatal("token expirado foi aceito")
	}
}

func TestRevogacaoDeRefreshToken(t *testing.T) {
	s := novoService(t, time.Hour, 24*time.Hour)
	db := abrirBanco(t)

	refresh, err := s.GerarTokenRefresh(3)
	if err != nil {
		t.Fatalf("GerarTokenRefresh: %v", err)
	}
	claims, err := s.ParseAndValidate(refresh, TipoRefresh)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}

	revogado, err := EstaRevogado(db, claims.ID)
	if err != nil {
		t.Fatalf("EstaRevogado: %v", err)
	}
	if revogado {
		t.Fatal("token recém-emitido consta como revogado")
	}
	if err := Revogar(db, claims); err != nil {
		t.Fatalf("Revogar: %v", err)
	}
	revogado, err = EstaRevogado(db, claims.ID)
	if err != nil {
		t.Fatalf("EstaRevogado: %v", err)
	}
	if !revogado {
		t.Fatal("token revogado não consta como revogado")
	}
}

func TestEstaRevogadoFalhaFechadoSemTabela(t *testing.T) {
	// banco sem a tabela de revogados: a consulta falha e o token não
	// pode passar como válido
	dsn := filepath.Join(t.TempDir(), "vazio.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("abrir banco: %v", err)
	}

	revogado, err := EstaRevogado(db, "jti-qualquer")
	if err == nil {
		t.Fatal("consulta sem tabela deveria devolver erro")
	}
	if !revogado {
		t.Fatal("falha na consulta precisa contar como revogado")
	}
}
