package login_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/auth"
	"github.com/MemberTruck/api-membertruck/internal/cargo"
	"github.com/MemberTruck/api-membertruck/internal/config"
	"github.com/MemberTruck/api-membertruck/internal/departamento"
	"github.com/MemberTruck/api-membertruck/internal/endereco"
	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/login"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/plano"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "teste.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("abrir banco: %v", err)
	}
	if err := db.AutoMigrate(
		&endereco.Endereco{},
		&pessoa.Pessoa{},
		&departamento.Departamento{},
		&cargo.Cargo{},
		&plano.Plano{},
		&funcionario.Funcionario{},
		&associado.Associado{},
	); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func criarPessoa(t *testing.T, db *gorm.DB, usuario, senha string) *pessoa.Pessoa {
	t.Helper()
	hash, err := utils.HashSenha(senha)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	p := pessoa.Pessoa{Nome: "Pessoa Teste", Usuario: usuario, Senha: hash, IsActive: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("criar pessoa: %v", err)
	}
	return &p
}

func novoHandler(db *gorm.DB) *login.Handler {
	cfg := &config.Config{
		JWTSecret:  "segredo-de-teste",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	return login.NewHandler(db, auth.NewService(cfg))
}

func fazerLogin(t *testing.T, h *login.Handler, usuario, senha string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"usuario": usuario, "senha": senha})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginDevolveTokensEClassificacao(t *testing.T) {
	db := abrirBanco(t)
	p := criarPessoa(t, db, "motorista", "senha-forte")
	a := associado.Associado{PessoaID: p.ID}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("criar associado: %v", err)
	}

	rec := fazerLogin(t, novoHandler(db), "motorista", "senha-forte")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200 (corpo: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Access   string `json:"access"`
		Refresh  string `json:"refresh"`
		UserInfo struct {
			Usuario     string `json:"usuario"`
			TipoUsuario string `json:"tipo_usuario"`
			AssociadoID *uint  `json:"associado_id"`
		} `json:"user_info"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificar resposta: %v", err)
	}
	if resp.Access == "" || resp.Refresh == "" {
		t.Fatal("par de tokens ausente na resposta")
	}
	if resp.UserInfo.TipoUsuario != login.TipoAssociado {
		t.Fatalf("tipo_usuario = %q, esperado %q", resp.UserInfo.TipoUsuario, login.TipoAssociado)
	}
	if resp.UserInfo.AssociadoID == nil || *resp.UserInfo.AssociadoID != a.ID {
		t.Fatalf("associado_id = %v, esperado %d", resp.UserInfo.AssociadoID, a.ID)
	}

	var recarregada pessoa.Pessoa
	if err := db.First(&recarregada, p.ID).Error; err != nil {
		t.Fatalf("recarregar pessoa: %v", err)
	}
	if recarregada.UltimoLogin == nil {
		t.Fatal("último login não foi registrado")
	}
}

func TestLoginRespostaUniformeParaFalhas(t *testing.T) {
	db := abrirBanco(t)
	criarPessoa(t, db, "ativa", "senha-certa")

	inativa := criarPessoa(t, db, "inativa", "senha-certa")
	if err := db.Model(inativa).Update("is_active", false).Error; err != nil {
		t.Fatalf("desativar pessoa: %v", err)
	}

	h := novoHandler(db)
	casos := []struct{ usuario, senha string }{
		{"nao-existe", "qualquer"},
		{"ativa", "senha-errada"},
		{"inativa", "senha-certa"},
	}
	for _, c := range casos {
		rec := fazerLogin(t, h, c.usuario, c.senha)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("login %q: status = %d, esperado 401", c.usuario, rec.Code)
		}
		var corpo utils.ErroResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
			t.Fatalf("decodificar erro: %v", err)
		}
		if corpo.Message != "Credenciais inválidas" {
			t.Fatalf("login %q: mensagem = %q, deveria ser uniforme", c.usuario, corpo.Message)
		}
	}
}

func TestClassificacaoPrioridadeFuncionarioSobreAssociado(t *testing.T) {
	db := abrirBanco(t)

	// associado criado antes do perfil de funcionário
	p := criarPessoa(t, db, "dupla", "senha-forte")
	if err := db.Create(&associado.Associado{PessoaID: p.ID}).Error; err != nil {
		t.Fatalf("criar associado: %v", err)
	}
	f := funcionario.Funcionario{PessoaID: p.ID, IsGestor: true}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("criar funcionário: %v", err)
	}

	c := login.Classificar(db, p.ID)
	if c.Tipo != login.TipoFuncionario {
		t.Fatalf("tipo = %q, esperado %q", c.Tipo, login.TipoFuncionario)
	}
	if c.FuncionarioID == nil || *c.FuncionarioID != f.ID {
		t.Fatalf("funcionario_id = %v, esperado %d", c.FuncionarioID, f.ID)
	}
	if c.IsGestor == nil || !*c.IsGestor {
		t.Fatal("is_gestor deveria vir preenchido como true")
	}
	if c.AssociadoID != nil {
		t.Fatal("associado_id não deveria aparecer quando o tipo é funcionario")
	}
}

func TestClassificacaoAdminSemPerfil(t *testing.T) {
	db := abrirBanco(t)
	p := criarPessoa(t, db, "root", "senha-forte")

	c := login.Classificar(db, p.ID)
	if c.Tipo != login.TipoAdmin {
		t.Fatalf("tipo = %q, esperado %q", c.Tipo, login.TipoAdmin)
	}
	if c.FuncionarioID != nil || c.AssociadoID != nil {
		t.Fatal("classificação de admin não deveria carregar IDs de perfil")
	}
}
