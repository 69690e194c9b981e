package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/cargo"
	"github.com/MemberTruck/api-membertruck/internal/departamento"
	"github.com/MemberTruck/api-membertruck/internal/endereco"
	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/mensagem"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/plano"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/MemberTruck/api-membertruck/internal/veiculo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T, migrar bool) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "teste.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("abrir banco: %v", err)
	}
	if migrar {
		if err := db.AutoMigrate(
			&endereco.Endereco{},
			&pessoa.Pessoa{},
			&departamento.Departamento{},
			&cargo.Cargo{},
			&plano.Plano{},
			&funcionario.Funcionario{},
			&associado.Associado{},
			&veiculo.Veiculo{},
			&mensagem.Mensagem{},
		); err != nil {
			t.Fatalf("migrar: %v", err)
		}
	}
	return db
}

func pedirResumo(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Resumo(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return rec
}

func TestResumoContaEntidades(t *testing.T) {
	db := abrirBanco(t, true)

	hash, _ := utils.HashSenha("senha-forte")
	p1 := pessoa.Pessoa{Nome: "Gestora", Usuario: "gestora", Senha: hash, IsActive: true}
	p2 := pessoa.Pessoa{Nome: "Sócia", Usuario: "socia", Senha: hash, IsActive: true}
	if err := db.Create(&p1).Error; err != nil {
		t.Fatalf("criar pessoa: %v", err)
	}
	if err := db.Create(&p2).Error; err != nil {
		t.Fatalf("criar pessoa: %v", err)
	}
	if err := db.Create(&funcionario.Funcionario{PessoaID: p1.ID, IsGestor: true}).Error; err != nil {
		t.Fatalf("criar funcionário: %v", err)
	}
	a := associado.Associado{PessoaID: p2.ID}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("criar associado: %v", err)
	}
	if err := db.Create(&veiculo.Veiculo{Nome: "Scania R450", Placa: "ABC1D23", AssociadoID: a.ID}).Error; err != nil {
		t.Fatalf("criar veículo: %v", err)
	}

	rec := pedirResumo(t, NewHandler(db))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200 (corpo: %s)", rec.Code, rec.Body.String())
	}

	var res resumo
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decodificar resumo: %v", err)
	}
	esperado := resumo{Pessoas: 2, Funcionarios: 1, Gestores: 1, Associados: 1, Veiculos: 1, Mensagens: 0}
	if res != esperado {
		t.Fatalf("resumo = %+v, esperado %+v", res, esperado)
	}
}

func TestResumoFalhaDeConsultaDevolve500(t *testing.T) {
	// banco sem tabelas: nenhuma contagem pode virar zero silencioso
	db := abrirBanco(t, false)

	rec := pedirResumo(t, NewHandler(db))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, esperado 500", rec.Code)
	}
	var corpo utils.ErroResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
		t.Fatalf("decodificar erro: %v", err)
	}
	if corpo.Error != "erro_interno" {
		t.Fatalf("erro = %q, esperado erro_interno", corpo.Error)
	}
}
