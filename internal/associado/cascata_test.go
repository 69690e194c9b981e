package associado_test

import (
	"errors"
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
		&veiculo.Veiculo{},
		&mensagem.Mensagem{},
	); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func criarAssociado(t *testing.T, db *gorm.DB, usuario string) (*pessoa.Pessoa, *associado.Associado) {
	t.Helper()
	hash, _ := utils.HashSenha("senha-forte")
	p := pessoa.Pessoa{Nome: "Associada Teste", Usuario: usuario, Senha: hash, IsActive: true}
	a := associado.Associado{}
	if err := associado.NewRepository().CriarCompleto(db, &p, &a); err != nil {
		t.Fatalf("criar associado: %v", err)
	}
	return &p, &a
}

func contar(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("contar: %v", err)
	}
	return n
}

func TestExcluirPessoaCascateiaAssociadoVeiculosEMensagens(t *testing.T) {
	db := abrirBanco(t)
	p, a := criarAssociado(t, db, "cascata")

	v := veiculo.Veiculo{Nome: "Scania R450", Placa: "ABC1D23", AssociadoID: a.ID}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("criar veículo: %v", err)
	}
	m := mensagem.Mensagem{AssociadoID: a.ID, Tipo: mensagem.TipoCobranca, Conteudo: "Mensalidade em aberto"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("criar mensagem: %v", err)
	}

	if err := db.Delete(&pessoa.Pessoa{}, p.ID).Error; err != nil {
		t.Fatalf("deletar pessoa: %v", err)
	}

	if n := contar(t, db, &associado.Associado{}); n != 0 {
		t.Fatalf("associados = %d, esperado 0", n)
	}
	if n := contar(t, db, &veiculo.Veiculo{}); n != 0 {
		t.Fatalf("veiculos = %d, esperado 0", n)
	}
	if n := contar(t, db, &mensagem.Mensagem{}); n != 0 {
		t.Fatalf("mensagens = %d, esperado 0", n)
	}
}

func TestExcluirPlanoAnulaCampoDoAssociado(t *testing.T) {
	db := abrirBanco(t)

	pl := plano.Plano{Nome: "Completo"}
	if err := db.Create(&pl).Error; err != nil {
		t.Fatalf("criar plano: %v", err)
	}

	hash, _ := utils.HashSenha("senha-forte")
	p := pessoa.Pessoa{Nome: "Associada Plano", Usuario: "plano", Senha: hash, IsActive: true}
	a := associado.Associado{PlanoID: &pl.ID}
	repo := associado.NewRepository()
	if err := repo.CriarCompleto(db, &p, &a); err != nil {
		t.Fatalf("criar associado: %v", err)
	}

	if err := db.Delete(&plano.Plano{}, pl.ID).Error; err != nil {
		t.Fatalf("deletar plano: %v", err)
	}

	recarregado, err := repo.BuscarPorID(db, a.ID)
	if err != nil {
		t.Fatalf("associado sumiu após exclusão do plano: %v", err)
	}
	if recarregado.PlanoID != nil {
		t.Fatalf("PlanoID = %v, esperado nulo", *recarregado.PlanoID)
	}
}

func TestPlacaDuplicadaEmVeiculoDeOutroAssociado(t *testing.T) {
	db := abrirBanco(t)
	_, a1 := criarAssociado(t, db, "dona1")
	_, a2 := criarAssociado(t, db, "dona2")

	if err := db.Create(&veiculo.Veiculo{Nome: "Volvo FH", Placa: "XYZ9876", AssociadoID: a1.ID}).Error; err != nil {
		t.Fatalf("criar primeiro veículo: %v", err)
	}
	err := db.Create(&veiculo.Veiculo{Nome: "Volvo FH", Placa: "XYZ9876", AssociadoID: a2.ID}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("esperado ErrDuplicatedKey, obtido %v", err)
	}
}
