package funcionario

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MemberTruck/api-membertruck/internal/cargo"
	"github.com/MemberTruck/api-membertruck/internal/departamento"
	"github.com/MemberTruck/api-membertruck/internal/endereco"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
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
		&Funcionario{},
	); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func novaPessoa(usuario string) pessoa.Pessoa {
	hash, _ := utils.HashSenha("senha-forte")
	return pessoa.Pessoa{
		Nome:     "Fulano de Tal",
		Usuario:  usuario,
		Senha:    hash,
		IsStaff:  true,
		IsActive: true,
	}
}

func contar(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("contar: %v", err)
	}
	return n
}

func TestCriarCompletoGravaPessoaEFuncionarioJuntos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := novaPessoa("fulano")
	f := Funcionario{IsGestor: true}
	if err := repo.CriarCompleto(db, &p, &f); err != nil {
		t.Fatalf("CriarCompleto: %v", err)
	}

	if n := contar(t, db, &pessoa.Pessoa{}); n != 1 {
		t.Fatalf("pessoas = %d, esperado 1", n)
	}
	if n := contar(t, db, &Funcionario{}); n != 1 {
		t.Fatalf("funcionarios = %d, esperado 1", n)
	}
	if f.PessoaID != p.ID {
		t.Fatalf("funcionário não vinculado à pessoa: PessoaID=%d, pessoa ID=%d", f.PessoaID, p.ID)
	}
}

func TestCriarCompletoUsuarioDuplicadoNaoDeixaLinhas(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p1 := novaPessoa("repetido")
	f1 := Funcionario{}
	if err := repo.CriarCompleto(db, &p1, &f1); err != nil {
		t.Fatalf("CriarCompleto inicial: %v", err)
	}

	p2 := novaPessoa("repetido")
	f2 := Funcionario{}
	err := repo.CriarCompleto(db, &p2, &f2)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("esperado ErrDuplicatedKey, obtido %v", err)
	}

	if n := contar(t, db, &pessoa.Pessoa{}); n != 1 {
		t.Fatalf("pessoas = %d, esperado 1 (sem commit parcial)", n)
	}
	if n := contar(t, db, &Funcionario{}); n != 1 {
		t.Fatalf("funcionarios = %d, esperado 1 (sem commit parcial)", n)
	}
}

func TestCriarCompletoFalhaNoPerfilDesfazAPessoa(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	// departamento inexistente força violação de FK na segunda escrita
	depInexistente := uint(999)
	p := novaPessoa("sem-sorte")
	f := Funcionario{DepartamentoID: &depInexistente}
	if err := repo.CriarCompleto(db, &p, &f); err == nil {
		t.Fatal("CriarCompleto deveria falhar com departamento inexistente")
	}

	if n := contar(t, db, &pessoa.Pessoa{}); n != 0 {
		t.Fatalf("pessoas = %d, esperado 0 (rollback)", n)
	}
	if n := contar(t, db, &Funcionario{}); n != 0 {
		t.Fatalf("funcionarios = %d, esperado 0 (rollback)", n)
	}
}

func TestCriarCompletoConcorrenteComMesmoUsuario(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	var wg sync.WaitGroup
	resultados := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := novaPessoa("corrida")
			f := Funcionario{}
			resultados[i] = repo.CriarCompleto(db, &p, &f)
		}(i)
	}
	wg.Wait()

	sucessos := 0
	for _, err := range resultados {
		if err == nil {
			sucessos++
		}
	}
	if sucessos != 1 {
		t.Fatalf("sucessos = %d, esperado exatamente 1 (erros: %v)", sucessos, resultados)
	}
	if n := contar(t, db, &pessoa.Pessoa{}); n != 1 {
		t.Fatalf("pessoas = %d, esperado 1", n)
	}
	if n := contar(t, db, &Funcionario{}); n != 1 {
		t.Fatalf("funcionarios = %d, esperado 1", n)
	}
}

func TestDeletarDepartamentoAnulaCampoDoFuncionario(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	dep := departamento.Departamento{Nome: "Operações"}
	if err := db.Create(&dep).Error; err != nil {
		t.Fatalf("criar departamento: %v", err)
	}
	p := novaPessoa("funcionaria")
	f := Funcionario{DepartamentoID: &dep.ID}
	if err := repo.CriarCompleto(db, &p, &f); err != nil {
		t.Fatalf("CriarCompleto: %v", err)
	}

	if err := db.Delete(&departamento.Departamento{}, dep.ID).Error; err != nil {
		t.Fatalf("deletar departamento: %v", err)
	}

	recarregado, err := repo.BuscarPorID(db, f.ID)
	if err != nil {
		t.Fatalf("funcionário sumiu após exclusão do departamento: %v", err)
	}
	if recarregado.DepartamentoID != nil {
		t.Fatalf("DepartamentoID = %v, esperado nulo", *recarregado.DepartamentoID)
	}
}

func TestHierarquiaGestoresEConsultores(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	pGestor := novaPessoa("gestor")
	gestor := Funcionario{IsGestor: true}
	if err := repo.CriarCompleto(db, &pGestor, &gestor); err != nil {
		t.Fatalf("criar gestor: %v", err)
	}

	pCons := novaPessoa("consultor")
	consultor := Funcionario{GestorID: &gestor.ID}
	if err := repo.CriarCompleto(db, &pCons, &consultor); err != nil {
		t.Fatalf("criar consultor: %v", err)
	}

	// gestor subordinado a outro gestor não conta como consultor
	pSub := novaPessoa("subgestor")
	subGestor := Funcionario{IsGestor: true, GestorID: &gestor.ID}
	if err := repo.CriarCompleto(db, &pSub, &subGestor); err != nil {
		t.Fatalf("criar subgestor: %v", err)
	}

	gestores, err := repo.ListarGestores(db)
	if err != nil {
		t.Fatalf("ListarGestores: %v", err)
	}
	if len(gestores) != 2 {
		t.Fatalf("gestores = %d, esperado 2", len(gestores))
	}

	consultores, err := repo.ListarConsultoresDoGestor(db, gestor.ID)
	if err != nil {
		t.Fatalf("ListarConsultoresDoGestor: %v", err)
	}
	if len(consultores) != 1 || consultores[0].ID != consultor.ID {
		t.Fatalf("consultores do gestor = %+v, esperado apenas o consultor %d", consultores, consultor.ID)
	}
}
