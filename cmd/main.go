package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/auth"
	"github.com/MemberTruck/api-membertruck/internal/cargo"
	"github.com/MemberTruck/api-membertruck/internal/config"
	"github.com/MemberTruck/api-membertruck/internal/dashboard"
	"github.com/MemberTruck/api-membertruck/internal/departamento"
	"github.com/MemberTruck/api-membertruck/internal/endereco"
	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/login"
	"github.com/MemberTruck/api-membertruck/internal/mensagem"
	"github.com/MemberTruck/api-membertruck/internal/middleware"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/plano"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/MemberTruck/api-membertruck/internal/utils/db"
	"github.com/MemberTruck/api-membertruck/internal/veiculo"
	"github.com/MemberTruck/api-membertruck/internal/whatsapp"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	database, err := db.ConnectDataBase(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&endereco.Endereco{},
		&pessoa.Pessoa{},
		&departamento.Departamento{},
		&cargo.Cargo{},
		&plano.Plano{},
		&funcionario.Funcionario{},
		&associado.Associado{},
		&veiculo.Veiculo{},
		&mensagem.Mensagem{},
		&auth.TokenRevogado{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Serviços e handlers
	authService := auth.NewService(cfg)
	authHandler := auth.NewHandler(database, authService)
	loginHandler := login.NewHandler(database, authService)
	pessoaHandler := pessoa.NewHandler(database)
	enderecoHandler := endereco.NewHandler(database)
	departamentoHandler := departamento.NewHandler(database)
	cargoHandler := cargo.NewHandler(database)
	planoHandler := plano.NewHandler(database)
	funcionarioHandler := funcionario.NewHandler(database)
	associadoHandler := associado.NewHandler(database)
	veiculoHandler := veiculo.NewHandler(database)
	mensagemHandler := mensagem.NewHandler(database, whatsapp.NewClient(cfg))
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.TempoDeResposta)

	// Rotas abertas
	r.HandleFunc("/login", loginHandler.Login).Methods("POST")
	r.HandleFunc("/token/refresh", authHandler.Refresh).Methods("POST")
	r.HandleFunc("/pessoas/create", pessoaHandler.Criar).Methods("POST")
	r.HandleFunc("/teste", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(authService.Middleware)

	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Pessoas
	api.HandleFunc("/pessoas", pessoaHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/pessoas/{id}", pessoaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pessoas/{id}", pessoaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pessoas/{id}", pessoaHandler.Deletar).Methods("DELETE")

	// Funcionários e hierarquia
	api.HandleFunc("/funcionarios", funcionarioHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/funcionarios", funcionarioHandler.Criar).Methods("POST")
	api.HandleFunc("/funcionarios/completo", funcionarioHandler.CriarCompleto).Methods("POST")
	api.HandleFunc("/funcionarios/{id}", funcionarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/funcionarios/{id}", funcionarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/funcionarios/{id}", funcionarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/gestores", funcionarioHandler.ListarGestores).Methods("GET")
	api.HandleFunc("/gestores/{id}/consultores", funcionarioHandler.ListarConsultores).Methods("GET")

	// Associados
	api.HandleFunc("/associados", associadoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/associados", associadoHandler.Criar).Methods("POST")
	api.HandleFunc("/associados/completo", associadoHandler.CriarCompleto).Methods("POST")
	api.HandleFunc("/associados/{id}", associadoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/associados/{id}", associadoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/associados/{id}", associadoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/associados/{id}/veiculos", veiculoHandler.ListarPorAssociado).Methods("GET")
	api.HandleFunc("/associados/{id}/mensagens", mensagemHandler.ListarPorAssociado).Methods("GET")
	api.HandleFunc("/consultores/{id}/associados", associadoHandler.ListarPorConsultor).Methods("GET")

	// Endereços
	api.HandleFunc("/enderecos", enderecoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/enderecos", enderecoHandler.Criar).Methods("POST")
	api.HandleFunc("/enderecos/{id}", enderecoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/enderecos/{id}", enderecoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/enderecos/{id}", enderecoHandler.Deletar).Methods("DELETE")

	// Departamentos
	api.HandleFunc("/departamentos", departamentoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/departamentos", departamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/departamentos/{id}", departamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/departamentos/{id}", departamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/departamentos/{id}", departamentoHandler.Deletar).Methods("DELETE")

	// Cargos
	api.HandleFunc("/cargos", cargoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/cargos", cargoHandler.Criar).Methods("POST")
	api.HandleFunc("/cargos/{id}", cargoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cargos/{id}", cargoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cargos/{id}", cargoHandler.Deletar).Methods("DELETE")

	// Planos
	api.HandleFunc("/planos", planoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/planos", planoHandler.Criar).Methods("POST")
	api.HandleFunc("/planos/{id}", planoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/planos/{id}", planoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/planos/{id}", planoHandler.Deletar).Methods("DELETE")

	// Veículos
	api.HandleFunc("/veiculos", veiculoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/veiculos", veiculoHandler.Criar).Methods("POST")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Deletar).Methods("DELETE")

	// Mensagens WhatsApp
	api.HandleFunc("/mensagens", mensagemHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/mensagens", mensagemHandler.Criar).Methods("POST")
	api.HandleFunc("/mensagens/enviar", mensagemHandler.Enviar).Methods("POST")

	// Dashboard
	api.HandleFunc("/dashboard", dashboardHandler.Resumo).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	fmt.Println("Servidor rodando em http://localhost:" + cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, c.Handler(r)))
}
