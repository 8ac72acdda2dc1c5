package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"vollmed/config"
	"vollmed/internal/pkg/cache"
	"vollmed/internal/pkg/database"
	"vollmed/internal/pkg/logger"

	// Camadas de Médicos para Injeção de Dependências
	"vollmed/internal/api/medico"            // Handlers
	"vollmed/internal/api/router"            // Roteador central
	"vollmed/internal/repository/medicorepo" // Acesso a Dados
	"vollmed/internal/service/medicoservice" // Lógica de Negócio
)

// @title Voll.med API
// @version 1.0
// @description Cadastro de médicos: cadastro, listagem paginada, atualização, exclusão lógica e detalhamento.
// @BasePath /
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Falha ao carregar configurações.", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.", nil)
	}
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 1. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Redis (opcional): sem ele o rate limiting fica desativado.
	var cacheClient cache.Client
	if cfg.RateLimitEnabled {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Warn("Redis indisponível. Rate limiting desativado.", map[string]interface{}{"error": err.Error()})
		} else {
			defer redisClient.Close()
			cacheClient = redisClient
			log.Info("Conexão Redis estabelecida.", nil)
		}
	}

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	medicoRepo := medicorepo.NewMedicoRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositório de Médico inicializado.", nil)

	medicoSvc := medicoservice.NewService(medicoRepo, database.NewTransactor(db), log)
	log.Debug("Serviço de Médico inicializado.", nil)

	medicoHandler := medico.NewHandler(medicoSvc, log, medicorepo.SortableField)
	log.Debug("Handler de Médico inicializado.", nil)

	// 3. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(medicoHandler, log, cacheClient, router.RateLimitConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Voll.med ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
