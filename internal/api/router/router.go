package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "vollmed/docs" // registra a especificação gerada pelo swag

	"vollmed/internal/api/medico"
	"vollmed/internal/pkg/cache"
	"vollmed/internal/pkg/logger"
	"vollmed/internal/pkg/middleware"
)

// RateLimitConfig agrupa os parâmetros do rate limiting global.
type RateLimitConfig struct {
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
// Com cacheClient nil o rate limiting fica desativado.
func NewRouter(medicoHandler *medico.Handler, log logger.Logger, cacheClient cache.Client, rl RateLimitConfig) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check e Documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Rotas de Médicos ---
	mux.HandleFunc("POST /medicos", medicoHandler.CadastrarHandler)
	mux.HandleFunc("GET /medicos", medicoHandler.ListarHandler)
	mux.HandleFunc("PUT /medicos", medicoHandler.AtualizarHandler)
	mux.HandleFunc("GET /medicos/{id}", medicoHandler.DetalharHandler)
	mux.HandleFunc("DELETE /medicos/{id}", medicoHandler.ExcluirHandler)

	// --- 3. Middlewares globais (o primeiro é o mais externo) ---
	mws := []func(http.Handler) http.Handler{middleware.RequestLogger(log)}
	if cacheClient != nil {
		mws = append(mws, middleware.RateLimiter(cacheClient, rl.MaxRequests, rl.Period, log))
	}

	return middleware.Chain(mux, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
