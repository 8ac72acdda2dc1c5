package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"vollmed/config"
	"vollmed/internal/pkg/database"
	"vollmed/internal/pkg/logger"
)

// Uso: migrate [-dir ./sql] [up|down|status|redo|version ...]
func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Falha ao carregar configurações das migrações.", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.", nil)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", cfg.MigrationsDir, "diretório com os arquivos de migração")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados para as migrações.", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Falha ao fechar a conexão com o banco de dados.", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Dialeto do goose não suportado.", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // sem comando, aplica as pendentes
	}
	command, args := arguments[0], arguments[1:]

	// goose trabalha sobre *sql.DB; o sqlx expõe o pool subjacente em db.DB.
	if err := goose.Run(command, db.DB, migrationsDir, args...); err != nil {
		log.Fatal("Falha ao executar o comando do goose.", err)
	}

	log.Info("Migrações concluídas.", map[string]interface{}{"command": command, "dir": migrationsDir})
}
