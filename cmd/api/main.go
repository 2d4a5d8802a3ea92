package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/auth"
	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/application/fornecedores"
	"github.com/docfinance/docfinance-api/internal/application/orcamento"
	"github.com/docfinance/docfinance-api/internal/application/relatorios"
	"github.com/docfinance/docfinance-api/internal/application/usuarios"
	"github.com/docfinance/docfinance-api/internal/infrastructure/email"
	infrapdf "github.com/docfinance/docfinance-api/internal/infrastructure/pdf"
	"github.com/docfinance/docfinance-api/internal/infrastructure/postgres"
	httpRouter "github.com/docfinance/docfinance-api/internal/interfaces/http"
	"github.com/docfinance/docfinance-api/pkg/config"
	"github.com/docfinance/docfinance-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	historicoRepo := postgres.NewHistoricoRepository(pool)
	secretariaRepo := postgres.NewSecretariaRepository(pool)
	recursoRepo := postgres.NewRecursoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	logRepo := postgres.NewLogAtividadeRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditoria := audit.NewRecorder(logRepo, log)

	// Avisos de aprovação de conta por e-mail. Sem SMTP_HOST o notificador
	// vira um no-op (ambiente local).
	var notifier usuarios.Notifier = email.Desativado{}
	if cfg.SMTP.Host != "" {
		notifier = email.NewSMTPNotifier(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	fornecedorUC := fornecedores.NewFornecedorUseCase(fornecedorRepo, auditoria)
	documentoUC := documentos.NewDocumentoUseCase(
		txRunner, documentoRepo, historicoRepo, fornecedorRepo, usuarioRepo, auditoria,
	)
	orcamentoUC := orcamento.NewOrcamentoUseCase(secretariaRepo, recursoRepo, auditoria)
	relatorioUC := relatorios.NewRelatorioUseCase(relatorioRepo, fornecedorRepo, secretariaRepo)
	usuarioUC := usuarios.NewUsuarioUseCase(usuarioRepo, notifier, auditoria, log)
	logsUC := usuarios.NewLogsUseCase(logRepo, usuarioRepo)

	// PDF: comprovante do documento com valores e tramitação
	reciboGen := infrapdf.NewMarotoReciboGenerator(cfg.App.Orgao)
	reciboUC := documentos.NewReciboUseCase(documentoRepo, historicoRepo, fornecedorRepo, reciboGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em /docs. O middleware aborta o processo quando o arquivo
	// não existe, então só é registrado se a especificação estiver no disco.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "DocFinance API",
		}))
	} else {
		log.Warn().Str("arquivo", swaggerFile).Msg("swagger.json ausente, documentação desativada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		FornecedorUC: fornecedorUC,
		DocumentoUC:  documentoUC,
		ReciboUC:     reciboUC,
		OrcamentoUC:  orcamentoUC,
		RelatorioUC:  relatorioUC,
		UsuarioUC:    usuarioUC,
		LogsUC:       logsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
