package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/auth"
	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/application/fornecedores"
	"github.com/docfinance/docfinance-api/internal/application/orcamento"
	"github.com/docfinance/docfinance-api/internal/application/relatorios"
	"github.com/docfinance/docfinance-api/internal/application/usuarios"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	FornecedorUC *fornecedores.FornecedorUseCase
	DocumentoUC  *documentos.DocumentoUseCase
	ReciboUC     *documentos.ReciboUseCase
	OrcamentoUC  *orcamento.OrcamentoUseCase
	RelatorioUC  *relatorios.RelatorioUseCase
	UsuarioUC    *usuarios.UsuarioUseCase
	LogsUC       *usuarios.LogsUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfis com permissão de escrita no cadastro e nos documentos.
	escrita := RequireRole(entity.RoleAdmin, entity.RoleTesouraria)
	admin := RequireRole(entity.RoleAdmin)

	// Fornecedores (protegido; escrita restrita)
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedoresGroup := protected.Group("/fornecedores")
	fornecedoresGroup.Get("/", fornecedorHandler.List)
	fornecedoresGroup.Get("/:id", fornecedorHandler.GetByID)
	fornecedoresGroup.Post("/", escrita, fornecedorHandler.Create)
	fornecedoresGroup.Put("/:id", escrita, fornecedorHandler.Update)
	fornecedoresGroup.Delete("/:id", escrita, fornecedorHandler.Delete)

	// Documentos financeiros (protegido; escrita restrita)
	documentoHandler := NewDocumentoHandler(deps.DocumentoUC, deps.ReciboUC)
	documentosGroup := protected.Group("/documentos")
	documentosGroup.Get("/", documentoHandler.List)
	documentosGroup.Get("/:id", documentoHandler.GetByID)
	documentosGroup.Get("/:id/historico", documentoHandler.Historico)
	documentosGroup.Get("/:id/etapas", documentoHandler.Timeline)
	documentosGroup.Get("/:id/recibo", documentoHandler.Recibo)
	documentosGroup.Post("/", escrita, documentoHandler.Create)
	documentosGroup.Put("/:id", escrita, documentoHandler.Update)
	documentosGroup.Delete("/:id", escrita, documentoHandler.Delete)
	documentosGroup.Post("/:id/baixa", escrita, documentoHandler.DarBaixa)
	documentosGroup.Post("/:id/etapa", escrita, documentoHandler.MudarEtapa)

	// Secretarias e recursos (protegido; escrita restrita)
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC)
	secretariasGroup := protected.Group("/secretarias")
	secretariasGroup.Get("/", orcamentoHandler.ListSecretarias)
	secretariasGroup.Get("/:id", orcamentoHandler.GetSecretaria)
	secretariasGroup.Post("/", escrita, orcamentoHandler.CreateSecretaria)
	secretariasGroup.Put("/:id", escrita, orcamentoHandler.UpdateSecretaria)
	secretariasGroup.Delete("/:id", escrita, orcamentoHandler.DeleteSecretaria)
	secretariasGroup.Post("/:id/recursos", escrita, orcamentoHandler.CreateRecurso)
	protected.Delete("/recursos/:id", escrita, orcamentoHandler.DeleteRecurso)

	// Relatórios (protegido, leitura para qualquer perfil)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC, deps.DocumentoUC)
	relatoriosGroup := protected.Group("/relatorios")
	relatoriosGroup.Get("/dashboard", relatorioHandler.Dashboard)
	relatoriosGroup.Get("/financeiro", relatorioHandler.Financeiro)
	relatoriosGroup.Get("/financeiro/csv", relatorioHandler.FinanceiroCSV)
	relatoriosGroup.Get("/contabilidade", relatorioHandler.Contabilidade)
	relatoriosGroup.Get("/contabilidade/csv", relatorioHandler.ContabilidadeCSV)
	relatoriosGroup.Get("/pagamentos", relatorioHandler.Pagamentos)
	relatoriosGroup.Get("/pagamentos/csv", relatorioHandler.PagamentosCSV)
	relatoriosGroup.Get("/fornecedores", relatorioHandler.Fornecedores)
	relatoriosGroup.Get("/fornecedores/csv", relatorioHandler.FornecedoresCSV)
	relatoriosGroup.Get("/documentos/csv", relatorioHandler.DocumentosCSV)

	// Administração de usuários e trilha de atividade (somente admin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.LogsUC)
	usuariosGroup := protected.Group("/usuarios", admin)
	usuariosGroup.Get("/", usuarioHandler.List)
	usuariosGroup.Post("/:id/aprovar", usuarioHandler.Aprovar)
	usuariosGroup.Post("/:id/rejeitar", usuarioHandler.Rejeitar)
	protected.Get("/logs", admin, usuarioHandler.Logs)
}
