// Package email envia os avisos do ciclo de aprovação de contas via SMTP.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/docfinance/docfinance-api/internal/application/usuarios"
)

// Config parâmetros do servidor SMTP.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ usuarios.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier implementa usuarios.Notifier com smtp.SendMail.
type SMTPNotifier struct {
	cfg Config
}

// NewSMTPNotifier constrói o notificador.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// ContaAprovada avisa o titular que a conta foi liberada.
func (n *SMTPNotifier) ContaAprovada(email, nome string) error {
	corpo := fmt.Sprintf(
		"Olá %s,\r\n\r\nSua conta foi aprovada. Você já pode acessar o sistema com o seu e-mail e senha.\r\n",
		nome)
	return n.enviar(email, "Conta aprovada", corpo)
}

// ContaRejeitada avisa o titular que o cadastro não foi aceito.
func (n *SMTPNotifier) ContaRejeitada(email, nome string) error {
	corpo := fmt.Sprintf(
		"Olá %s,\r\n\r\nSeu cadastro não foi aprovado. Procure o administrador do sistema para mais informações.\r\n",
		nome)
	return n.enviar(email, "Cadastro não aprovado", corpo)
}

func (n *SMTPNotifier) enviar(to, assunto, corpo string) error {
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s",
		to, n.cfg.From, assunto, corpo))
	return smtp.SendMail(addr, auth, n.cfg.From, []string{to}, msg)
}

// Desativado é um Notifier que não envia nada. Usado quando o SMTP não está
// configurado (ambiente local).
type Desativado struct{}

func (Desativado) ContaAprovada(string, string) error  { return nil }
func (Desativado) ContaRejeitada(string, string) error { return nil }
