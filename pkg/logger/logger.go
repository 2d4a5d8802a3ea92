// Package logger encapsula o zerolog usado em toda a API. Os casos de uso
// recebem *Logger por injeção; nada escreve no logger global.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parâmetros vindos de APP_ENV e LOG_LEVEL.
type Config struct {
	Env   string // development imprime em console; qualquer outro valor, JSON por linha
	Level string // trace, debug, info, warn, error
}

// Logger emissor de eventos estruturados com timestamp.
type Logger struct {
	zl zerolog.Logger
}

// New monta o logger conforme o ambiente. Nível desconhecido ou vazio cai em
// info. O logger global do zerolog é apontado para a mesma saída, para as
// bibliotecas que logam por conta própria.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With inicia um sublogger com campos fixos (ex.: o nome do caso de uso).
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expõe o logger interno para quem precisa da API completa.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
