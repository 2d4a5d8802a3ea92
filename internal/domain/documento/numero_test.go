package documento_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/docfinance/docfinance-api/internal/domain/documento"
)

var instante = time.Date(2025, 9, 1, 14, 30, 45, 0, time.Local)

// Sem documento anterior no dia o sequencial começa em 0001.
func TestGerarNumero_PrimeiroDoDia(t *testing.T) {
	numero := documento.GerarNumero(instante, "")
	assert.Equal(t, "010920251430450001", numero)
}

// O sequencial continua a partir dos 4 últimos dígitos do número anterior.
func TestGerarNumero_IncrementaSequencial(t *testing.T) {
	anterior := documento.GerarNumero(instante, "")
	numero := documento.GerarNumero(instante.Add(time.Second), anterior)
	assert.Equal(t, "010920251430460002", numero)
}

func TestGerarNumero_SequencialAlto(t *testing.T) {
	numero := documento.GerarNumero(instante, "010920250800000041")
	assert.Equal(t, "010920251430450042", numero)
}

func TestGerarNumero_ZeroPadding(t *testing.T) {
	numero := documento.GerarNumero(instante, "010920250800000009")
	assert.Equal(t, "0010", numero[len(numero)-4:])
}

// Sufixo não numérico não é fatal: o sequencial recomeça em 1.
func TestGerarNumero_SufixoNaoNumericoReiniciaSequencial(t *testing.T) {
	numero := documento.GerarNumero(instante, "01092025080000ABCD")
	assert.Equal(t, "0001", numero[len(numero)-4:])
}

func TestGerarNumero_NumeroAnteriorCurto(t *testing.T) {
	numero := documento.GerarNumero(instante, "12")
	assert.Equal(t, "0001", numero[len(numero)-4:])
}

// O prefixo sempre tem 14 dígitos locais DDMMAAAAHHMMSS.
func TestGerarNumero_FormatoPrefixo(t *testing.T) {
	numero := documento.GerarNumero(instante, "")
	assert.Len(t, numero, 18)
	assert.Equal(t, "01092025143045", numero[:14])
}
