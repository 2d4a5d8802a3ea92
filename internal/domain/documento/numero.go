package documento

import (
	"fmt"
	"strconv"
	"time"
)

// prefixoNumero é o layout do prefixo do número único: dia, mês, ano, hora,
// minuto e segundo locais (DDMMAAAAHHMMSS).
const prefixoNumero = "02012006150405"

// GerarNumero monta o número único do documento: prefixo DDMMAAAAHHMMSS do
// instante informado seguido de um sequencial diário de 4 dígitos.
//
// ultimoNumeroHoje é o número do documento mais recente registrado no dia
// corrente (ordenado decrescente por número), ou vazio quando não há nenhum.
// O sequencial é os 4 últimos dígitos desse número mais um; se o sufixo não
// for numérico, recomeça em 1 (falha de parse é tolerada, não fatal).
//
// Dois chamadores no mesmo segundo podem computar o mesmo número: a unicidade
// é garantida pela constraint do banco, e quem cria o documento deve repetir a
// geração ao receber violação de unicidade.
func GerarNumero(agora time.Time, ultimoNumeroHoje string) string {
	sequencial := 1
	if len(ultimoNumeroHoje) >= 4 {
		if n, err := strconv.Atoi(ultimoNumeroHoje[len(ultimoNumeroHoje)-4:]); err == nil {
			sequencial = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", agora.Format(prefixoNumero), sequencial)
}
