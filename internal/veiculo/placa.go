package veiculo

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Aceita o padrão antigo (ABC1234, hífen opcional) e o Mercosul
// (ABC1D23), sempre após caixa alta.
var placaRegex = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)

// NormalizarPlaca valida a placa e devolve sua forma canônica em
// maiúsculas. Formatos parciais ou ambíguos não são corrigidos.
func NormalizarPlaca(placa string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(placa))
	if !placaRegex.MatchString(upper) {
		return "", false
	}
	return upper, true
}

// RegistrarValidacaoPlaca instala a regra "placa" no validator.
func RegistrarValidacaoPlaca(v *validator.Validate) {
	v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
		_, ok := NormalizarPlaca(fl.Field().String())
		return ok
	})
}
