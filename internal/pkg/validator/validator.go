package validator

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperror "vollmed/internal/errors"
)

var (
	crmRegex = regexp.MustCompile(`^\d{4,6}$`)
	cepRegex = regexp.MustCompile(`^\d{8}$`)

	once     sync.Once
	validate *validator.Validate
)

// enumValue é implementado por tipos com conjunto fechado de valores (e.g., domain.Especialidade).
type enumValue interface {
	Valid() bool
}

// instance devolve o validador compartilhado, registrando as regras customizadas na primeira chamada.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// Usa o nome do campo JSON nas mensagens, para o cliente saber qual campo corrigir.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		_ = validate.RegisterValidation("crm", func(fl validator.FieldLevel) bool {
			return crmRegex.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
			return cepRegex.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("especialidade", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enumValue)
			return ok && e.Valid()
		})
	})
	return validate
}

// Struct valida v e devolve um FieldError por regra violada.
// Uma lista vazia significa payload válido.
func Struct(v any) []apperror.FieldError {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: uso incorreto (e.g., v nil). Reportamos como payload inválido.
		return []apperror.FieldError{{Campo: "", Mensagem: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Campo:    fieldPath(fe.Namespace()),
			Mensagem: message(fe),
		})
	}
	return fields
}

// fieldPath remove o nome do tipo raiz: "DadosCadastroMedico.endereco.uf" -> "endereco.uf".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "não deve estar em branco"
	case "email":
		return "deve ser um endereço de email bem formado"
	case "crm":
		return "deve conter de 4 a 6 dígitos"
	case "cep":
		return "deve conter 8 dígitos"
	case "uuid":
		return "deve ser um UUID válido"
	case "len":
		return "deve conter " + fe.Param() + " caracteres"
	case "especialidade":
		return "deve ser uma das especialidades: ORTOPEDIA, CARDIOLOGIA, GINECOLOGIA, DERMATOLOGIA"
	}
	return "valor inválido (" + fe.Tag() + ")"
}
