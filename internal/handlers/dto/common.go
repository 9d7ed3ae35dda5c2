package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// StandardError é o envelope padrão de erro da API. Todos os caminhos
// não-2xx produzem este formato.
type StandardError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewStandardError cria o envelope de erro para a requisição corrente
func NewStandardError(c *gin.Context, status int, erro, mensagem string) StandardError {
	return StandardError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     erro,
		Message:   mensagem,
		Path:      c.Request.URL.Path,
	}
}

// MensagemDeValidacao traduz erros de binding/validação em uma mensagem
// legível. Erros que não são de validação de campo viram mensagem genérica.
func MensagemDeValidacao(err error) string {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return "Requisição inválida"
	}

	mensagens := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		mensagens = append(mensagens, mensagemParaCampo(fe))
	}
	return strings.Join(mensagens, "; ")
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

func mensagemParaCampo(fe validator.FieldError) string {
	campo := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", campo)
	case "email":
		return "Formato de e-mail inválido"
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres", campo, fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", campo, fe.Param())
	case "len":
		return fmt.Sprintf("O campo %s deve ter %s caracteres", campo, fe.Param())
	case "datetime":
		return fmt.Sprintf("O campo %s deve estar no formato AAAA-MM-DD", campo)
	default:
		return fmt.Sprintf("O campo %s é inválido", campo)
	}
}
