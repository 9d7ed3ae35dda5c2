package errors

import (
	errs "errors"
	"fmt"
)

// Erros de autenticação e autorização
var (
	ErrCredenciaisInvalidas = errs.New("e-mail ou senha inválidos")
	ErrNaoAutenticado       = errs.New("token JWT inválido ou expirado")
	ErrAcessoNegado         = errs.New("acesso negado")
)

// NotFoundError indica que o recurso solicitado não existe
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound cria um NotFoundError com a mensagem padrão incluindo o id
func NewNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Recurso não encontrado. Id: %d", id)}
}

// IsNotFound verifica se o erro é um NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errs.As(err, &target)
}

// BusinessRuleError indica violação de uma regra de negócio
// (CPF/e-mail duplicado, CPF/CEP mal formado, cliente sem cadastro, etc.)
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// NewBusinessRule cria um BusinessRuleError
func NewBusinessRule(message string) *BusinessRuleError {
	return &BusinessRuleError{Message: message}
}

// IsBusinessRule verifica se o erro é um BusinessRuleError
func IsBusinessRule(err error) bool {
	var target *BusinessRuleError
	return errs.As(err, &target)
}

// IntegrityViolationError indica violação de integridade referencial no
// armazenamento. Nunca deve vazar como erro cru da camada de persistência.
type IntegrityViolationError struct {
	Message string
}

func (e *IntegrityViolationError) Error() string {
	return e.Message
}

// NewIntegrityViolation cria um IntegrityViolationError
func NewIntegrityViolation() *IntegrityViolationError {
	return &IntegrityViolationError{Message: "Violação de integridade referencial."}
}

// IsIntegrityViolation verifica se o erro é um IntegrityViolationError
func IsIntegrityViolation(err error) bool {
	var target *IntegrityViolationError
	return errs.As(err, &target)
}
