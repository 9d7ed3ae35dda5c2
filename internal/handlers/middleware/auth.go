package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/dto"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/security"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

const principalKey = "principal"

// AuthMiddleware valida o token Bearer e carrega o principal no contexto
// da requisição
type AuthMiddleware struct {
	tokenService *services.TokenService
	autenticacao *services.AutenticacaoService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokenService *services.TokenService, autenticacao *services.AutenticacaoService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		autenticacao: autenticacao,
	}
}

// Autenticar exige um token Bearer válido. O subject do token identifica a
// conta, da qual o principal (role + cliente vinculado) é derivado.
func (m *AuthMiddleware) Autenticar() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extrairBearer(c.GetHeader("Authorization"))
		if token == "" {
			abortarNaoAutenticado(c)
			return
		}

		email, err := m.tokenService.ExtrairSubject(token)
		if err != nil {
			abortarNaoAutenticado(c)
			return
		}

		principal, err := m.autenticacao.CarregarPrincipal(c.Request.Context(), email)
		if err != nil {
			abortarNaoAutenticado(c)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin exige o papel ADMIN
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal == nil {
			abortarNaoAutenticado(c)
			return
		}
		if !principal.IsAdmin() {
			abortarAcessoNegado(c)
			return
		}

		c.Next()
	}
}

// RequireAdminOuProprioCliente exige ADMIN ou que o cliente vinculado ao
// principal seja o cliente do path parameter id
func RequireAdminOuProprioCliente() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal == nil {
			abortarNaoAutenticado(c)
			return
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			resposta := dto.NewStandardError(c, http.StatusBadRequest,
				"Requisição inválida", "O parâmetro id deve ser numérico.")
			c.AbortWithStatusJSON(http.StatusBadRequest, resposta)
			return
		}

		if !security.PodeAcessarCliente(principal, id) {
			abortarAcessoNegado(c)
			return
		}

		c.Next()
	}
}

// Principal retorna o principal autenticado da requisição, ou nil
func Principal(c *gin.Context) *security.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}

	principal, ok := value.(*security.Principal)
	if !ok {
		return nil
	}
	return principal
}

func extrairBearer(header string) string {
	const prefixo = "Bearer "
	if !strings.HasPrefix(header, prefixo) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefixo))
}

func abortarNaoAutenticado(c *gin.Context) {
	resposta := dto.NewStandardError(c, http.StatusUnauthorized,
		"Não Autenticado",
		"Acesso negado. Você precisa estar autenticado para acessar este recurso.")
	c.AbortWithStatusJSON(http.StatusUnauthorized, resposta)
}

func abortarAcessoNegado(c *gin.Context) {
	resposta := dto.NewStandardError(c, http.StatusForbidden,
		"Acesso Negado",
		"Acesso negado. Você não tem permissão para acessar este recurso.")
	c.AbortWithStatusJSON(http.StatusForbidden, resposta)
}
