package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/dto"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

// UsuarioHandler lida com a administração de contas de usuário
type UsuarioHandler struct {
	autenticacaoService *services.AutenticacaoService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(autenticacaoService *services.AutenticacaoService) *UsuarioHandler {
	return &UsuarioHandler{
		autenticacaoService: autenticacaoService,
	}
}

// CriarAdmin cria uma conta ADMIN. A rota é restrita a administradores.
func (h *UsuarioHandler) CriarAdmin(c *gin.Context) {
	var req dto.AdminCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErroValidacao(c, err)
		return
	}

	if err := h.autenticacaoService.CriarAdmin(c.Request.Context(), req.Email, req.Senha); err != nil {
		responderErroDominio(c, err)
		return
	}

	c.Status(http.StatusCreated)
}
