package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/dto"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

// AutenticacaoHandler lida com login e registro de contas
type AutenticacaoHandler struct {
	autenticacaoService *services.AutenticacaoService
}

// NewAutenticacaoHandler cria um novo AutenticacaoHandler
func NewAutenticacaoHandler(autenticacaoService *services.AutenticacaoService) *AutenticacaoHandler {
	return &AutenticacaoHandler{
		autenticacaoService: autenticacaoService,
	}
}

// Login autentica a conta e retorna o token JWT
func (h *AutenticacaoHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErroValidacao(c, err)
		return
	}

	token, err := h.autenticacaoService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Register cria uma conta CLIENTE para um cliente já cadastrado e retorna
// a projeção do cliente
func (h *AutenticacaoHandler) Register(c *gin.Context) {
	var req dto.RegistroUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErroValidacao(c, err)
		return
	}

	cliente, err := h.autenticacaoService.RegistrarUsuarioCliente(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClienteResponse(cliente, time.Now().UTC()))
}
