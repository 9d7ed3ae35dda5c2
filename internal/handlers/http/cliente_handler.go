package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/dto"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

// ClienteHandler lida com requisições HTTP relacionadas a clientes
type ClienteHandler struct {
	clienteService *services.ClienteService
}

// NewClienteHandler cria um novo ClienteHandler
func NewClienteHandler(clienteService *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{
		clienteService: clienteService,
	}
}

// ListarTodos lista os clientes paginados, sem filtros
func (h *ClienteHandler) ListarTodos(c *gin.Context) {
	page := paginacaoDaRequisicao(c)

	clientes, total, err := h.clienteService.ListarTodos(c.Request.Context(), page)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientePage(clientes, page.Page, page.Size, total))
}

// BuscarPorFiltros lista os clientes que satisfazem a conjunção dos filtros
// presentes na query string. Sem filtros, equivale a ListarTodos.
func (h *ClienteHandler) BuscarPorFiltros(c *gin.Context) {
	filters := repositories.ClienteFilters{
		Nome:       c.Query("nome"),
		CPF:        c.Query("cpf"),
		Email:      c.Query("email"),
		Telefone:   c.Query("telefone"),
		CEP:        c.Query("cep"),
		Logradouro: c.Query("logradouro"),
		Cidade:     c.Query("cidade"),
		Estado:     c.Query("estado"),
	}

	if valor := c.Query("dataNascimento"); valor != "" {
		data, err := time.ParseInLocation("2006-01-02", valor, time.UTC)
		if err != nil {
			resposta := dto.NewStandardError(c, http.StatusBadRequest,
				"Requisição inválida", "O parâmetro dataNascimento deve estar no formato AAAA-MM-DD.")
			c.JSON(http.StatusBadRequest, resposta)
			return
		}
		filters.DataNascimento = &data
	}

	page := paginacaoDaRequisicao(c)

	clientes, total, err := h.clienteService.BuscarPorFiltros(c.Request.Context(), filters, page)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientePage(clientes, page.Page, page.Size, total))
}

// BuscarPorID busca um cliente por id
func (h *ClienteHandler) BuscarPorID(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	cliente, err := h.clienteService.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClienteResponse(cliente, time.Now().UTC()))
}

// Adicionar cria um novo cliente
func (h *ClienteHandler) Adicionar(c *gin.Context) {
	var req dto.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErroValidacao(c, err)
		return
	}

	input, err := req.ParaInput()
	if err != nil {
		resposta := dto.NewStandardError(c, http.StatusBadRequest, "Erro de validação", err.Error())
		c.JSON(http.StatusBadRequest, resposta)
		return
	}

	cliente, err := h.clienteService.Adicionar(c.Request.Context(), input)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, cliente.ID))
	c.JSON(http.StatusCreated, dto.ToClienteResponse(cliente, time.Now().UTC()))
}

// Atualizar sobrescreve os dados de um cliente existente
func (h *ClienteHandler) Atualizar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErroValidacao(c, err)
		return
	}

	input, err := req.ParaInput()
	if err != nil {
		resposta := dto.NewStandardError(c, http.StatusBadRequest, "Erro de validação", err.Error())
		c.JSON(http.StatusBadRequest, resposta)
		return
	}

	cliente, err := h.clienteService.Atualizar(c.Request.Context(), id, input)
	if err != nil {
		responderErroDominio(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClienteResponse(cliente, time.Now().UTC()))
}

// Remover exclui um cliente e a conta de usuário vinculada a ele
func (h *ClienteHandler) Remover(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.clienteService.Remover(c.Request.Context(), id); err != nil {
		responderErroDominio(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
