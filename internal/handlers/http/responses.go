package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/dto"
)

// responderErroDominio mapeia os erros de domínio para o envelope padrão
func responderErroDominio(c *gin.Context, err error) {
	switch {
	case errors.IsNotFound(err):
		resposta := dto.NewStandardError(c, http.StatusNotFound, "Recurso não encontrado", err.Error())
		c.JSON(http.StatusNotFound, resposta)
	case errors.IsBusinessRule(err):
		resposta := dto.NewStandardError(c, http.StatusBadRequest, "Violação de regra de negócio", err.Error())
		c.JSON(http.StatusBadRequest, resposta)
	case errors.IsIntegrityViolation(err):
		resposta := dto.NewStandardError(c, http.StatusConflict, "Violação de integridade", err.Error())
		c.JSON(http.StatusConflict, resposta)
	case errs.Is(err, errors.ErrCredenciaisInvalidas):
		resposta := dto.NewStandardError(c, http.StatusUnauthorized, "Credenciais inválidas", err.Error())
		c.JSON(http.StatusUnauthorized, resposta)
	default:
		resposta := dto.NewStandardError(c, http.StatusInternalServerError, "Erro interno do servidor",
			"Ocorreu um erro inesperado. Tente novamente mais tarde.")
		c.JSON(http.StatusInternalServerError, resposta)
	}
}

// responderErroValidacao responde 400 com a mensagem de validação traduzida
func responderErroValidacao(c *gin.Context, err error) {
	resposta := dto.NewStandardError(c, http.StatusBadRequest, "Erro de validação", dto.MensagemDeValidacao(err))
	c.JSON(http.StatusBadRequest, resposta)
}

// paginacaoDaRequisicao lê page e size da query string, aplicando limites
func paginacaoDaRequisicao(c *gin.Context) repositories.Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	return repositories.Pagination{Page: page, Size: size}
}

// idDaRota lê o path parameter id
func idDaRota(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resposta := dto.NewStandardError(c, http.StatusBadRequest,
			"Requisição inválida", "O parâmetro id deve ser numérico.")
		c.JSON(http.StatusBadRequest, resposta)
		return 0, false
	}
	return id, true
}
