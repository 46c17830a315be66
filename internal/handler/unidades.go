package handler

import (
	"net/http"

	"compracerta/internal/apierror"
	"compracerta/internal/dto"
	"compracerta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnidadesHandler struct{ svc service.UnidadeService }

func NewUnidadesHandler(svc service.UnidadeService) *UnidadesHandler {
	return &UnidadesHandler{svc: svc}
}

// Criar POST /v1/unidades
func (h *UnidadesHandler) Criar(c *gin.Context) {
	var req dto.UnidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/unidades?cliente_id=...
func (h *UnidadesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("cliente_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar PUT /v1/unidades/:id
func (h *UnidadesHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UnidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Atualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /v1/unidades/:id
func (h *UnidadesHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Excluir(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
