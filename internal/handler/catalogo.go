package handler

import (
	"net/http"

	"compracerta/internal/apierror"
	"compracerta/internal/dto"
	"compracerta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler serves item groups, measure units and catalog items.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// ── Grupos de item ───────────────────────────────────────────────────────────

// CriarGrupo POST /v1/grupos-item
func (h *CatalogoHandler) CriarGrupo(c *gin.Context) {
	var req dto.GrupoItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarGrupo(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarGrupos GET /v1/grupos-item
func (h *CatalogoHandler) ListarGrupos(c *gin.Context) {
	resp, err := h.svc.ListarGrupos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar grupos de item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarGrupo PUT /v1/grupos-item/:id
func (h *CatalogoHandler) AtualizarGrupo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.GrupoItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AtualizarGrupo(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirGrupo DELETE /v1/grupos-item/:id
func (h *CatalogoHandler) ExcluirGrupo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.ExcluirGrupo(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Unidades de medida ───────────────────────────────────────────────────────

// CriarUnidadeMedida POST /v1/unidades-medida
func (h *CatalogoHandler) CriarUnidadeMedida(c *gin.Context) {
	var req dto.UnidadeMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarUnidadeMedida(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarUnidadesMedida GET /v1/unidades-medida
func (h *CatalogoHandler) ListarUnidadesMedida(c *gin.Context) {
	resp, err := h.svc.ListarUnidadesMedida(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar unidades de medida"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarUnidadeMedida PUT /v1/unidades-medida/:id
func (h *CatalogoHandler) AtualizarUnidadeMedida(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UnidadeMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AtualizarUnidadeMedida(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirUnidadeMedida DELETE /v1/unidades-medida/:id
func (h *CatalogoHandler) ExcluirUnidadeMedida(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.ExcluirUnidadeMedida(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Itens ────────────────────────────────────────────────────────────────────

// CriarItem POST /v1/itens
func (h *CatalogoHandler) CriarItem(c *gin.Context) {
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarItens GET /v1/itens
func (h *CatalogoHandler) ListarItens(c *gin.Context) {
	resp, err := h.svc.ListarItens(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar itens"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarItem PUT /v1/itens/:id
func (h *CatalogoHandler) AtualizarItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AtualizarItem(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirItem DELETE /v1/itens/:id
func (h *CatalogoHandler) ExcluirItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.ExcluirItem(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
