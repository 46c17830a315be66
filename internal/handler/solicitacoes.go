package handler

import (
	"fmt"
	"net/http"
	"time"

	"compracerta/internal/apierror"
	"compracerta/internal/dto"
	"compracerta/internal/middleware"
	"compracerta/internal/model"
	"compracerta/internal/service"
	"compracerta/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SolicitacoesHandler struct {
	svc    service.SolicitacaoService
	export service.ExportService
}

func NewSolicitacoesHandler(svc service.SolicitacaoService, export service.ExportService) *SolicitacoesHandler {
	return &SolicitacoesHandler{svc: svc, export: export}
}

// atorDoContexto derives the service-layer actor from the JWT claims set by
// the auth middleware.
func atorDoContexto(c *gin.Context) (service.Ator, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return service.Ator{}, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token malformado"))
		return service.Ator{}, false
	}
	return service.Ator{ID: id, Admin: claims.Papel == model.PapelAdmin}, true
}

func bindFiltro(c *gin.Context) (dto.SolicitacaoFilter, bool) {
	var filtro dto.SolicitacaoFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos: "+err.Error()))
		return filtro, false
	}
	// Out-of-range page/limit values are clamped, not rejected.
	p := pagination.Parse(c)
	filtro.Page = p.Page
	filtro.Limit = p.Limit
	return filtro, true
}

// Criar godoc
// @Summary Cria uma solicitação de compra
// @Tags solicitacoes
// @Accept json
// @Produce json
// @Param body body dto.CriarSolicitacaoRequest true "Solicitação"
// @Success 201 {object} dto.SolicitacaoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/solicitacoes [post]
func (h *SolicitacoesHandler) Criar(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	var req dto.CriarSolicitacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), ator, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista solicitações com filtros e paginação
// @Tags solicitacoes
// @Produce json
// @Param status query string false "Status"
// @Param prioridade query string false "Prioridade"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.SolicitacaoListResponse
// @Router /v1/solicitacoes [get]
func (h *SolicitacoesHandler) Listar(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), ator, filtro)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Board GET /v1/solicitacoes/board — the seven fixed kanban lanes.
func (h *SolicitacoesHandler) Board(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	resp, err := h.svc.Board(c.Request.Context(), ator, filtro)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /v1/solicitacoes/:id
func (h *SolicitacoesHandler) ObterPorID(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObterPorID(c.Request.Context(), ator, id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar PUT /v1/solicitacoes/:id
func (h *SolicitacoesHandler) Atualizar(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarSolicitacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Atualizar(c.Request.Context(), ator, id, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /v1/solicitacoes/:id — admin only, enforced by the router.
func (h *SolicitacoesHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Excluir(c.Request.Context(), id); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Transicionar godoc
// @Summary Move uma solicitação para um novo status
// @Tags solicitacoes
// @Accept json
// @Produce json
// @Param id path string true "ID da solicitação"
// @Param body body dto.TransicaoStatusRequest true "Status alvo"
// @Success 200 {object} dto.SolicitacaoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/solicitacoes/{id}/status [patch]
func (h *SolicitacoesHandler) Transicionar(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.TransicaoStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Transicionar(c.Request.Context(), ator, id, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historico GET /v1/solicitacoes/:id/historico
func (h *SolicitacoesHandler) Historico(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.Historico(c.Request.Context(), ator, id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar GET /v1/solicitacoes/export — xlsx download of the filtered list.
func (h *SolicitacoesHandler) Exportar(c *gin.Context) {
	ator, ok := atorDoContexto(c)
	if !ok {
		return
	}
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	conteudo, err := h.export.ExportarSolicitacoes(c.Request.Context(), ator, filtro)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	nome := fmt.Sprintf("solicitacoes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nome))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", conteudo)
}
