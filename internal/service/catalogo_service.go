package service

import (
	"context"
	"errors"

	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService covers item groups, measure units and catalog items.
type CatalogoService interface {
	CriarGrupo(ctx context.Context, req dto.GrupoItemRequest) (dto.GrupoItemResponse, error)
	ListarGrupos(ctx context.Context) ([]dto.GrupoItemResponse, error)
	AtualizarGrupo(ctx context.Context, id uuid.UUID, req dto.GrupoItemRequest) (dto.GrupoItemResponse, error)
	ExcluirGrupo(ctx context.Context, id uuid.UUID) error

	CriarUnidadeMedida(ctx context.Context, req dto.UnidadeMedidaRequest) (dto.UnidadeMedidaResponse, error)
	ListarUnidadesMedida(ctx context.Context) ([]dto.UnidadeMedidaResponse, error)
	AtualizarUnidadeMedida(ctx context.Context, id uuid.UUID, req dto.UnidadeMedidaRequest) (dto.UnidadeMedidaResponse, error)
	ExcluirUnidadeMedida(ctx context.Context, id uuid.UUID) error

	CriarItem(ctx context.Context, req dto.ItemRequest) (dto.ItemResponse, error)
	ListarItens(ctx context.Context) ([]dto.ItemResponse, error)
	AtualizarItem(ctx context.Context, id uuid.UUID, req dto.ItemRequest) (dto.ItemResponse, error)
	ExcluirItem(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func mapGrupo(g model.GrupoItem) dto.GrupoItemResponse {
	return dto.GrupoItemResponse{ID: g.ID.String(), Nome: g.Nome}
}

func mapUnidadeMedida(um model.UnidadeMedida) dto.UnidadeMedidaResponse {
	return dto.UnidadeMedidaResponse{ID: um.ID.String(), Nome: um.Nome, Abreviacao: um.Abreviacao}
}

func mapItem(i model.Item) dto.ItemResponse {
	resp := dto.ItemResponse{
		ID:         i.ID.String(),
		Nome:       i.Nome,
		PrecoMedio: i.PrecoMedio,
		Grupo:      dto.GrupoItemResponse{ID: i.GrupoID.String(), Nome: "Não encontrado"},
		UnidadeMedida: dto.UnidadeMedidaResponse{
			ID: i.UnidadeMedidaID.String(), Nome: "Não encontrado",
		},
	}
	if i.Grupo != nil {
		resp.Grupo = mapGrupo(*i.Grupo)
	}
	if i.UnidadeMedida != nil {
		resp.UnidadeMedida = mapUnidadeMedida(*i.UnidadeMedida)
	}
	return resp
}

// ── Grupos ──────────────────────────────────────────────────────────────────

func (s *catalogoService) CriarGrupo(ctx context.Context, req dto.GrupoItemRequest) (dto.GrupoItemResponse, error) {
	g := &model.GrupoItem{Nome: req.Nome}
	if err := s.repo.CreateGrupo(ctx, g); err != nil {
		return dto.GrupoItemResponse{}, err
	}
	return mapGrupo(*g), nil
}

func (s *catalogoService) ListarGrupos(ctx context.Context) ([]dto.GrupoItemResponse, error) {
	list, err := s.repo.ListGrupos(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.GrupoItemResponse, 0, len(list))
	for _, g := range list {
		result = append(result, mapGrupo(g))
	}
	return result, nil
}

func (s *catalogoService) AtualizarGrupo(ctx context.Context, id uuid.UUID, req dto.GrupoItemRequest) (dto.GrupoItemResponse, error) {
	g := &model.GrupoItem{ID: id, Nome: req.Nome}
	if err := s.repo.UpdateGrupo(ctx, g); err != nil {
		return dto.GrupoItemResponse{}, err
	}
	return mapGrupo(*g), nil
}

func (s *catalogoService) ExcluirGrupo(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGrupo(ctx, id)
}

// ── Unidades de medida ──────────────────────────────────────────────────────

func (s *catalogoService) CriarUnidadeMedida(ctx context.Context, req dto.UnidadeMedidaRequest) (dto.UnidadeMedidaResponse, error) {
	um := &model.UnidadeMedida{Nome: req.Nome, Abreviacao: req.Abreviacao}
	if err := s.repo.CreateUnidadeMedida(ctx, um); err != nil {
		return dto.UnidadeMedidaResponse{}, err
	}
	return mapUnidadeMedida(*um), nil
}

func (s *catalogoService) ListarUnidadesMedida(ctx context.Context) ([]dto.UnidadeMedidaResponse, error) {
	list, err := s.repo.ListUnidadesMedida(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UnidadeMedidaResponse, 0, len(list))
	for _, um := range list {
		result = append(result, mapUnidadeMedida(um))
	}
	return result, nil
}

func (s *catalogoService) AtualizarUnidadeMedida(ctx context.Context, id uuid.UUID, req dto.UnidadeMedidaRequest) (dto.UnidadeMedidaResponse, error) {
	um := &model.UnidadeMedida{ID: id, Nome: req.Nome, Abreviacao: req.Abreviacao}
	if err := s.repo.UpdateUnidadeMedida(ctx, um); err != nil {
		return dto.UnidadeMedidaResponse{}, err
	}
	return mapUnidadeMedida(*um), nil
}

func (s *catalogoService) ExcluirUnidadeMedida(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUnidadeMedida(ctx, id)
}

// ── Itens ───────────────────────────────────────────────────────────────────

func (s *catalogoService) CriarItem(ctx context.Context, req dto.ItemRequest) (dto.ItemResponse, error) {
	grupoID, err := uuid.Parse(req.GrupoID)
	if err != nil {
		return dto.ItemResponse{}, errors.New("grupo_id inválido")
	}
	umID, err := uuid.Parse(req.UnidadeMedidaID)
	if err != nil {
		return dto.ItemResponse{}, errors.New("unidade_medida_id inválido")
	}
	if req.PrecoMedio.IsNegative() {
		return dto.ItemResponse{}, errors.New("preço médio não pode ser negativo")
	}
	i := &model.Item{
		Nome:            req.Nome,
		GrupoID:         grupoID,
		UnidadeMedidaID: umID,
		PrecoMedio:      req.PrecoMedio,
	}
	if err := s.repo.CreateItem(ctx, i); err != nil {
		return dto.ItemResponse{}, err
	}
	criado, err := s.repo.FindItemByID(ctx, i.ID)
	if err != nil {
		return mapItem(*i), nil
	}
	return mapItem(*criado), nil
}

func (s *catalogoService) ListarItens(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := s.repo.ListItens(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		result = append(result, mapItem(i))
	}
	return result, nil
}

func (s *catalogoService) AtualizarItem(ctx context.Context, id uuid.UUID, req dto.ItemRequest) (dto.ItemResponse, error) {
	i, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return dto.ItemResponse{}, errors.New("item não encontrado")
	}
	grupoID, err := uuid.Parse(req.GrupoID)
	if err != nil {
		return dto.ItemResponse{}, errors.New("grupo_id inválido")
	}
	umID, err := uuid.Parse(req.UnidadeMedidaID)
	if err != nil {
		return dto.ItemResponse{}, errors.New("unidade_medida_id inválido")
	}
	if req.PrecoMedio.IsNegative() {
		return dto.ItemResponse{}, errors.New("preço médio não pode ser negativo")
	}
	i.Nome = req.Nome
	i.GrupoID = grupoID
	i.UnidadeMedidaID = umID
	i.PrecoMedio = req.PrecoMedio
	if err := s.repo.UpdateItem(ctx, i); err != nil {
		return dto.ItemResponse{}, err
	}
	atualizado, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return mapItem(*i), nil
	}
	return mapItem(*atualizado), nil
}

func (s *catalogoService) ExcluirItem(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}
