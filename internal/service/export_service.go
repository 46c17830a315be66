package service

import (
	"bytes"
	"context"
	"fmt"

	"compracerta/internal/dto"
	"compracerta/internal/repository"
	"compracerta/pkg/format"

	"github.com/xuri/excelize/v2"
)

// ExportService renders the filtered request list as a spreadsheet for
// offline triage and reporting. Admin-only; the caller enforces the role.
type ExportService interface {
	ExportarSolicitacoes(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) ([]byte, error)
}

type exportService struct {
	repo repository.SolicitacaoRepository
}

func NewExportService(repo repository.SolicitacaoRepository) ExportService {
	return &exportService{repo: repo}
}

var exportHeader = []string{
	"ID", "Cliente", "Unidade", "Rubrica", "Tipo", "Prioridade",
	"Status", "Solicitante", "Total Estimado", "Criada em",
}

func (s *exportService) ExportarSolicitacoes(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) ([]byte, error) {
	q, err := montarQuery(ator, filtro, false)
	if err != nil {
		return nil, err
	}
	solicitacoes, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Solicitações"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row := range solicitacoes {
		resp := montarResposta(&solicitacoes[row], false)
		values := []interface{}{
			resp.ID,
			resp.ClienteNome,
			resp.UnidadeNome,
			resp.RubricaNome,
			resp.TipoLabel,
			resp.PrioridadeLabel,
			resp.StatusLabel,
			resp.SolicitanteNome,
			format.Moeda(resp.TotalEstimado),
			resp.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export: cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
