package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"
	"compracerta/internal/worker"
	"compracerta/internal/ws"
	"compracerta/pkg/format"
	"compracerta/pkg/pagination"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Ator identifies the calling user inside the service layer.
type Ator struct {
	ID    uuid.UUID
	Admin bool
}

// ErrNaoEncontrada is returned when a request id resolves to nothing.
var ErrNaoEncontrada = errors.New("solicitação não encontrada")

// ErrAcessoNegado is returned when a normal user touches a request that is
// not theirs.
var ErrAcessoNegado = errors.New("acesso negado")

// ValidacaoError carries typed field errors detected before any write.
type ValidacaoError struct {
	Fields map[string]string
}

func (e *ValidacaoError) Error() string { return "erro de validação" }

type SolicitacaoService interface {
	Criar(ctx context.Context, ator Ator, req dto.CriarSolicitacaoRequest) (*dto.SolicitacaoResponse, error)
	ObterPorID(ctx context.Context, ator Ator, id uuid.UUID) (*dto.SolicitacaoResponse, error)
	Listar(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) (*dto.SolicitacaoListResponse, error)
	Board(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) (*dto.BoardResponse, error)
	Atualizar(ctx context.Context, ator Ator, id uuid.UUID, req dto.AtualizarSolicitacaoRequest) (*dto.SolicitacaoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	Transicionar(ctx context.Context, ator Ator, id uuid.UUID, req dto.TransicaoStatusRequest) (*dto.SolicitacaoResponse, error)
	Historico(ctx context.Context, ator Ator, id uuid.UUID) ([]dto.HistoricoStatusResponse, error)
}

type solicitacaoService struct {
	repo        repository.SolicitacaoRepository
	unidadeRepo repository.UnidadeRepository
	rubricaRepo repository.RubricaRepository
	catalogo    repository.CatalogoRepository
	usuarioRepo repository.UsuarioRepository
	dispatcher  *worker.Dispatcher
	hub         *ws.Hub
	board       *BoardCache
}

func NewSolicitacaoService(
	repo repository.SolicitacaoRepository,
	unidadeRepo repository.UnidadeRepository,
	rubricaRepo repository.RubricaRepository,
	catalogo repository.CatalogoRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	hub *ws.Hub,
	board *BoardCache,
) SolicitacaoService {
	return &solicitacaoService{
		repo:        repo,
		unidadeRepo: unidadeRepo,
		rubricaRepo: rubricaRepo,
		catalogo:    catalogo,
		usuarioRepo: usuarioRepo,
		dispatcher:  dispatcher,
		hub:         hub,
		board:       board,
	}
}

// ── Validation ───────────────────────────────────────────────────────────────

// ValidarVinculos checks the hierarchy invariant before any write: the chosen
// unit and budget line must belong to the chosen client, items must be
// present and quantities positive. Pure — callers resolve the records first.
// A nil unidade/rubrica means the reference did not resolve at all.
func ValidarVinculos(clienteID uuid.UUID, unidade *model.Unidade, rubrica *model.Rubrica, itens []dto.ItemSolicitacaoRequest) map[string]string {
	fields := make(map[string]string)

	if unidade == nil {
		fields["unidade_id"] = "unidade não encontrada"
	} else if unidade.ClienteID != clienteID {
		fields["unidade_id"] = "unidade não pertence ao cliente selecionado"
	}

	if rubrica == nil {
		fields["rubrica_id"] = "rubrica não encontrada"
	} else if rubrica.ClienteID != clienteID {
		fields["rubrica_id"] = "rubrica não pertence ao cliente selecionado"
	}

	if len(itens) == 0 {
		fields["itens"] = "a solicitação deve ter ao menos um item"
	}
	for i, it := range itens {
		if it.Quantidade <= 0 {
			fields[fmt.Sprintf("itens[%d].quantidade", i)] = "quantidade deve ser maior que zero"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *solicitacaoService) validar(ctx context.Context, clienteID uuid.UUID, unidadeID, rubricaID string, itens []dto.ItemSolicitacaoRequest) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(unidadeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, &ValidacaoError{Fields: map[string]string{"unidade_id": "id inválido"}}
	}
	rid, err := uuid.Parse(rubricaID)
	if err != nil {
		return uuid.Nil, uuid.Nil, &ValidacaoError{Fields: map[string]string{"rubrica_id": "id inválido"}}
	}

	var unidade *model.Unidade
	if u, err := s.unidadeRepo.FindByID(ctx, uid); err == nil {
		unidade = u
	}
	var rubrica *model.Rubrica
	if r, err := s.rubricaRepo.FindByID(ctx, rid); err == nil {
		rubrica = r
	}

	if fields := ValidarVinculos(clienteID, unidade, rubrica, itens); fields != nil {
		return uuid.Nil, uuid.Nil, &ValidacaoError{Fields: fields}
	}
	return uid, rid, nil
}

// resolverItens parses and existence-checks every item line.
func (s *solicitacaoService) resolverItens(ctx context.Context, itens []dto.ItemSolicitacaoRequest) ([]model.SolicitacaoItem, error) {
	out := make([]model.SolicitacaoItem, 0, len(itens))
	for i, it := range itens {
		itemID, err := uuid.Parse(it.ItemID)
		if err != nil {
			return nil, &ValidacaoError{Fields: map[string]string{
				fmt.Sprintf("itens[%d].item_id", i): "id inválido",
			}}
		}
		if _, err := s.catalogo.FindItemByID(ctx, itemID); err != nil {
			return nil, &ValidacaoError{Fields: map[string]string{
				fmt.Sprintf("itens[%d].item_id", i): "item não encontrado",
			}}
		}
		out = append(out, model.SolicitacaoItem{ItemID: itemID, Quantidade: it.Quantidade})
	}
	return out, nil
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func (s *solicitacaoService) Criar(ctx context.Context, ator Ator, req dto.CriarSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, &ValidacaoError{Fields: map[string]string{"cliente_id": "id inválido"}}
	}

	unidadeID, rubricaID, err := s.validar(ctx, clienteID, req.UnidadeID, req.RubricaID, req.Itens)
	if err != nil {
		return nil, err
	}
	itens, err := s.resolverItens(ctx, req.Itens)
	if err != nil {
		return nil, err
	}

	sol := &model.Solicitacao{
		ClienteID:     clienteID,
		UnidadeID:     unidadeID,
		RubricaID:     rubricaID,
		Tipo:          req.Tipo,
		Justificativa: req.Justificativa,
		Prioridade:    req.Prioridade,
		Status:        model.StatusInicial,
		SolicitanteID: ator.ID,
		Itens:         itens,
	}
	if err := s.repo.Create(ctx, sol); err != nil {
		return nil, err
	}
	s.board.Invalidate(ctx)

	criada, err := s.repo.FindByID(ctx, sol.ID)
	if err != nil {
		return nil, err
	}
	resp := montarResposta(criada, true)
	return &resp, nil
}

func (s *solicitacaoService) ObterPorID(ctx context.Context, ator Ator, id uuid.UUID) (*dto.SolicitacaoResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNaoEncontrada
	}
	if !ator.Admin && sol.SolicitanteID != ator.ID {
		return nil, ErrAcessoNegado
	}
	resp := montarResposta(sol, true)
	return &resp, nil
}

func (s *solicitacaoService) Atualizar(ctx context.Context, ator Ator, id uuid.UUID, req dto.AtualizarSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNaoEncontrada
	}
	if !ator.Admin && sol.SolicitanteID != ator.ID {
		return nil, ErrAcessoNegado
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, &ValidacaoError{Fields: map[string]string{"cliente_id": "id inválido"}}
	}
	unidadeID, rubricaID, err := s.validar(ctx, clienteID, req.UnidadeID, req.RubricaID, req.Itens)
	if err != nil {
		return nil, err
	}
	itens, err := s.resolverItens(ctx, req.Itens)
	if err != nil {
		return nil, err
	}

	sol.ClienteID = clienteID
	sol.UnidadeID = unidadeID
	sol.RubricaID = rubricaID
	sol.Tipo = req.Tipo
	sol.Justificativa = req.Justificativa
	sol.Prioridade = req.Prioridade
	sol.Itens = itens

	if err := s.repo.Update(ctx, sol); err != nil {
		return nil, err
	}
	s.board.Invalidate(ctx)

	atualizada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := montarResposta(atualizada, true)
	return &resp, nil
}

func (s *solicitacaoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNaoEncontrada
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.board.Invalidate(ctx)
	return nil
}

// ── Listing / board ──────────────────────────────────────────────────────────

// fusoFiltros is the zone in which the criada_de/criada_ate day bounds are
// interpreted. created_at rows carry the server's wall clock, so "today" must
// be the server's today, not UTC's.
var fusoFiltros = time.Local

// montarQuery converts the wire filter into a repository query, enforcing the
// visibility scope: non-admins only ever see their own requests, and the
// admin-only filters are ignored for them.
func montarQuery(ator Ator, filtro dto.SolicitacaoFilter, paginar bool) (repository.SolicitacaoQuery, error) {
	q := repository.SolicitacaoQuery{
		Status:     model.Status(filtro.Status),
		Prioridade: filtro.Prioridade,
	}

	if ator.Admin {
		q.IDContem = filtro.IDContem
		if filtro.SolicitanteID != "" {
			sid, err := uuid.Parse(filtro.SolicitanteID)
			if err != nil {
				return q, &ValidacaoError{Fields: map[string]string{"solicitante_id": "id inválido"}}
			}
			q.SolicitanteID = &sid
		}
	} else {
		id := ator.ID
		q.SolicitanteID = &id
	}

	if filtro.CriadaDe != "" {
		t, err := time.ParseInLocation("2006-01-02", filtro.CriadaDe, fusoFiltros)
		if err != nil {
			return q, &ValidacaoError{Fields: map[string]string{"criada_de": "data inválida, use AAAA-MM-DD"}}
		}
		q.CriadaDe = &t
	}
	if filtro.CriadaAte != "" {
		t, err := time.ParseInLocation("2006-01-02", filtro.CriadaAte, fusoFiltros)
		if err != nil {
			return q, &ValidacaoError{Fields: map[string]string{"criada_ate": "data inválida, use AAAA-MM-DD"}}
		}
		// Inclusive upper bound: push to the final instant of the day.
		fim := t.Add(24*time.Hour - time.Nanosecond)
		q.CriadaAte = &fim
	}

	if paginar {
		q.Page = filtro.Page
		q.Limit = filtro.Limit
		if q.Page < 1 {
			q.Page = 1
		}
		if q.Limit < 1 {
			q.Limit = pagination.DefaultLimit
		}
	}
	return q, nil
}

func (s *solicitacaoService) Listar(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) (*dto.SolicitacaoListResponse, error) {
	q, err := montarQuery(ator, filtro, true)
	if err != nil {
		return nil, err
	}

	solicitacoes, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]dto.SolicitacaoResponse, len(solicitacoes))
	for i := range solicitacoes {
		data[i] = montarResposta(&solicitacoes[i], false)
	}
	return &dto.SolicitacaoListResponse{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: pagination.TotalPages(total, q.Limit),
	}, nil
}

func (s *solicitacaoService) Board(ctx context.Context, ator Ator, filtro dto.SolicitacaoFilter) (*dto.BoardResponse, error) {
	q, err := montarQuery(ator, filtro, false)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.board.Get(ctx, ator, filtro); ok {
		return cached, nil
	}

	solicitacoes, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.SolicitacaoResponse, len(solicitacoes))
	for i := range solicitacoes {
		cards[i] = montarResposta(&solicitacoes[i], false)
	}
	resp := AgruparPorStatus(cards)

	s.board.Set(ctx, ator, filtro, resp)
	return resp, nil
}

// AgruparPorStatus distributes the already-filtered cards into the seven
// fixed lanes, preserving order. Every lane is present even when empty.
func AgruparPorStatus(cards []dto.SolicitacaoResponse) *dto.BoardResponse {
	lanes := make([]dto.BoardLane, 0, len(model.TodosStatus))
	byStatus := make(map[string][]dto.SolicitacaoResponse, len(model.TodosStatus))
	for _, card := range cards {
		byStatus[card.Status] = append(byStatus[card.Status], card)
	}
	for _, st := range model.TodosStatus {
		lane := dto.BoardLane{
			Status:      string(st),
			StatusLabel: format.StatusLabel(st),
			Emoji:       format.StatusEmoji(st),
			Color:       format.StatusColor(st),
			Cards:       byStatus[string(st)],
		}
		if lane.Cards == nil {
			lane.Cards = []dto.SolicitacaoResponse{}
		}
		lanes = append(lanes, lane)
	}
	return &dto.BoardResponse{Lanes: lanes}
}

// ── Lifecycle transition ─────────────────────────────────────────────────────

func (s *solicitacaoService) Transicionar(ctx context.Context, ator Ator, id uuid.UUID, req dto.TransicaoStatusRequest) (*dto.SolicitacaoResponse, error) {
	if !ator.Admin {
		return nil, ErrAcessoNegado
	}

	alvo := model.Status(req.Status)
	if !alvo.Valid() {
		return nil, &ValidacaoError{Fields: map[string]string{"status": "status desconhecido"}}
	}

	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNaoEncontrada
	}

	// Same-lane drop: nothing to write, nothing to record.
	if sol.Status == alvo {
		resp := montarResposta(sol, true)
		return &resp, nil
	}

	if !sol.Status.PodeTransicionar(alvo) {
		return nil, &ValidacaoError{Fields: map[string]string{
			"status": fmt.Sprintf("transição de %s para %s não permitida", sol.Status, alvo),
		}}
	}

	var motivo *string
	if alvo == model.StatusRejeitada {
		if req.Motivo == "" {
			return nil, &ValidacaoError{Fields: map[string]string{"motivo": "justificativa de rejeição é obrigatória"}}
		}
		motivo = &req.Motivo
	}

	// Status write + history append commit atomically; on error nothing
	// changed and the caller may simply retry by hand.
	if err := s.repo.UpdateStatusWithHistory(ctx, id, alvo, motivo, ator.ID); err != nil {
		return nil, err
	}
	s.board.Invalidate(ctx)

	if s.hub != nil {
		s.hub.BroadcastStatus(ws.StatusEvent{
			SolicitacaoID: id.String(),
			Status:        string(alvo),
			AtorID:        ator.ID.String(),
		})
	}
	s.notificar(ctx, sol, alvo, req.Motivo)

	atualizada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := montarResposta(atualizada, true)
	return &resp, nil
}

// notificar enqueues the owner's e-mail; failures only log — the transition
// is already committed.
func (s *solicitacaoService) notificar(ctx context.Context, sol *model.Solicitacao, alvo model.Status, motivo string) {
	if s.dispatcher == nil {
		return
	}
	dono, err := s.usuarioRepo.FindByID(ctx, sol.SolicitanteID)
	if err != nil {
		log.Warn().Err(err).
			Str("solicitacao_id", sol.ID.String()).
			Str("solicitante_id", sol.SolicitanteID.String()).
			Msg("notificação pulada: solicitante não encontrado")
		return
	}
	payload := worker.NotificacaoJobPayload{
		SolicitacaoID: sol.ID.String(),
		Status:        string(alvo),
		Motivo:        motivo,
		ToEmail:       dono.Email,
		ToNome:        dono.Nome,
	}
	if err := s.dispatcher.EnqueueNotificacao(ctx, payload); err != nil {
		log.Error().Err(err).
			Str("solicitacao_id", sol.ID.String()).
			Msg("falha ao enfileirar notificação")
	}
}

func (s *solicitacaoService) Historico(ctx context.Context, ator Ator, id uuid.UUID) ([]dto.HistoricoStatusResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNaoEncontrada
	}
	if !ator.Admin && sol.SolicitanteID != ator.ID {
		return nil, ErrAcessoNegado
	}
	historico, err := s.repo.ListHistorico(ctx, id)
	if err != nil {
		return nil, err
	}
	return montarHistorico(historico), nil
}

// ── Response assembly ────────────────────────────────────────────────────────

const rotuloNaoEncontrado = "Não encontrado"

func montarHistorico(historico []model.HistoricoStatus) []dto.HistoricoStatusResponse {
	out := make([]dto.HistoricoStatusResponse, len(historico))
	for i, h := range historico {
		atorNome := rotuloNaoEncontrado
		if h.Ator != nil {
			atorNome = h.Ator.Nome
		}
		out[i] = dto.HistoricoStatusResponse{
			Status:      string(h.Status),
			StatusLabel: format.StatusLabel(h.Status),
			AtorID:      h.AtorID.String(),
			AtorNome:    atorNome,
			CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// montarResposta flattens a loaded Solicitacao into its wire shape. Dangling
// references (master data deleted after the fact) degrade to a placeholder
// label instead of failing.
func montarResposta(sol *model.Solicitacao, comHistorico bool) dto.SolicitacaoResponse {
	resp := dto.SolicitacaoResponse{
		ID:              sol.ID.String(),
		ClienteID:       sol.ClienteID.String(),
		ClienteNome:     rotuloNaoEncontrado,
		UnidadeID:       sol.UnidadeID.String(),
		UnidadeNome:     rotuloNaoEncontrado,
		RubricaID:       sol.RubricaID.String(),
		RubricaNome:     rotuloNaoEncontrado,
		Tipo:            sol.Tipo,
		TipoLabel:       format.TipoLabel(sol.Tipo),
		Justificativa:   sol.Justificativa,
		Prioridade:      sol.Prioridade,
		PrioridadeLabel: format.PrioridadeLabel(sol.Prioridade),
		PrioridadeEmoji: format.PrioridadeEmoji(sol.Prioridade),
		PrioridadeColor: format.PrioridadeColor(sol.Prioridade),
		Status:          string(sol.Status),
		StatusLabel:     format.StatusLabel(sol.Status),
		StatusEmoji:     format.StatusEmoji(sol.Status),
		StatusColor:     format.StatusColor(sol.Status),
		MotivoRejeicao:  sol.MotivoRejeicao,
		SolicitanteID:   sol.SolicitanteID.String(),
		SolicitanteNome: rotuloNaoEncontrado,
		CreatedAt:       sol.CreatedAt.Format(time.RFC3339),
	}
	if sol.Cliente != nil {
		resp.ClienteNome = sol.Cliente.Nome
	}
	if sol.Unidade != nil {
		resp.UnidadeNome = sol.Unidade.Nome
	}
	if sol.Rubrica != nil {
		resp.RubricaNome = sol.Rubrica.Nome
	}
	if sol.Solicitante != nil {
		resp.SolicitanteNome = sol.Solicitante.Nome
	}

	total := decimal.Zero
	resp.Itens = make([]dto.ItemSolicitacaoResponse, len(sol.Itens))
	for i, it := range sol.Itens {
		linha := dto.ItemSolicitacaoResponse{
			ItemID:     it.ItemID.String(),
			Nome:       rotuloNaoEncontrado,
			Quantidade: it.Quantidade,
			PrecoMedio: decimal.Zero,
			Subtotal:   decimal.Zero,
		}
		if it.Item != nil {
			linha.Nome = it.Item.Nome
			linha.PrecoMedio = it.Item.PrecoMedio
			linha.Subtotal = it.Item.PrecoMedio.Mul(decimal.NewFromInt(int64(it.Quantidade)))
			if it.Item.UnidadeMedida != nil {
				linha.UnidadeMedida = it.Item.UnidadeMedida.Abreviacao
			}
			total = total.Add(linha.Subtotal)
		}
		resp.Itens[i] = linha
	}
	resp.TotalEstimado = total
	resp.TotalFormatado = format.Moeda(total)

	if comHistorico {
		resp.Historico = montarHistorico(sol.Historico)
	}
	return resp
}
