package worker

// notificacao_worker.go
// Processes status-change notification jobs from QueueNotificacao and mails
// the request owner. The transition itself is already committed when the job
// is enqueued; a mail failure never affects the request.

import (
	"context"
	"encoding/json"
	"fmt"

	"compracerta/internal/infra"
	"compracerta/internal/model"
	"compracerta/pkg/format"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NotificacaoJobPayload is the job envelope sent to QueueNotificacao.
type NotificacaoJobPayload struct {
	SolicitacaoID string `json:"solicitacao_id"`
	Status        string `json:"status"`
	Motivo        string `json:"motivo,omitempty"`
	ToEmail       string `json:"to_email"`
	ToNome        string `json:"to_nome"`
}

// NotificacaoWorker mails the requester after a committed status transition.
type NotificacaoWorker struct {
	mailer *infra.Mailer
}

func NewNotificacaoWorker(mailer *infra.Mailer) *NotificacaoWorker {
	return &NotificacaoWorker{mailer: mailer}
}

// Process sends the notification email; unrecoverable payloads go to the DLQ.
func (w *NotificacaoWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload NotificacaoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacao_worker: invalid payload")
		SendToDLQ(ctx, rdb, QueueNotificacao, "notificacao", raw, "unmarshal: "+err.Error(), 1)
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Str("solicitacao_id", payload.SolicitacaoID).Msg("notificacao_worker: requester has no email — skipping")
		return
	}

	label := format.StatusLabel(model.Status(payload.Status))
	subject := fmt.Sprintf("Solicitação %s — %s", payload.SolicitacaoID, label)
	body := fmt.Sprintf("Olá %s,\n\nSua solicitação %s agora está em: %s.\n",
		payload.ToNome, payload.SolicitacaoID, label)
	if payload.Motivo != "" {
		body += fmt.Sprintf("\nMotivo: %s\n", payload.Motivo)
	}

	if err := w.mailer.Send(payload.ToEmail, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notificacao_worker: failed to send email")
		SendToDLQ(ctx, rdb, QueueNotificacao, "notificacao", raw, "smtp: "+err.Error(), 1)
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("status", payload.Status).Msg("notificacao_worker: email sent")
}
