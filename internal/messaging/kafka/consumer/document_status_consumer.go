package consumer

import (
	"context"
	"doctrack/internal/events"
	"doctrack/internal/invite"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeDocumentStatusChanged(
	ctx context.Context,
	reader *kafkago.Reader,
	sender invite.Sender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.document_status")
	log.Info("document status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("document status consumer stopped")
				return
			}
			log.Error("fetch document status message failed", zap.Error(err))
			continue
		}

		var event events.DocumentStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode document_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.SubmitterEmail == "" {
			log.Warn("document status event has no submitter email, skipping",
				zap.String("document_id", event.DocumentID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := sender.SendStatusNotification(ctx, event.SubmitterEmail, event.Title, event.Status); err != nil {
			log.Error("send document status notification failed",
				zap.String("document_id", event.DocumentID),
				zap.String("submitter_email", event.SubmitterEmail),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit document status message failed", zap.Error(err))
			continue
		}

		log.Info("document status notification sent",
			zap.String("document_id", event.DocumentID),
			zap.String("status", event.Status),
		)
	}
}
