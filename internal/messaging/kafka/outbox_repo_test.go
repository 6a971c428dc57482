package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctrack/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     uuid.New().String(),
		AggregateType: "document",
		AggregateID:   uuid.New().String(),
		EventType:     "document_status_changed",
		Topic:         "docs.document.status.v1",
		Payload:       []byte(`{"status":"approved"}`),
		Status:        kafka.OutboxStatusPending,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, event)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO outbox_events").
			WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, event)
		assert.Error(t, err)
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	t.Run("returns pending rows", func(t *testing.T) {
		id := uuid.New().String()
		rows := sqlmock.NewRows([]string{
			"id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "coalesce",
		}).AddRow(
			id, "staff", uuid.New().String(), "staff_invited",
			"docs.staff.invited.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, time.Now(),
		)

		mock.ExpectQuery("SELECT").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
			WillReturnRows(rows)

		events, err := repo.ListPending(ctx, 50)
		assert.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, "docs.staff.invited.v1", events[0].Topic)
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "aggregate_type", "aggregate_id", "event_type",
				"topic", "payload", "status", "retry_count", "coalesce",
			}))

		events, err := repo.ListPending(ctx, 10)
		assert.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WillReturnError(errors.New("relation does not exist"))

		_, err := repo.ListPending(ctx, 50)
		assert.Error(t, err)
	})
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.New().String()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkSent(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.New().String()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkFailed(context.Background(), id, "broker unreachable")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      uuid.New().String(),
		Topic:   "docs.document.status.v1",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}

	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
