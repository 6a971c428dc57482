package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	documenterrors "doctrack/internal/document/errors"
	"doctrack/internal/events"
	"doctrack/internal/messaging/kafka"
	"doctrack/internal/profile"
	"doctrack/internal/shared/contextutil"
	"doctrack/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, submitterID string, req SubmitDocumentRequest) (DocumentResponse, error)
	GetMine(ctx context.Context, submitterID string) ([]DocumentResponse, error)
	GetAssigned(ctx context.Context, approverID string) ([]DocumentResponse, error)
	GetByID(ctx context.Context, callerID, callerRole, id string) (DocumentResponse, error)
	UpdateStatus(ctx context.Context, callerID, id string, req UpdateStatusRequest) (DocumentResponse, error)
	AddFile(ctx context.Context, callerID, docID string, req AddFileRequest) (FileResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	profiles profile.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	profiles profile.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		profiles: profiles,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, submitterID string, req SubmitDocumentRequest) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	approver, err := s.profiles.FindByID(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, documenterrors.ErrApproverNotFound
		}
		return DocumentResponse{}, err
	}
	if approver.Role != profile.RoleAdmin {
		return DocumentResponse{}, documenterrors.ErrInvalidApprover
	}

	period := time.Now().UTC().Format("2006")
	nextVal, err := s.counter.GetNextValue(ctx, "document", period)
	if err != nil {
		s.logger.Error("generate document reference failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}

	doc := &Document{
		ID:              uuid.New(),
		ReferenceNumber: fmt.Sprintf("DOC-%s-%06d", period, nextVal),
		Title:           req.Title,
		Description:     req.Description,
		Status:          StatusPending,
		SubmitterID:     submitterID,
		ApproverID:      req.ApproverID,
	}
	for _, f := range req.Files {
		doc.Files = append(doc.Files, DocumentFile{
			ID:          uuid.New(),
			DocumentID:  doc.ID,
			FileName:    f.FileName,
			StoragePath: f.StoragePath,
			SizeBytes:   f.SizeBytes,
			ContentType: f.ContentType,
		})
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("submit document persist failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("document submitted",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("reference_number", doc.ReferenceNumber),
		zap.String("approver_id", doc.ApproverID),
	)

	return mapToResponse(*doc), nil
}

func (s *service) GetMine(ctx context.Context, submitterID string) ([]DocumentResponse, error) {
	docs, err := s.repo.FindBySubmitter(ctx, submitterID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAll(docs), nil
}

func (s *service) GetAssigned(ctx context.Context, approverID string) ([]DocumentResponse, error) {
	docs, err := s.repo.FindByApprover(ctx, approverID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAll(docs), nil
}

func (s *service) GetByID(ctx context.Context, callerID, callerRole, id string) (DocumentResponse, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if doc.SubmitterID != callerID && doc.ApproverID != callerID && callerRole != profile.RoleAdmin {
		return DocumentResponse{}, documenterrors.ErrNotYourDocument
	}

	return mapToResponse(*doc), nil
}

func (s *service) UpdateStatus(ctx context.Context, callerID, id string, req UpdateStatusRequest) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if doc.ApproverID != callerID {
		return DocumentResponse{}, documenterrors.ErrNotAssignedApprover
	}

	// The submitter email rides on the event so the consumer does not need
	// a database connection.
	submitterEmail := ""
	if submitter, err := s.profiles.FindByID(ctx, doc.SubmitterID); err == nil {
		submitterEmail = submitter.Email
	} else {
		s.logger.Warn("submitter profile lookup failed, notification will be skipped",
			zap.String("request_id", rid),
			zap.String("document_id", id),
			zap.Error(err),
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update status begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateStatus(ctx, id, req.Status, req.ReviewNote); err != nil {
		s.logger.Error("update status persist failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.DocumentStatusChangedEvent{
			EventType:      "document_status_changed",
			DocumentID:     doc.ID.String(),
			Title:          doc.Title,
			Status:         req.Status,
			SubmitterID:    doc.SubmitterID,
			SubmitterEmail: submitterEmail,
			ChangedBy:      callerID,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal status event failed", zap.String("request_id", rid), zap.Error(err))
			return DocumentResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "document",
			AggregateID:   doc.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DocumentStatusTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("status change outbox persist failed",
				zap.String("request_id", rid),
				zap.String("document_id", doc.ID.String()),
				zap.Error(err),
			)
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update status commit failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}

	s.logger.Info("document status updated",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("status", req.Status),
	)

	doc.Status = req.Status
	doc.ReviewNote = req.ReviewNote
	return mapToResponse(*doc), nil
}

func (s *service) AddFile(ctx context.Context, callerID, docID string, req AddFileRequest) (FileResponse, error) {
	doc, err := s.repo.FindByID(ctx, docID)
	if err != nil {
		return FileResponse{}, mapRepositoryError(err)
	}

	if doc.SubmitterID != callerID {
		return FileResponse{}, documenterrors.ErrNotYourDocument
	}

	file := &DocumentFile{
		ID:          uuid.New(),
		DocumentID:  doc.ID,
		FileName:    req.FileName,
		StoragePath: req.StoragePath,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
	}

	if err := s.repo.AddFile(ctx, file); err != nil {
		return FileResponse{}, mapRepositoryError(err)
	}

	return mapFile(*file), nil
}

func mapFile(f DocumentFile) FileResponse {
	return FileResponse{
		ID:          f.ID.String(),
		FileName:    f.FileName,
		StoragePath: f.StoragePath,
		SizeBytes:   f.SizeBytes,
		ContentType: f.ContentType,
	}
}

func mapToResponse(d Document) DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID.String(),
		ReferenceNumber: d.ReferenceNumber,
		Title:           d.Title,
		Description:     d.Description,
		Status:          d.Status,
		SubmitterID:     d.SubmitterID,
		ApproverID:      d.ApproverID,
		ReviewNote:      d.ReviewNote,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	for _, f := range d.Files {
		resp.Files = append(resp.Files, mapFile(f))
	}
	return resp
}

func mapAll(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, mapToResponse(d))
	}
	return out
}
