package document

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id string) (*Document, error)
	FindBySubmitter(ctx context.Context, submitterID string) ([]Document, error)
	FindByApprover(ctx context.Context, approverID string) ([]Document, error)
	UpdateStatus(ctx context.Context, id, status string, reviewNote *string) error
	AddFile(ctx context.Context, file *DocumentFile) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Document, error) {
	var doc Document
	err := r.db.WithContext(ctx).
		Preload("Files").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) FindBySubmitter(ctx context.Context, submitterID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Preload("Files").
		Where("submitter_id = ?", submitterID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) FindByApprover(ctx context.Context, approverID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Preload("Files").
		Where("approver_id = ?", approverID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string, reviewNote *string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			UPDATE documents
			SET status = $2, review_note = $3, updated_at = NOW()
			WHERE id = $1
		`, id, status, reviewNote)
		return err
	}

	return r.db.WithContext(ctx).
		Model(&Document{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "review_note": reviewNote}).Error
}

func (r *repository) AddFile(ctx context.Context, file *DocumentFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}
