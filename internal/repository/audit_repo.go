package repository

import (
	"gorm.io/gorm"

	"github.com/lumenpay/admin-gateway/internal/model"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(entry *model.AuditEntry) error {
	return r.db.Create(entry).Error
}

func (r *AuditRepository) List(page, size int) ([]model.AuditEntry, int64, error) {
	var total int64
	if err := r.db.Model(&model.AuditEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.AuditEntry
	err := r.db.Order("created_at DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *AuditRepository) ListByResource(resource string, page, size int) ([]model.AuditEntry, int64, error) {
	query := r.db.Model(&model.AuditEntry{}).Where("resource = ?", resource)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.AuditEntry
	err := query.Order("created_at DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
