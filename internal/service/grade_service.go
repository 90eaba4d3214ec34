package service

import (
	"context"
	"errors"
	"log"

	"student-grades/internal/model"

	"gorm.io/gorm"
)

type GradeService struct {
	db *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{db: db}
}

// CreateGrade inserts a new row and returns it with the id the database assigned.
func (s *GradeService) CreateGrade(ctx context.Context, input model.GradeInput) (*model.GradeRecord, error) {
	record := input.Record(0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, storageError("create", err)
	}
	return &record, nil
}

// ListGrades returns every row matching filter in the database's default order.
func (s *GradeService) ListGrades(ctx context.Context, filter model.GradeFilter) ([]model.GradeRecord, error) {
	records := make([]model.GradeRecord, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.GradeRecord{})

		if filter.Surname != "" {
			query = query.Where("surname = ?", filter.Surname)
		}
		if filter.StudentGroup != "" {
			query = query.Where("student_group = ?", filter.StudentGroup)
		}
		if filter.Subject != "" {
			query = query.Where("subject = ?", filter.Subject)
		}
		if filter.Teacher != "" {
			query = query.Where("teacher = ?", filter.Teacher)
		}
		if filter.GradeMin != nil {
			query = query.Where("grade >= ?", *filter.GradeMin)
		}
		if filter.GradeMax != nil {
			query = query.Where("grade <= ?", *filter.GradeMax)
		}

		return query.Find(&records).Error
	})
	if err != nil {
		return nil, storageError("list", err)
	}
	return records, nil
}

func (s *GradeService) GetGrade(ctx context.Context, id int64) (*model.GradeRecord, error) {
	var record model.GradeRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&record, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGradeNotFound
	}
	if err != nil {
		return nil, storageError("get", err)
	}
	return &record, nil
}

// UpdateGrade overwrites every field of the row with the given id and echoes
// the input back. An id with no row is not an error.
func (s *GradeService) UpdateGrade(ctx context.Context, id int64, input model.GradeInput) (*model.GradeRecord, error) {
	record := input.Record(id)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A map keeps zero values in the SET clause.
		result := tx.Model(&model.GradeRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
			"surname":       record.Surname,
			"student_group": record.StudentGroup,
			"subject":       record.Subject,
			"ticket_number": record.TicketNumber,
			"grade":         record.Grade,
			"teacher":       record.Teacher,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			log.Printf("Update of grade %d matched no rows", id)
		}
		return nil
	})
	if err != nil {
		return nil, storageError("update", err)
	}
	return &record, nil
}

// DeleteGrade removes the row with the given id. An id with no row is not an error.
func (s *GradeService) DeleteGrade(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.GradeRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			log.Printf("Delete of grade %d matched no rows", id)
		}
		return nil
	})
	return storageError("delete", err)
}

// Ping reports whether the database is reachable.
func (s *GradeService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storageError("ping", err)
	}
	return storageError("ping", sqlDB.PingContext(ctx))
}
