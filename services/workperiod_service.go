package services

import (
	"errors"
	"time"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"
	"pos-backend/repository"

	"gorm.io/gorm"
)

type WorkPeriodService struct {
	Repo *repository.WorkPeriodRepository
}

func NewWorkPeriodService(repo *repository.WorkPeriodRepository) *WorkPeriodService {
	return &WorkPeriodService{Repo: repo}
}

func (s *WorkPeriodService) Start(operatorName string, openingCash float64) (*entity.WorkPeriod, error) {
	if operatorName == "" {
		operatorName = "Admin"
	}
	p := entity.WorkPeriod{
		StartTime:    time.Now(),
		OperatorName: operatorName,
		OpeningCash:  openingCash,
		Status:       entity.WorkPeriodActive,
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, apperr.Storage(err)
	}
	return &p, nil
}

// End closes the shift and records the completed sales total for the
// window between start and now.
func (s *WorkPeriodService) End(id uint, closingCash float64) (*entity.WorkPeriod, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("work period %d", id)
		}
		return nil, apperr.Storage(err)
	}

	now := time.Now()
	sales, err := s.Repo.CompletedSalesBetween(p.StartTime, now)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if err := s.Repo.Close(id, now, closingCash, sales); err != nil {
		return nil, apperr.Storage(err)
	}

	p.EndTime = &now
	p.ClosingCash = closingCash
	p.TotalSales = sales
	p.Status = entity.WorkPeriodClosed
	return p, nil
}

func (s *WorkPeriodService) Active() (*entity.WorkPeriod, error) {
	p, err := s.Repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *WorkPeriodService) List(limit int) ([]entity.WorkPeriod, error) {
	return s.Repo.List(limit)
}
