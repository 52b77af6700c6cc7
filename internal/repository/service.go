package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	db *gorm.DB
}

var _ ServiceRepositoryInterface = (*ServiceRepository)(nil)

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create creates a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// GetByID retrieves a service by ID with its team and owner
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.Preload("Team").Preload("Owner").First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetAll retrieves services ordered by name, optionally restricted to one team
func (r *ServiceRepository) GetAll(teamID *uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	query := r.db.Preload("Team").Preload("Owner").Order("name")
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	err := query.Find(&services).Error
	return services, err
}

// Update applies a partial update to a service
func (r *ServiceRepository) Update(id uuid.UUID, update ServiceUpdate) error {
	return r.db.Model(&models.Service{}).Where("id = ?", id).Updates(update.columns()).Error
}

// CountParticipations counts the campaigns a service is enrolled in
func (r *ServiceRepository) CountParticipations(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CampaignParticipant{}).Where("service_id = ?", id).Count(&count).Error
	return count, err
}

// Delete deletes a service
func (r *ServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
