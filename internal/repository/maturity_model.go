package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaturityModelRepository handles database operations for maturity models,
// their measurements and their level rules
type MaturityModelRepository struct {
	db *gorm.DB
}

var _ MaturityModelRepositoryInterface = (*MaturityModelRepository)(nil)

// NewMaturityModelRepository creates a new maturity model repository
func NewMaturityModelRepository(db *gorm.DB) *MaturityModelRepository {
	return &MaturityModelRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MaturityModelRepository) WithTx(tx *gorm.DB) MaturityModelRepositoryInterface {
	return &MaturityModelRepository{db: tx}
}

// Create creates a new maturity model
func (r *MaturityModelRepository) Create(model *models.MaturityModel) error {
	return r.db.Omit("Owner", "Measurements", "LevelRules").Create(model).Error
}

// GetByID retrieves a maturity model by ID
func (r *MaturityModelRepository) GetByID(id uuid.UUID) (*models.MaturityModel, error) {
	var model models.MaturityModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByName retrieves a maturity model by its unique name
func (r *MaturityModelRepository) GetByName(name string) (*models.MaturityModel, error) {
	var model models.MaturityModel
	if err := r.db.First(&model, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// GetWithDetails retrieves a maturity model with owner, measurements (with category) and level rules
func (r *MaturityModelRepository) GetWithDetails(id uuid.UUID) (*models.MaturityModel, error) {
	var model models.MaturityModel
	err := r.db.
		Preload("Owner").
		Preload("Measurements", func(db *gorm.DB) *gorm.DB { return db.Order("measurements.name") }).
		Preload("Measurements.Category").
		Preload("LevelRules", func(db *gorm.DB) *gorm.DB { return db.Order("maturity_level_rules.level") }).
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetAll retrieves all maturity models with owner and measurements, ordered by name
func (r *MaturityModelRepository) GetAll() ([]models.MaturityModel, error) {
	var list []models.MaturityModel
	err := r.db.Preload("Owner").Preload("Measurements").Order("name").Find(&list).Error
	return list, err
}

// Update applies a partial update to a maturity model
func (r *MaturityModelRepository) Update(id uuid.UUID, update MaturityModelUpdate) error {
	return r.db.Model(&models.MaturityModel{}).Where("id = ?", id).Updates(update.columns()).Error
}

// Delete deletes a maturity model row
func (r *MaturityModelRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaturityModel{}, "id = ?", id).Error
}

// CreateMeasurement adds a measurement to a model
func (r *MaturityModelRepository) CreateMeasurement(measurement *models.Measurement) error {
	return r.db.Omit("Category").Create(measurement).Error
}

// GetMeasurements retrieves every measurement of a model
func (r *MaturityModelRepository) GetMeasurements(modelID uuid.UUID) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := r.db.Where("maturity_model_id = ?", modelID).Order("name").Find(&measurements).Error
	return measurements, err
}

// DeleteMeasurements deletes every measurement of a model
func (r *MaturityModelRepository) DeleteMeasurements(modelID uuid.UUID) error {
	return r.db.Where("maturity_model_id = ?", modelID).Delete(&models.Measurement{}).Error
}

// GetLevelRules retrieves the level rules of a model ordered by level
func (r *MaturityModelRepository) GetLevelRules(modelID uuid.UUID) ([]models.MaturityLevelRule, error) {
	var rules []models.MaturityLevelRule
	err := r.db.Where("maturity_model_id = ?", modelID).Order("level").Find(&rules).Error
	return rules, err
}

// CreateLevelRules inserts a set of level rules
func (r *MaturityModelRepository) CreateLevelRules(rules []models.MaturityLevelRule) error {
	if len(rules) == 0 {
		return nil
	}
	return r.db.Create(&rules).Error
}

// DeleteLevelRules deletes every level rule of a model
func (r *MaturityModelRepository) DeleteLevelRules(modelID uuid.UUID) error {
	return r.db.Where("maturity_model_id = ?", modelID).Delete(&models.MaturityLevelRule{}).Error
}
