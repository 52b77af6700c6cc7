package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EvaluationRepository handles database operations for measurement evaluations
// and their audit history
type EvaluationRepository struct {
	db *gorm.DB
}

var _ EvaluationRepositoryInterface = (*EvaluationRepository)(nil)

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *EvaluationRepository) WithTx(tx *gorm.DB) EvaluationRepositoryInterface {
	return &EvaluationRepository{db: tx}
}

// CreateMany inserts evaluations one statement per row
func (r *EvaluationRepository) CreateMany(evaluations []models.MeasurementEvaluation) error {
	for i := range evaluations {
		if err := r.db.Omit("Campaign", "Service", "Measurement", "Evaluator").Create(&evaluations[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an evaluation by ID
func (r *EvaluationRepository) GetByID(id uuid.UUID) (*models.MeasurementEvaluation, error) {
	var evaluation models.MeasurementEvaluation
	if err := r.db.First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByIDForUpdate retrieves an evaluation and locks its row until the
// surrounding transaction ends. sqlite ignores the lock.
func (r *EvaluationRepository) GetByIDForUpdate(id uuid.UUID) (*models.MeasurementEvaluation, error) {
	var evaluation models.MeasurementEvaluation
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetWithDetails retrieves an evaluation with measurement, category and evaluator
func (r *EvaluationRepository) GetWithDetails(id uuid.UUID) (*models.MeasurementEvaluation, error) {
	var evaluation models.MeasurementEvaluation
	err := r.db.
		Preload("Measurement.Category").
		Preload("Evaluator").
		First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByParticipant retrieves every evaluation of a service in a campaign,
// ordered by category name then measurement name
func (r *EvaluationRepository) GetByParticipant(campaignID, serviceID uuid.UUID) ([]models.MeasurementEvaluation, error) {
	var evaluations []models.MeasurementEvaluation
	err := r.db.
		Select("measurement_evaluations.*").
		Joins("JOIN measurements m ON m.id = measurement_evaluations.measurement_id").
		Joins("JOIN measurement_categories mc ON mc.id = m.category_id").
		Preload("Measurement.Category").
		Preload("Evaluator").
		Where("measurement_evaluations.campaign_id = ? AND measurement_evaluations.service_id = ?", campaignID, serviceID).
		Order("mc.name, m.name").
		Find(&evaluations).Error
	return evaluations, err
}

// GetForBulkUpdate retrieves and locks the evaluations of a participant,
// optionally limited to measurements in one category
func (r *EvaluationRepository) GetForBulkUpdate(campaignID, serviceID uuid.UUID, categoryID *uuid.UUID) ([]models.MeasurementEvaluation, error) {
	var evaluations []models.MeasurementEvaluation
	query := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("campaign_id = ? AND service_id = ?", campaignID, serviceID)
	if categoryID != nil {
		query = query.Where("measurement_id IN (?)",
			r.db.Model(&models.Measurement{}).Select("id").Where("category_id = ?", *categoryID))
	}
	err := query.Order("created_at, id").Find(&evaluations).Error
	return evaluations, err
}

// Update applies a partial update to an evaluation
func (r *EvaluationRepository) Update(id uuid.UUID, update EvaluationUpdate) error {
	return r.db.Model(&models.MeasurementEvaluation{}).Where("id = ?", id).Updates(update.columns()).Error
}

// DeleteByParticipant deletes every evaluation of a service in a campaign
func (r *EvaluationRepository) DeleteByParticipant(campaignID, serviceID uuid.UUID) error {
	return r.db.Where("campaign_id = ? AND service_id = ?", campaignID, serviceID).
		Delete(&models.MeasurementEvaluation{}).Error
}

// DeleteByCampaign deletes every evaluation of a campaign
func (r *EvaluationRepository) DeleteByCampaign(campaignID uuid.UUID) error {
	return r.db.Where("campaign_id = ?", campaignID).Delete(&models.MeasurementEvaluation{}).Error
}

// CreateHistory appends an audit entry and numbers it after the evaluation's latest entry
func (r *EvaluationRepository) CreateHistory(entry *models.EvaluationHistory) error {
	var last int64
	err := r.db.Model(&models.EvaluationHistory{}).
		Select("COALESCE(MAX(sequence), 0)").
		Where("evaluation_id = ?", entry.EvaluationID).
		Scan(&last).Error
	if err != nil {
		return err
	}
	entry.Sequence = last + 1
	return r.db.Omit("Changer").Create(entry).Error
}

// GetHistory retrieves the audit entries of an evaluation, newest first
func (r *EvaluationRepository) GetHistory(evaluationID uuid.UUID) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.Table("evaluation_history h").
		Select(`h.id, h.evaluation_id, h.previous_status, h.new_status, h.sequence, h.changed_by,
			u.username AS changed_by_username, h.notes, h.created_at`).
		Joins("LEFT JOIN users u ON u.id = h.changed_by").
		Where("h.evaluation_id = ?", evaluationID).
		Order("h.sequence DESC, h.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
