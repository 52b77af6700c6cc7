package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const implementedCountExpr = "SUM(CASE WHEN me.status = ? THEN 1 ELSE 0 END) AS implemented_count"

// SummaryRepository runs the implementation roll-up queries for a campaign
type SummaryRepository struct {
	db *gorm.DB
}

var _ SummaryRepositoryInterface = (*SummaryRepository)(nil)

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// ServiceSummaries counts implemented and total evaluations per participant service
func (r *SummaryRepository) ServiceSummaries(campaignID uuid.UUID) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.Table("campaign_participants cp").
		Select("s.id, s.name, "+implementedCountExpr+", COUNT(me.id) AS total_count", models.EvaluationStatusImplemented).
		Joins("JOIN services s ON s.id = cp.service_id").
		Joins("LEFT JOIN measurement_evaluations me ON me.campaign_id = cp.campaign_id AND me.service_id = cp.service_id").
		Where("cp.campaign_id = ?", campaignID).
		Group("s.id, s.name").
		Scan(&rows).Error
	return rows, err
}

// TeamSummaries counts implemented and total evaluations across the participating
// services of each team, along with the number of distinct participating services
func (r *SummaryRepository) TeamSummaries(campaignID uuid.UUID) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.Table("campaign_participants cp").
		Select("t.id, t.name, "+implementedCountExpr+", COUNT(me.id) AS total_count, COUNT(DISTINCT s.id) AS service_count",
			models.EvaluationStatusImplemented).
		Joins("JOIN services s ON s.id = cp.service_id").
		Joins("JOIN teams t ON t.id = s.team_id").
		Joins("LEFT JOIN measurement_evaluations me ON me.campaign_id = cp.campaign_id AND me.service_id = cp.service_id").
		Where("cp.campaign_id = ?", campaignID).
		Group("t.id, t.name").
		Scan(&rows).Error
	return rows, err
}

// CategorySummaries counts implemented and total evaluations per measurement category
func (r *SummaryRepository) CategorySummaries(campaignID uuid.UUID) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.Table("measurement_evaluations me").
		Select("mc.id, mc.name, "+implementedCountExpr+", COUNT(me.id) AS total_count", models.EvaluationStatusImplemented).
		Joins("JOIN measurements m ON m.id = me.measurement_id").
		Joins("JOIN measurement_categories mc ON mc.id = m.category_id").
		Where("me.campaign_id = ?", campaignID).
		Group("mc.id, mc.name").
		Scan(&rows).Error
	return rows, err
}
