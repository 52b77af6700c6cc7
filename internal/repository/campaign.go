package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns and their participants
type CampaignRepository struct {
	db *gorm.DB
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CampaignRepository) WithTx(tx *gorm.DB) CampaignRepositoryInterface {
	return &CampaignRepository{db: tx}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Omit("MaturityModel", "Creator").Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetWithDetails retrieves a campaign with its creator and maturity model
func (r *CampaignRepository) GetWithDetails(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Creator").Preload("MaturityModel").First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves every campaign joined with creator, model and participant count, newest first
func (r *CampaignRepository) GetAll() ([]CampaignListRow, error) {
	var rows []CampaignListRow
	err := r.db.Table("campaigns c").
		Select(`c.id, c.name, c.maturity_model_id, mm.name AS maturity_model_name,
			c.start_date, c.end_date, c.status, c.created_by, u.username AS creator_username,
			COUNT(DISTINCT cp.service_id) AS participant_count, c.created_at, c.updated_at`).
		Joins("JOIN maturity_models mm ON mm.id = c.maturity_model_id").
		Joins("JOIN users u ON u.id = c.created_by").
		Joins("LEFT JOIN campaign_participants cp ON cp.campaign_id = c.id").
		Group(`c.id, c.name, c.maturity_model_id, mm.name, c.start_date, c.end_date,
			c.status, c.created_by, u.username, c.created_at, c.updated_at`).
		Order("c.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Update applies a partial update to a campaign
func (r *CampaignRepository) Update(id uuid.UUID, update CampaignUpdate) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).Updates(update.columns()).Error
}

// Delete deletes a campaign row
func (r *CampaignRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Campaign{}, "id = ?", id).Error
}

// CountByModel counts the campaigns that run a maturity model
func (r *CampaignRepository) CountByModel(modelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Where("maturity_model_id = ?", modelID).Count(&count).Error
	return count, err
}

// AddParticipant enrolls a service in a campaign
func (r *CampaignRepository) AddParticipant(participant *models.CampaignParticipant) error {
	return r.db.Omit("Campaign", "Service").Create(participant).Error
}

// GetParticipant retrieves the participation of a service in a campaign
func (r *CampaignRepository) GetParticipant(campaignID, serviceID uuid.UUID) (*models.CampaignParticipant, error) {
	var participant models.CampaignParticipant
	err := r.db.First(&participant, "campaign_id = ? AND service_id = ?", campaignID, serviceID).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetParticipants retrieves enrolled services with their teams, ordered by team then service name
func (r *CampaignRepository) GetParticipants(campaignID uuid.UUID) ([]ParticipantRow, error) {
	var rows []ParticipantRow
	err := r.db.Table("campaign_participants cp").
		Select(`cp.id, cp.campaign_id, cp.service_id, s.name AS service_name, s.service_type,
			s.team_id, t.name AS team_name, cp.created_at`).
		Joins("JOIN services s ON s.id = cp.service_id").
		Joins("JOIN teams t ON t.id = s.team_id").
		Where("cp.campaign_id = ?", campaignID).
		Order("t.name, s.name").
		Scan(&rows).Error
	return rows, err
}

// DeleteParticipant removes one service from a campaign
func (r *CampaignRepository) DeleteParticipant(campaignID, serviceID uuid.UUID) error {
	return r.db.Where("campaign_id = ? AND service_id = ?", campaignID, serviceID).
		Delete(&models.CampaignParticipant{}).Error
}

// DeleteParticipants removes every participant of a campaign
func (r *CampaignRepository) DeleteParticipants(campaignID uuid.UUID) error {
	return r.db.Where("campaign_id = ?", campaignID).Delete(&models.CampaignParticipant{}).Error
}

// GetStatusCounts counts a campaign's evaluations per status
func (r *CampaignRepository) GetStatusCounts(campaignID uuid.UUID) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.Model(&models.MeasurementEvaluation{}).
		Select("status, COUNT(*) AS count").
		Where("campaign_id = ?", campaignID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}
