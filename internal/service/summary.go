package service

import (
	"context"
	"math"
	"sort"

	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// SummaryService computes read-only implementation roll-ups for a campaign
type SummaryService struct {
	summaries repository.SummaryRepositoryInterface
	campaigns repository.CampaignRepositoryInterface
	models    repository.MaturityModelRepositoryInterface
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	summaries repository.SummaryRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	modelRepo repository.MaturityModelRepositoryInterface,
) *SummaryService {
	return &SummaryService{
		summaries: summaries,
		campaigns: campaigns,
		models:    modelRepo,
	}
}

// SummaryItem is one roll-up group. ImplementationPercentage and MaturityLevel
// are null when the group has no evaluations.
type SummaryItem struct {
	ID                       uuid.UUID `json:"id"`
	Name                     string    `json:"name"`
	ImplementedCount         int64     `json:"implemented_count"`
	TotalCount               int64     `json:"total_count"`
	ServiceCount             *int64    `json:"service_count,omitempty"`
	ImplementationPercentage *float64  `json:"implementation_percentage"`
	MaturityLevel            *int      `json:"maturity_level"`
}

// CampaignSummaryResponse holds the three roll-ups of a campaign
type CampaignSummaryResponse struct {
	CampaignID        uuid.UUID     `json:"campaign_id"`
	ServiceSummaries  []SummaryItem `json:"service_summaries"`
	TeamSummaries     []SummaryItem `json:"team_summaries"`
	CategorySummaries []SummaryItem `json:"category_summaries"`
}

type summaryQuery func(campaignID uuid.UUID) ([]repository.SummaryRow, error)

// GetCampaignSummary returns the service, team and category roll-ups. The three
// queries run independently and are not one snapshot.
func (s *SummaryService) GetCampaignSummary(ctx context.Context, campaignID uuid.UUID) (*CampaignSummaryResponse, error) {
	rules, err := s.campaignRules(campaignID)
	if err != nil {
		return nil, err
	}

	services, err := s.rollUp("service summaries", s.summaries.ServiceSummaries, campaignID, rules, false)
	if err != nil {
		return nil, err
	}
	teams, err := s.rollUp("team summaries", s.summaries.TeamSummaries, campaignID, rules, true)
	if err != nil {
		return nil, err
	}
	categories, err := s.rollUp("category summaries", s.summaries.CategorySummaries, campaignID, rules, false)
	if err != nil {
		return nil, err
	}

	return &CampaignSummaryResponse{
		CampaignID:        campaignID,
		ServiceSummaries:  services,
		TeamSummaries:     teams,
		CategorySummaries: categories,
	}, nil
}

// SummaryByService rolls up each participating service
func (s *SummaryService) SummaryByService(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error) {
	rules, err := s.campaignRules(campaignID)
	if err != nil {
		return nil, err
	}
	return s.rollUp("service summaries", s.summaries.ServiceSummaries, campaignID, rules, false)
}

// SummaryByTeam rolls up each team with at least one participating service
func (s *SummaryService) SummaryByTeam(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error) {
	rules, err := s.campaignRules(campaignID)
	if err != nil {
		return nil, err
	}
	return s.rollUp("team summaries", s.summaries.TeamSummaries, campaignID, rules, true)
}

// SummaryByCategory rolls up each measurement category across all participants
func (s *SummaryService) SummaryByCategory(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error) {
	rules, err := s.campaignRules(campaignID)
	if err != nil {
		return nil, err
	}
	return s.rollUp("category summaries", s.summaries.CategorySummaries, campaignID, rules, false)
}

func (s *SummaryService) campaignRules(campaignID uuid.UUID) ([]models.MaturityLevelRule, error) {
	campaign, err := s.campaigns.GetByID(campaignID)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	rules, err := s.models.GetLevelRules(campaign.MaturityModelID)
	if err != nil {
		return nil, storageError("get level rules", err)
	}
	return rules, nil
}

func (s *SummaryService) rollUp(op string, query summaryQuery, campaignID uuid.UUID, rules []models.MaturityLevelRule, withServiceCount bool) ([]SummaryItem, error) {
	rows, err := query(campaignID)
	if err != nil {
		return nil, storageError(op, err)
	}
	return buildSummary(rows, rules, withServiceCount), nil
}

// buildSummary computes percentages and levels, then orders by percentage
// descending with undefined percentages last, then by name
func buildSummary(rows []repository.SummaryRow, rules []models.MaturityLevelRule, withServiceCount bool) []SummaryItem {
	items := make([]SummaryItem, len(rows))
	for i, row := range rows {
		pct := ImplementationPercentage(row.ImplementedCount, row.TotalCount)
		items[i] = SummaryItem{
			ID:                       row.ID,
			Name:                     row.Name,
			ImplementedCount:         row.ImplementedCount,
			TotalCount:               row.TotalCount,
			ImplementationPercentage: pct,
			MaturityLevel:            models.ClassifyLevel(rules, pct),
		}
		if withServiceCount {
			count := row.ServiceCount
			items[i].ServiceCount = &count
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].ImplementationPercentage, items[j].ImplementationPercentage
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && *a != *b:
			return *a > *b
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// ImplementationPercentage returns round(100*implemented/total, 2), or nil when total is zero
func ImplementationPercentage(implemented, total int64) *float64 {
	if total == 0 {
		return nil
	}
	pct := math.Round(float64(implemented)*100/float64(total)*100) / 100
	return &pct
}
