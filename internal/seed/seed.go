// Package seed loads reference data from YAML. Every entity is found by its
// natural key first, so applying the same document twice changes nothing.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"maturity-tracker-backend/internal/database/models"
	"maturity-tracker-backend/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed sample.yaml
var sampleYAML []byte

type UserData struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
}

type CategoryData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type TeamData struct {
	Name        string `yaml:"name"`
	Owner       string `yaml:"owner"`
	Description string `yaml:"description"`
}

type ServiceData struct {
	Name             string `yaml:"name"`
	Team             string `yaml:"team"`
	Owner            string `yaml:"owner"`
	Description      string `yaml:"description"`
	ServiceType      string `yaml:"service_type"`
	ResourceLocation string `yaml:"resource_location"`
}

type MeasurementData struct {
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Description    string `yaml:"description"`
	EvidenceType   string `yaml:"evidence_type"`
	SampleEvidence string `yaml:"sample_evidence"`
}

type ModelData struct {
	Name         string            `yaml:"name"`
	Owner        string            `yaml:"owner"`
	Description  string            `yaml:"description"`
	Measurements []MeasurementData `yaml:"measurements"`
}

type CampaignData struct {
	Name         string   `yaml:"name"`
	Model        string   `yaml:"model"`
	CreatedBy    string   `yaml:"created_by"`
	Status       string   `yaml:"status"`
	DurationDays int      `yaml:"duration_days"`
	EnrollAll    bool     `yaml:"enroll_all"`
	Services     []string `yaml:"services,omitempty"`
}

// Data is one seed document
type Data struct {
	Users      []UserData     `yaml:"users"`
	Categories []CategoryData `yaml:"categories"`
	Teams      []TeamData     `yaml:"teams"`
	Services   []ServiceData  `yaml:"services"`
	Models     []ModelData    `yaml:"models"`
	Campaigns  []CampaignData `yaml:"campaigns"`
}

// Result counts the rows a run created
type Result struct {
	Users        int
	Categories   int
	Teams        int
	Services     int
	Models       int
	Measurements int
	Campaigns    int
	Participants int
	Evaluations  int
}

// Parse decodes a seed document
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Sample returns the embedded sample document
func Sample() (*Data, error) {
	return Parse(sampleYAML)
}

// LoadFile reads and decodes a seed document from disk
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

type loader struct {
	tx     *gorm.DB
	now    time.Time
	result Result

	users      map[string]*models.User
	categories map[string]*models.MeasurementCategory
	teams      map[string]*models.Team
	services   map[string]*models.Service
	models     map[string]*models.MaturityModel
}

// Apply writes data in a single transaction
func Apply(ctx context.Context, db *gorm.DB, data *Data) (*Result, error) {
	l := &loader{
		now:        time.Now().UTC(),
		users:      make(map[string]*models.User),
		categories: make(map[string]*models.MeasurementCategory),
		teams:      make(map[string]*models.Team),
		services:   make(map[string]*models.Service),
		models:     make(map[string]*models.MaturityModel),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l.tx = tx
		steps := []func(*Data) error{
			l.loadUsers,
			l.loadCategories,
			l.loadTeams,
			l.loadServices,
			l.loadModels,
			l.loadCampaigns,
		}
		for _, step := range steps {
			if err := step(data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"users":        l.result.Users,
		"categories":   l.result.Categories,
		"teams":        l.result.Teams,
		"services":     l.result.Services,
		"models":       l.result.Models,
		"measurements": l.result.Measurements,
		"campaigns":    l.result.Campaigns,
		"participants": l.result.Participants,
		"evaluations":  l.result.Evaluations,
	}).Info("seed data applied")

	return &l.result, nil
}

// findOrCreate loads the first row matching query into dest or inserts dest.
// It reports whether a row was inserted.
func (l *loader) findOrCreate(dest interface{}, query string, args ...interface{}) (bool, error) {
	err := l.tx.Where(query, args...).First(dest).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := l.tx.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (l *loader) user(username string) (*models.User, error) {
	u, ok := l.users[username]
	if ok {
		return u, nil
	}
	var existing models.User
	if err := l.tx.Where("username = ?", username).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("unknown user %q: %w", username, err)
	}
	l.users[username] = &existing
	return &existing, nil
}

func (l *loader) loadUsers(data *Data) error {
	for _, d := range data.Users {
		role := models.UserRole(d.Role)
		if !role.IsValid() {
			return fmt.Errorf("user %s: invalid role %q", d.Username, d.Role)
		}

		var existing models.User
		err := l.tx.Where("username = ?", d.Username).First(&existing).Error
		if err == nil {
			l.users[d.Username] = &existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query user %s: %w", d.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", d.Username, err)
		}
		u := &models.User{
			Username:     d.Username,
			PasswordHash: string(hash),
			Email:        d.Email,
			Role:         role,
		}
		if err := l.tx.Create(u).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", d.Username, err)
		}
		l.users[d.Username] = u
		l.result.Users++
	}
	return nil
}

func (l *loader) loadCategories(data *Data) error {
	for _, d := range data.Categories {
		c := &models.MeasurementCategory{Name: d.Name, Description: d.Description}
		created, err := l.findOrCreate(c, "name = ?", d.Name)
		if err != nil {
			return fmt.Errorf("failed to load category %s: %w", d.Name, err)
		}
		if created {
			l.result.Categories++
		}
		l.categories[d.Name] = c
	}
	return nil
}

func (l *loader) loadTeams(data *Data) error {
	for _, d := range data.Teams {
		owner, err := l.user(d.Owner)
		if err != nil {
			return fmt.Errorf("team %s: %w", d.Name, err)
		}
		t := &models.Team{Name: d.Name, OwnerID: owner.ID, Description: d.Description}
		created, err := l.findOrCreate(t, "name = ?", d.Name)
		if err != nil {
			return fmt.Errorf("failed to load team %s: %w", d.Name, err)
		}
		if created {
			l.result.Teams++
		}
		l.teams[d.Name] = t
	}
	return nil
}

func (l *loader) loadServices(data *Data) error {
	for _, d := range data.Services {
		team, ok := l.teams[d.Team]
		if !ok {
			return fmt.Errorf("service %s: unknown team %q", d.Name, d.Team)
		}
		owner, err := l.user(d.Owner)
		if err != nil {
			return fmt.Errorf("service %s: %w", d.Name, err)
		}
		serviceType := models.ServiceType(d.ServiceType)
		if !serviceType.IsValid() {
			return fmt.Errorf("service %s: invalid service type %q", d.Name, d.ServiceType)
		}

		s := &models.Service{
			Name:             d.Name,
			TeamID:           team.ID,
			OwnerID:          owner.ID,
			Description:      d.Description,
			ServiceType:      serviceType,
			ResourceLocation: d.ResourceLocation,
		}
		created, err := l.findOrCreate(s, "name = ? AND team_id = ?", d.Name, team.ID)
		if err != nil {
			return fmt.Errorf("failed to load service %s: %w", d.Name, err)
		}
		if created {
			l.result.Services++
		}
		l.services[d.Name] = s
	}
	return nil
}

func (l *loader) loadModels(data *Data) error {
	for _, d := range data.Models {
		owner, err := l.user(d.Owner)
		if err != nil {
			return fmt.Errorf("model %s: %w", d.Name, err)
		}
		m := &models.MaturityModel{Name: d.Name, OwnerID: owner.ID, Description: d.Description}
		created, err := l.findOrCreate(m, "name = ?", d.Name)
		if err != nil {
			return fmt.Errorf("failed to load model %s: %w", d.Name, err)
		}
		if created {
			rules := models.DefaultLevelRules(m.ID)
			if err := l.tx.Create(&rules).Error; err != nil {
				return fmt.Errorf("failed to create level rules for %s: %w", d.Name, err)
			}
			l.result.Models++
		}
		l.models[d.Name] = m

		for _, md := range d.Measurements {
			if err := l.loadMeasurement(m, md); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *loader) loadMeasurement(m *models.MaturityModel, d MeasurementData) error {
	category, ok := l.categories[d.Category]
	if !ok {
		return fmt.Errorf("measurement %s: unknown category %q", d.Name, d.Category)
	}
	evidenceType := models.EvidenceType(d.EvidenceType)
	if !evidenceType.IsValid() {
		return fmt.Errorf("measurement %s: invalid evidence type %q", d.Name, d.EvidenceType)
	}

	measurement := &models.Measurement{
		Name:            d.Name,
		MaturityModelID: m.ID,
		CategoryID:      category.ID,
		Description:     d.Description,
		EvidenceType:    evidenceType,
		SampleEvidence:  d.SampleEvidence,
	}
	created, err := l.findOrCreate(measurement, "maturity_model_id = ? AND name = ?", m.ID, d.Name)
	if err != nil {
		return fmt.Errorf("failed to load measurement %s: %w", d.Name, err)
	}
	if created {
		l.result.Measurements++
	}
	return nil
}

func (l *loader) loadCampaigns(data *Data) error {
	for _, d := range data.Campaigns {
		m, ok := l.models[d.Model]
		if !ok {
			return fmt.Errorf("campaign %s: unknown model %q", d.Name, d.Model)
		}
		creator, err := l.user(d.CreatedBy)
		if err != nil {
			return fmt.Errorf("campaign %s: %w", d.Name, err)
		}
		status := models.CampaignStatus(d.Status)
		if d.Status == "" {
			status = models.CampaignStatusDraft
		}
		if !status.IsValid() {
			return fmt.Errorf("campaign %s: invalid status %q", d.Name, d.Status)
		}

		start := l.now
		campaign := &models.Campaign{
			Name:            d.Name,
			MaturityModelID: m.ID,
			Status:          status,
			CreatedBy:       creator.ID,
			StartDate:       &start,
		}
		if d.DurationDays > 0 {
			end := start.AddDate(0, 0, d.DurationDays)
			campaign.EndDate = &end
		}
		created, err := l.findOrCreate(campaign, "name = ? AND maturity_model_id = ?", d.Name, m.ID)
		if err != nil {
			return fmt.Errorf("failed to load campaign %s: %w", d.Name, err)
		}
		if created {
			l.result.Campaigns++
		}

		names := d.Services
		if d.EnrollAll {
			names = make([]string, 0, len(data.Services))
			for _, s := range data.Services {
				names = append(names, s.Name)
			}
		}
		for _, name := range names {
			svc, ok := l.services[name]
			if !ok {
				return fmt.Errorf("campaign %s: unknown service %q", d.Name, name)
			}
			if err := l.enroll(campaign, svc); err != nil {
				return err
			}
		}
	}
	return nil
}

// enroll adds svc to campaign with one Not Implemented evaluation per measurement
func (l *loader) enroll(campaign *models.Campaign, svc *models.Service) error {
	participant := &models.CampaignParticipant{CampaignID: campaign.ID, ServiceID: svc.ID}
	created, err := l.findOrCreate(participant, "campaign_id = ? AND service_id = ?", campaign.ID, svc.ID)
	if err != nil {
		return fmt.Errorf("failed to enroll %s: %w", svc.Name, err)
	}
	if !created {
		return nil
	}
	l.result.Participants++

	var measurements []models.Measurement
	if err := l.tx.Where("maturity_model_id = ?", campaign.MaturityModelID).Find(&measurements).Error; err != nil {
		return fmt.Errorf("failed to list measurements: %w", err)
	}
	if len(measurements) == 0 {
		return nil
	}

	evaluations := make([]models.MeasurementEvaluation, len(measurements))
	for i, m := range measurements {
		evaluations[i] = models.MeasurementEvaluation{
			CampaignID:    campaign.ID,
			ServiceID:     svc.ID,
			MeasurementID: m.ID,
			Status:        models.EvaluationStatusNotImplemented,
		}
	}
	if err := l.tx.Create(&evaluations).Error; err != nil {
		return fmt.Errorf("failed to create evaluations for %s: %w", svc.Name, err)
	}
	l.result.Evaluations += len(evaluations)
	return nil
}
