package service_test

import (
	"testing"

	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RosterServiceTestSuite tests teams and services
type RosterServiceTestSuite struct {
	serviceSuite
}

func (s *RosterServiceTestSuite) TestCreateTeam() {
	team, err := s.roster.CreateTeam(s.ctx, s.admin.ID, &service.CreateTeamRequest{
		Name:        "Payments",
		Description: "Card and wallet processing",
	})
	s.Require().NoError(err)
	s.Equal("Payments", team.Name)
	s.Equal(s.admin.ID, team.OwnerID)
	s.Equal(s.admin.Username, team.OwnerUsername)

	_, err = s.roster.CreateTeam(s.ctx, s.admin.ID, &service.CreateTeamRequest{Name: "Payments"})
	s.ErrorIs(err, apperrors.ErrTeamExists)

	missing := uuid.New()
	_, err = s.roster.CreateTeam(s.ctx, s.admin.ID, &service.CreateTeamRequest{Name: "Ghosts", OwnerID: &missing})
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = s.roster.CreateTeam(s.ctx, s.admin.ID, &service.CreateTeamRequest{})
	s.True(apperrors.IsValidation(err), "unexpected error: %v", err)
}

func (s *RosterServiceTestSuite) TestListTeams() {
	s.Fixtures.NamedTeam("Search", s.admin.ID)
	s.Fixtures.NamedTeam("Identity", s.admin.ID)

	teams, err := s.roster.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal("Identity", teams[0].Name)
	s.Equal("Search", teams[1].Name)
}

func (s *RosterServiceTestSuite) TestGetTeam() {
	team := s.Fixtures.NamedTeam("Payments", s.admin.ID)
	s.Fixtures.NamedService("wallet-ui", team.ID, s.admin.ID)
	s.Fixtures.NamedService("card-api", team.ID, s.admin.ID)
	other := s.Fixtures.NamedTeam("Search", s.admin.ID)
	s.Fixtures.NamedService("indexer", other.ID, s.admin.ID)

	resp, err := s.roster.GetTeam(s.ctx, team.ID)
	s.Require().NoError(err)
	s.Equal("Payments", resp.Name)
	s.Equal(s.admin.Username, resp.OwnerUsername)
	s.Require().Len(resp.Services, 2)
	s.Equal("card-api", resp.Services[0].Name)
	s.Equal("wallet-ui", resp.Services[1].Name)

	_, err = s.roster.GetTeam(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (s *RosterServiceTestSuite) TestUpdateTeam() {
	team := s.Fixtures.NamedTeam("Payments", s.admin.ID)
	s.Fixtures.NamedTeam("Search", s.admin.ID)
	owner := s.Fixtures.User(models.UserRoleTeamOwner)

	resp, err := s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{
		Name:        strPtr("Payments Platform"),
		Description: strPtr("Cards, wallets and payouts"),
		OwnerID:     &owner.ID,
	})
	s.Require().NoError(err)
	s.Equal("Payments Platform", resp.Name)
	s.Equal("Cards, wallets and payouts", resp.Description)
	s.Equal(owner.ID, resp.OwnerID)
	s.Equal(owner.Username, resp.OwnerUsername)

	// renaming to its own name is allowed
	_, err = s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{Name: strPtr("Payments Platform")})
	s.NoError(err)

	_, err = s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{Name: strPtr("Search")})
	s.ErrorIs(err, apperrors.ErrTeamExists)

	missing := uuid.New()
	_, err = s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{OwnerID: &missing})
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{})
	s.ErrorIs(err, apperrors.ErrNoFieldsToUpdate)

	_, err = s.roster.UpdateTeam(s.ctx, team.ID, &service.UpdateTeamRequest{Name: strPtr("")})
	s.True(apperrors.IsValidation(err), "unexpected error: %v", err)

	_, err = s.roster.UpdateTeam(s.ctx, uuid.New(), &service.UpdateTeamRequest{Name: strPtr("Ghosts")})
	s.ErrorIs(err, apperrors.ErrTeamNotFound)

	var stored models.Team
	s.Require().NoError(s.DB.First(&stored, "id = ?", team.ID).Error)
	s.Equal("Payments Platform", stored.Name)
	s.Equal(owner.ID, stored.OwnerID)
}

func (s *RosterServiceTestSuite) TestDeleteTeam() {
	team := s.Fixtures.Team(s.admin.ID)
	svc := s.Fixtures.Service(team.ID, s.admin.ID)

	s.ErrorIs(s.roster.DeleteTeam(s.ctx, team.ID), apperrors.ErrTeamHasServices)

	s.Require().NoError(s.roster.DeleteService(s.ctx, svc.ID))
	s.Require().NoError(s.roster.DeleteTeam(s.ctx, team.ID))
	s.Zero(s.Fixtures.Count(&models.Team{}, "id = ?", team.ID))

	s.ErrorIs(s.roster.DeleteTeam(s.ctx, team.ID), apperrors.ErrTeamNotFound)
}

func (s *RosterServiceTestSuite) TestCreateService() {
	team := s.Fixtures.Team(s.admin.ID)

	svc, err := s.roster.CreateService(s.ctx, s.admin.ID, &service.CreateServiceRequest{
		Name:             "checkout-api",
		TeamID:           team.ID,
		ServiceType:      models.ServiceTypeAPI,
		ResourceLocation: "https://git.example.com/checkout-api",
	})
	s.Require().NoError(err)
	s.Equal(team.Name, svc.TeamName)
	s.Equal(s.admin.Username, svc.OwnerUsername)
	s.Equal(models.ServiceTypeAPI, svc.ServiceType)

	_, err = s.roster.CreateService(s.ctx, s.admin.ID, &service.CreateServiceRequest{
		Name: "batch", TeamID: team.ID, ServiceType: "Cron Job",
	})
	s.True(apperrors.IsValidation(err), "unexpected error: %v", err)

	_, err = s.roster.CreateService(s.ctx, s.admin.ID, &service.CreateServiceRequest{
		Name: "orphan", TeamID: uuid.New(), ServiceType: models.ServiceTypeWorkflow,
	})
	s.ErrorIs(err, apperrors.ErrTeamNotFound)

	_, err = s.roster.CreateService(s.ctx, s.admin.ID, &service.CreateServiceRequest{
		TeamID: team.ID, ServiceType: models.ServiceTypeWorkflow,
	})
	s.True(apperrors.IsValidation(err), "unexpected error: %v", err)
}

func (s *RosterServiceTestSuite) TestGetService() {
	team := s.Fixtures.Team(s.admin.ID)
	svc := s.Fixtures.Service(team.ID, s.admin.ID)

	resp, err := s.roster.GetService(s.ctx, svc.ID)
	s.Require().NoError(err)
	s.Equal(svc.Name, resp.Name)
	s.Equal(team.Name, resp.TeamName)
	s.Equal(s.admin.Username, resp.OwnerUsername)

	_, err = s.roster.GetService(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrServiceNotFound)
}

func (s *RosterServiceTestSuite) TestUpdateService() {
	team := s.Fixtures.NamedTeam("Payments", s.admin.ID)
	target := s.Fixtures.NamedTeam("Checkout", s.admin.ID)
	svc := s.Fixtures.Service(team.ID, s.admin.ID)
	owner := s.Fixtures.User(models.UserRoleTeamOwner)
	workflow := models.ServiceTypeWorkflow

	resp, err := s.roster.UpdateService(s.ctx, svc.ID, &service.UpdateServiceRequest{
		Name:             strPtr("settlement-flow"),
		TeamID:           &target.ID,
		ServiceType:      &workflow,
		ResourceLocation: strPtr("https://git.example.com/settlement"),
		OwnerID:          &owner.ID,
	})
	s.Require().NoError(err)
	s.Equal("settlement-flow", resp.Name)
	s.Equal(target.ID, resp.TeamID)
	s.Equal("Checkout", resp.TeamName)
	s.Equal(models.ServiceTypeWorkflow, resp.ServiceType)
	s.Equal("https://git.example.com/settlement", resp.ResourceLocation)
	s.Equal(owner.Username, resp.OwnerUsername)
	s.Equal(svc.Description, resp.Description)

	cron := models.ServiceType("Cron Job")
	_, err = s.roster.UpdateService(s.ctx, svc.ID, &service.UpdateServiceRequest{ServiceType: &cron})
	s.True(apperrors.IsValidation(err), "unexpected error: %v", err)

	missing := uuid.New()
	_, err = s.roster.UpdateService(s.ctx, svc.ID, &service.UpdateServiceRequest{TeamID: &missing})
	s.ErrorIs(err, apperrors.ErrTeamNotFound)

	_, err = s.roster.UpdateService(s.ctx, svc.ID, &service.UpdateServiceRequest{OwnerID: &missing})
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = s.roster.UpdateService(s.ctx, svc.ID, &service.UpdateServiceRequest{})
	s.ErrorIs(err, apperrors.ErrNoFieldsToUpdate)

	_, err = s.roster.UpdateService(s.ctx, uuid.New(), &service.UpdateServiceRequest{Name: strPtr("ghost")})
	s.ErrorIs(err, apperrors.ErrServiceNotFound)

	var stored models.Service
	s.Require().NoError(s.DB.First(&stored, "id = ?", svc.ID).Error)
	s.Equal(models.ServiceTypeWorkflow, stored.ServiceType)
	s.Equal(target.ID, stored.TeamID)
}

func (s *RosterServiceTestSuite) TestListServices() {
	first := s.Fixtures.Team(s.admin.ID)
	second := s.Fixtures.Team(s.admin.ID)
	s.Fixtures.NamedService("web", first.ID, s.admin.ID)
	s.Fixtures.NamedService("api", first.ID, s.admin.ID)
	s.Fixtures.NamedService("worker", second.ID, s.admin.ID)

	all, err := s.roster.ListServices(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("api", all[0].Name)

	filtered, err := s.roster.ListServices(s.ctx, &first.ID)
	s.Require().NoError(err)
	s.Require().Len(filtered, 2)
	for _, svc := range filtered {
		s.Equal(first.ID, svc.TeamID)
		s.Equal(first.Name, svc.TeamName)
	}
}

func (s *RosterServiceTestSuite) TestDeleteEnrolledService() {
	w := s.buildWorld(models.CampaignStatusActive)
	s.Fixtures.Enroll(w.campaign.ID, w.service.ID, w.measurements...)

	s.ErrorIs(s.roster.DeleteService(s.ctx, w.service.ID), apperrors.ErrServiceEnrolled)
	s.ErrorIs(s.roster.DeleteService(s.ctx, uuid.New()), apperrors.ErrServiceNotFound)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
