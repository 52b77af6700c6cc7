//go:build integration
// +build integration

package repository

import (
	"testing"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RosterRepositoryTestSuite tests the team and service repositories
type RosterRepositoryTestSuite struct {
	postgresSuite
	teams    *TeamRepository
	services *ServiceRepository
	owner    *models.User
}

func (s *RosterRepositoryTestSuite) SetupTest() {
	s.postgresSuite.SetupTest()
	s.teams = NewTeamRepository(s.db)
	s.services = NewServiceRepository(s.db)
	s.owner = s.fixtures.User(models.UserRoleTeamOwner)
}

func (s *RosterRepositoryTestSuite) TestTeamGetByIDPreloadsOwner() {
	team := s.fixtures.Team(s.owner.ID)

	retrieved, err := s.teams.GetByID(team.ID)

	s.Require().NoError(err)
	s.Require().NotNil(retrieved.Owner)
	s.Equal(s.owner.Username, retrieved.Owner.Username)
}

func (s *RosterRepositoryTestSuite) TestTeamDuplicateName() {
	s.fixtures.NamedTeam("Platform", s.owner.ID)

	duplicate := s.factories.Team.WithOwner(s.owner.ID)
	duplicate.Name = "Platform"

	s.ErrorIs(s.teams.Create(duplicate), gorm.ErrDuplicatedKey)
}

func (s *RosterRepositoryTestSuite) TestTeamGetByName() {
	team := s.fixtures.NamedTeam("Payments", s.owner.ID)

	retrieved, err := s.teams.GetByName("Payments")
	s.NoError(err)
	s.Equal(team.ID, retrieved.ID)

	_, err = s.teams.GetByName("Missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RosterRepositoryTestSuite) TestTeamPartialUpdate() {
	team := s.fixtures.NamedTeam("Payments", s.owner.ID)
	s.fixtures.NamedTeam("Search", s.owner.ID)
	name := "Payments Platform"

	s.Require().NoError(s.teams.Update(team.ID, TeamUpdate{Name: &name}))

	retrieved, err := s.teams.GetByID(team.ID)
	s.Require().NoError(err)
	s.Equal(name, retrieved.Name)
	s.Equal(team.Description, retrieved.Description)
	s.Equal(s.owner.ID, retrieved.OwnerID)

	taken := "Search"
	s.ErrorIs(s.teams.Update(team.ID, TeamUpdate{Name: &taken}), gorm.ErrDuplicatedKey)
}

func (s *RosterRepositoryTestSuite) TestServicePartialUpdate() {
	team := s.fixtures.Team(s.owner.ID)
	target := s.fixtures.Team(s.owner.ID)
	svc := s.fixtures.Service(team.ID, s.owner.ID)
	serviceType := models.ServiceTypeUIApplication

	s.Require().NoError(s.services.Update(svc.ID, ServiceUpdate{TeamID: &target.ID, ServiceType: &serviceType}))

	retrieved, err := s.services.GetByID(svc.ID)
	s.Require().NoError(err)
	s.Equal(target.ID, retrieved.TeamID)
	s.Equal(target.Name, retrieved.Team.Name)
	s.Equal(models.ServiceTypeUIApplication, retrieved.ServiceType)
	s.Equal(svc.Name, retrieved.Name)

	missing := uuid.New()
	s.Error(s.services.Update(svc.ID, ServiceUpdate{TeamID: &missing}))
}

func (s *RosterRepositoryTestSuite) TestTeamGetAllOrderedByName() {
	s.fixtures.NamedTeam("Backend Team", s.owner.ID)
	s.fixtures.NamedTeam("API Team", s.owner.ID)

	teams, err := s.teams.GetAll()

	s.NoError(err)
	s.Require().Len(teams, 2)
	s.Equal("API Team", teams[0].Name)
	s.Equal("Backend Team", teams[1].Name)
	s.NotNil(teams[0].Owner)
}

func (s *RosterRepositoryTestSuite) TestTeamCountServicesAndDelete() {
	team := s.fixtures.Team(s.owner.ID)
	empty := s.fixtures.Team(s.owner.ID)
	s.fixtures.Service(team.ID, s.owner.ID)
	s.fixtures.Service(team.ID, s.owner.ID)

	count, err := s.teams.CountServices(team.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	s.NoError(s.teams.Delete(empty.ID))
	_, err = s.teams.GetByID(empty.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RosterRepositoryTestSuite) TestServiceGetAllFiltersByTeam() {
	platform := s.fixtures.Team(s.owner.ID)
	frontend := s.fixtures.Team(s.owner.ID)
	s.fixtures.NamedService("gateway", platform.ID, s.owner.ID)
	s.fixtures.NamedService("auth", platform.ID, s.owner.ID)
	s.fixtures.NamedService("portal", frontend.ID, s.owner.ID)

	all, err := s.services.GetAll(nil)
	s.NoError(err)
	s.Len(all, 3)

	filtered, err := s.services.GetAll(&platform.ID)
	s.NoError(err)
	s.Require().Len(filtered, 2)
	s.Equal("auth", filtered[0].Name)
	s.Equal("gateway", filtered[1].Name)
	s.Require().NotNil(filtered[0].Team)
	s.Equal(platform.Name, filtered[0].Team.Name)

	unknown := uuid.New()
	none, err := s.services.GetAll(&unknown)
	s.NoError(err)
	s.Empty(none)
}

func (s *RosterRepositoryTestSuite) TestServiceCountParticipations() {
	team := s.fixtures.Team(s.owner.ID)
	svc := s.fixtures.Service(team.ID, s.owner.ID)
	model := s.fixtures.Model(s.owner.ID)
	first := s.fixtures.Campaign(model.ID, s.owner.ID, models.CampaignStatusActive)
	second := s.fixtures.Campaign(model.ID, s.owner.ID, models.CampaignStatusDraft)
	s.fixtures.Enroll(first.ID, svc.ID)
	s.fixtures.Enroll(second.ID, svc.ID)

	count, err := s.services.CountParticipations(svc.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func TestRosterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RosterRepositoryTestSuite))
}
