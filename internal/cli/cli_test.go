package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"maturity-tracker-backend/internal/auth"
	"maturity-tracker-backend/internal/cli"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/database/models"
	"maturity-tracker-backend/internal/testutils"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CLITestSuite runs commands against a sqlite file in a temp dir
type CLITestSuite struct {
	suite.Suite
	path string
	env  *cli.Env
	out  *bytes.Buffer
}

func (s *CLITestSuite) SetupSuite() {
	color.NoColor = true
}

func (s *CLITestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "maturity.db")
	s.out = &bytes.Buffer{}
	s.env = &cli.Env{
		Config: &config.Config{
			DatabaseDriver: config.DriverSQLite,
			DatabaseURL:    s.path,
			JWTSecret:      "cli-test-secret",
		},
		Open: func(cfg *config.Config, skipMigrate bool) (*gorm.DB, error) {
			return s.open(skipMigrate)
		},
		Out: s.out,
	}
}

func (s *CLITestSuite) open(skipMigrate bool) (*gorm.DB, error) {
	return database.Initialize(s.path, &database.Options{
		Driver:      database.DriverSQLite,
		LogLevel:    logger.Silent,
		SkipMigrate: skipMigrate,
	})
}

func (s *CLITestSuite) db() *gorm.DB {
	db, err := s.open(true)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func (s *CLITestSuite) run(args ...string) error {
	s.out.Reset()
	root := cli.NewRootCmd(s.env)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func (s *CLITestSuite) TestMigrate() {
	s.Require().NoError(s.run("migrate"))
	s.Contains(s.out.String(), "Schema migrated")

	db := s.db()
	for _, table := range []interface{}{&models.Campaign{}, &models.MeasurementEvaluation{}, &models.EvaluationHistory{}} {
		s.True(db.Migrator().HasTable(table))
	}
}

func (s *CLITestSuite) TestSeed() {
	s.Require().NoError(s.run("seed"))
	output := s.out.String()
	s.Contains(output, "Seed applied")
	s.Regexp(`evaluations\s+48`, output)

	// a second run creates nothing
	s.Require().NoError(s.run("seed"))
	s.Regexp(`evaluations\s+0`, s.out.String())
}

func (s *CLITestSuite) TestSeedMissingFile() {
	err := s.run("seed", "--file", filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func (s *CLITestSuite) TestSummary() {
	s.Require().NoError(s.run("seed"))

	var campaign models.Campaign
	s.Require().NoError(s.db().Where("name = ?", "Hackathon 2025").First(&campaign).Error)

	s.Require().NoError(s.run("summary", campaign.ID.String()))
	output := s.out.String()
	s.Contains(output, "SERVICE")
	s.Contains(output, "API Gateway")
	s.Contains(output, "0.00%")
	s.Contains(output, "L0")

	s.Require().NoError(s.run("summary", campaign.ID.String(), "--by", "team"))
	s.Contains(s.out.String(), "TEAM")
	s.Contains(s.out.String(), "Platform Team")

	s.Require().NoError(s.run("summary", campaign.ID.String(), "--by", "category"))
	s.Contains(s.out.String(), "CATEGORY")
}

func (s *CLITestSuite) TestSummaryOfEmptyCampaign() {
	s.Require().NoError(s.run("migrate"))
	f := testutils.NewFixtures(s.T(), s.db())
	admin := f.User(models.UserRoleAdmin)
	campaign := f.Campaign(f.Model(admin.ID).ID, admin.ID, models.CampaignStatusDraft)

	s.Require().NoError(s.run("summary", campaign.ID.String()))
	s.Equal("No participants enrolled.\n", s.out.String())

	s.Require().NoError(s.run("summary", campaign.ID.String(), "--by", "team"))
	s.Equal("No participants enrolled.\n", s.out.String())

	s.Require().NoError(s.run("summary", campaign.ID.String(), "--by", "category"))
	s.Equal("No evaluations to summarise.\n", s.out.String())
}

func (s *CLITestSuite) TestSummaryErrors() {
	s.Require().NoError(s.run("migrate"))

	s.ErrorContains(s.run("summary", "not-a-uuid"), "invalid campaign ID")
	s.ErrorContains(s.run("summary", "00000000-0000-0000-0000-000000000001", "--by", "region"), "invalid --by")
	s.ErrorContains(s.run("summary", "00000000-0000-0000-0000-000000000001"), "not found")
	s.Error(s.run("summary"))
}

func (s *CLITestSuite) TestToken() {
	s.Require().NoError(s.run("seed"))
	s.Require().NoError(s.run("token", "teamowner"))

	tokens, err := auth.NewTokenService("cli-test-secret", 0)
	s.Require().NoError(err)
	claims, err := tokens.ValidateToken(string(bytes.TrimSpace(s.out.Bytes())))
	s.Require().NoError(err)
	s.Equal("teamowner", claims.Username)
	s.Equal(models.UserRoleTeamOwner, claims.Role)

	s.ErrorContains(s.run("token", "nobody"), `user "nobody" not found`)
}

func (s *CLITestSuite) TestVersion() {
	s.Require().NoError(s.run("version"))
	s.Contains(s.out.String(), "maturityctl dev")
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
