package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"maturity-tracker-backend/internal/database/models"
	"maturity-tracker-backend/internal/seed"
	"maturity-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestApplySample(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()

	data, err := seed.Sample()
	require.NoError(t, err)

	result, err := seed.Apply(ctx, db, data)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{
		Users:        3,
		Categories:   6,
		Teams:        3,
		Services:     6,
		Models:       3,
		Measurements: 14,
		Campaigns:    1,
		Participants: 6,
		Evaluations:  48,
	}, *result)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	var campaign models.Campaign
	require.NoError(t, db.Where("name = ?", "Hackathon 2025").First(&campaign).Error)
	assert.Equal(t, models.CampaignStatusActive, campaign.Status)
	require.NotNil(t, campaign.EndDate)
	assert.True(t, campaign.EndDate.After(*campaign.StartDate))

	var rules int64
	require.NoError(t, db.Model(&models.MaturityLevelRule{}).Count(&rules).Error)
	assert.Equal(t, int64(15), rules)

	var pending int64
	require.NoError(t, db.Model(&models.MeasurementEvaluation{}).
		Where("status = ?", models.EvaluationStatusNotImplemented).Count(&pending).Error)
	assert.Equal(t, int64(48), pending)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()

	data, err := seed.Sample()
	require.NoError(t, err)

	_, err = seed.Apply(ctx, db, data)
	require.NoError(t, err)

	again, err := seed.Apply(ctx, db, data)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, *again)

	var evaluations int64
	require.NoError(t, db.Model(&models.MeasurementEvaluation{}).Count(&evaluations).Error)
	assert.Equal(t, int64(48), evaluations)
}

func TestApplyRejectsUnknownReferences(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	data, err := seed.Parse([]byte(`
users:
  - username: admin
    password: secret
    email: admin@example.com
    role: admin
teams:
  - name: Ghost Team
    owner: nobody
`))
	require.NoError(t, err)

	_, err = seed.Apply(context.Background(), db, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown user "nobody"`)

	// the whole document rolls back
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestApplyRejectsInvalidEnums(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	data, err := seed.Parse([]byte(`
users:
  - username: root
    password: secret
    email: root@example.com
    role: superuser
`))
	require.NoError(t, err)

	_, err = seed.Apply(context.Background(), db, data)
	assert.ErrorContains(t, err, "invalid role")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Reliability\n"), 0o600))

	data, err := seed.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Reliability", data.Categories[0].Name)

	_, err = seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = seed.Parse([]byte("users: [unterminated"))
	assert.Error(t, err)
}
