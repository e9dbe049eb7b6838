package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewfinder/backend/internal/model"
)

func TestSetupSQLite(t *testing.T) {
	db := SetupSQLite(t)

	grinder := EquipmentOf(t, db, model.EquipmentTypeGrinder, "Comandante C40")
	iced := Tag(t, db, "iced")
	r := Recipe("Flash brew")
	r.Equipment = []model.Equipment{*grinder}
	r.Tags = []model.Tag{*iced}
	Create(t, db, r)

	var loaded model.Recipe
	require.NoError(t, db.Preload("Equipment.Type").Preload("Tags").First(&loaded, r.ID).Error)
	assert.Equal(t, "Flash brew", loaded.Title)
	require.Len(t, loaded.Equipment, 1)
	assert.Equal(t, model.EquipmentTypeGrinder, loaded.Equipment[0].Type.Name)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, "iced", loaded.Tags[0].Slug)
}

func TestSetupSQLiteIsolated(t *testing.T) {
	db := SetupSQLite(t)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSetupPostgres(t *testing.T) {
	db := SetupPostgres(t)

	r := Recipe("Container pour-over")
	Create(t, db, r)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Where("is_published = ?", true).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
