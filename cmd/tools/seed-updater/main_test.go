package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-registry/pkg/seedfile"
)

func TestAddActivityCreatesMissingSeedFile(t *testing.T) {
	seedPath = filepath.Join(t.TempDir(), "activities.json")

	err := addActivity(&seedfile.SeedActivity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{},
	})
	require.NoError(t, err)

	sf, err := seedfile.Load(seedPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", sf.Version)
	assert.NotEmpty(t, sf.LastUpdated)
	require.Len(t, sf.Activities, 1)
	assert.Equal(t, "Chess Club", sf.Activities[0].Name)
}

func TestAddActivityRejectsDuplicate(t *testing.T) {
	seedPath = filepath.Join(t.TempDir(), "activities.json")

	activity := &seedfile.SeedActivity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{},
	}
	require.NoError(t, addActivity(activity))

	err := addActivity(activity)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateActivityField(t *testing.T) {
	seedPath = filepath.Join(t.TempDir(), "activities.json")

	require.NoError(t, addActivity(&seedfile.SeedActivity{
		Name:            "Tennis Club",
		Description:     "Learn tennis techniques and compete in matches",
		Schedule:        "Wednesdays and Saturdays, 3:00 PM - 4:30 PM",
		MaxParticipants: 10,
		Participants:    []string{},
	}))

	require.NoError(t, updateActivity("Tennis Club", "max", "16"))

	sf, err := seedfile.Load(seedPath)
	require.NoError(t, err)
	assert.Equal(t, 16, sf.Activities[0].MaxParticipants)

	assert.Error(t, updateActivity("Tennis Club", "max", "0"))
	assert.Error(t, updateActivity("Tennis Club", "bogus", "x"))
	assert.Error(t, updateActivity("Nonexistent Club", "max", "5"))
}
