package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementReadBy(t *testing.T) {
	reader := uuid.New()
	other := uuid.New()

	raw, err := json.Marshal([]ReadEntry{
		{User: reader, ReadAt: time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	a := AnnouncementModel{AnnouncementReadBy: raw}
	entries := a.ReadBy()
	require.Len(t, entries, 1)
	assert.Equal(t, reader, entries[0].User)

	assert.True(t, a.HasRead(reader))
	assert.False(t, a.HasRead(other))
}

func TestAnnouncementReadByEmptyAndMalformed(t *testing.T) {
	var a AnnouncementModel
	assert.Nil(t, a.ReadBy())
	assert.False(t, a.HasRead(uuid.New()))

	a.AnnouncementReadBy = []byte(`{"not":"an array"`)
	assert.Nil(t, a.ReadBy())
}
