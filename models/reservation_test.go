package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusDisapproved, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusDisapproved, false},
		{StatusApproved, StatusPending, false},
		{StatusDisapproved, StatusApproved, false},
		{StatusDisapproved, StatusPending, false},
		{StatusPending, "cancelled", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestBeforeCreateAssignsDefaults(t *testing.T) {
	r := Reservation{}
	require.NoError(t, r.BeforeCreate(nil))

	assert.NotEmpty(t, r.PublicID)
	assert.Equal(t, StatusPending, r.Status)

	// An already assigned id is kept.
	r2 := Reservation{PublicID: "fixed-id", Status: StatusApproved}
	require.NoError(t, r2.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", r2.PublicID)
	assert.Equal(t, StatusApproved, r2.Status)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", d.String())

	// ISO datetimes are truncated to their date portion.
	d, err = ParseDate("2025-06-10T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", d.String())

	_, err = ParseDate("10/06/2025")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-10"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-11"`), &decoded))
	assert.Equal(t, "2025-06-11", decoded.String())
	assert.True(t, decoded.After(d))
}

func TestRoomCatalog(t *testing.T) {
	assert.Len(t, Rooms, 4)

	room, ok := RoomByID("room-101")
	require.True(t, ok)
	assert.Equal(t, "First Floor Apartment", room.Name)

	assert.True(t, IsKnownRoom("room-104"))
	assert.False(t, IsKnownRoom("room-999"))
	assert.False(t, IsKnownRoom(""))
}
