package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/pkg/clock"
)

func TestToday_UsesLocation(t *testing.T) {
	// 02:00 UTC del 2 de marzo sigue siendo 1 de marzo en Buenos Aires (UTC-3).
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	c := clock.Fixed(time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC).In(loc))

	assert.Equal(t, "2024-03-01", c.Today())
}

func TestNew_InvalidZone(t *testing.T) {
	_, err := clock.New("Marte/Olympus")
	assert.Error(t, err)
}

func TestValidDate(t *testing.T) {
	assert.True(t, clock.ValidDate("2024-02-29"))
	assert.False(t, clock.ValidDate("2023-02-29"))
	assert.False(t, clock.ValidDate("01/02/2024"))
}
