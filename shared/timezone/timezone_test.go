package timezone

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, load(""))
	assert.Equal(t, time.UTC, load("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Kolkata", load("Asia/Kolkata").String())
}

func TestDay(t *testing.T) {
	previous := appLocation
	t.Cleanup(func() { appLocation = previous })

	appLocation = load("Asia/Kolkata")

	// 20:00 UTC is already the next day in IST
	checkOut := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-02", Day(checkOut))
	assert.Equal(t, "-", Day(time.Time{}))
	assert.Equal(t, "Asia/Kolkata", Now().Location().String())
}

func TestFormat(t *testing.T) {
	previous := appLocation
	t.Cleanup(func() { appLocation = previous })

	appLocation = time.UTC

	stamp := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-01T12:00:00Z", Format(stamp, time.RFC3339))
	assert.Equal(t, stamp, ToAppTime(stamp))
}
