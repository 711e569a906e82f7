package timezone

import (
	"roomops/config"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultZone = "UTC"
	dayLayout   = "2006-01-02"
)

var appLocation = time.UTC

func init() {
	appLocation = load(config.Get().App.Timezone)
}

// load resolves an IANA zone name and falls back to UTC when it is empty or unknown.
func load(name string) *time.Location {
	if name == "" {
		log.Warn().Str("timezone", defaultZone).Msg("No timezone configured, using default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the hotel's timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Day renders the calendar date of t as the front desk sees it, e.g. for stay periods.
func Day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return Format(t, dayLayout)
}
