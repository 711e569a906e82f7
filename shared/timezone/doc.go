// Package timezone keeps every timestamp the service renders in the hotel's local zone.
//
// The zone comes from APP_TIMEZONE and is resolved once when the package is imported.
// Stored values stay in UTC; only Now, Format and Day convert.
package timezone
