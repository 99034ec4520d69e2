// Package timezone provides the application clock and timezone helpers.
//
// Usage Examples:
//
//  1. Capture the reference instant once per request:
//     now := timezone.Now()
//
//  2. Formatting and parsing in the app timezone:
//     formatted := timezone.Format(show.StartTime, constant.DateFormat)
//     t, err := timezone.Parse(constant.DateFormat, "2035-04-01T20:00:00Z")
//
//  3. Pinning the clock in tests:
//     restore := timezone.Freeze(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
//     defer restore()
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use standard IANA
// timezone database names.
package timezone
