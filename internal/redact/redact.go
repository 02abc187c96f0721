// Package redact scrubs secrets from strings before they are logged or
// returned in error responses. Provider errors quote request details, so
// anything that touched an Authorization header or a connection string
// must pass through here on its way out.
package redact

import "regexp"

// Placeholders substituted for matched secrets.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

var (
	// Bearer tokens and API keys quoted in upstream error bodies.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Connection strings with inline credentials.
	connStringRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)
)

// String returns s with known secret shapes replaced by placeholders.
func String(s string) string {
	s = bearerRegex.ReplaceAllString(s, RedactedKeyPlaceholder)
	s = apiKeyRegex.ReplaceAllString(s, "${1}${2}"+RedactedKeyPlaceholder)
	s = connStringRegex.ReplaceAllString(s, "${1}://"+RedactedCredentialPlaceholder+"@")
	return s
}

// Error redacts an error's message. Nil errors yield an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
