package auth

import (
	"net/url"
	"strings"
)

// RecoveryTokens is parsed out of a password-reset deep link and immediately
// exchanged for a session, never persisted.
type RecoveryTokens struct {
	AccessToken  string
	RefreshToken string
}

// ParseRecoveryTokens extracts the recovery session tokens from a deep-link
// URL. The URL must carry the literal type=recovery marker; the token pairs
// live in the fragment after '#', or failing that in the query after '?'.
// Anything short of access_token, refresh_token and type=recovery exactly
// yields nil, which callers treat as "not a recovery link".
func ParseRecoveryTokens(rawURL string) *RecoveryTokens {
	if rawURL == "" || !strings.Contains(rawURL, "type=recovery") {
		return nil
	}
	var part string
	if idx := strings.Index(rawURL, "#"); idx >= 0 {
		part = rawURL[idx+1:]
	} else if idx := strings.Index(rawURL, "?"); idx >= 0 {
		part = rawURL[idx+1:]
	} else {
		return nil
	}
	values, err := url.ParseQuery(part)
	if err != nil {
		return nil
	}
	access := values.Get("access_token")
	refresh := values.Get("refresh_token")
	if access == "" || refresh == "" || values.Get("type") != "recovery" {
		return nil
	}
	return &RecoveryTokens{
		AccessToken:  access,
		RefreshToken: refresh,
	}
}
