package jsonschema

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dateTimeRe = regexp.MustCompile(`^\d{4}-[01]\d-[0-3]\d(t|T)[0-2]\d:[0-5]\d:[0-5]\d(?:\.\d+)?(?:[+-][0-2]\d:[0-5]\d|[+-][0-2]\d[0-5]\d|z|Z)\z`)

	badEmailName   = regexp.MustCompile(`(^[^a-zA-Z0-9]){1}|([^a-zA-Z0-9._+-])+|([._\-+]{2,})|([^a-zA-Z0-9]$){1}`)
	badEmailDomain = regexp.MustCompile(`(^[^a-zA-Z0-9]){1}|([^a-zA-Z0-9.-]+)|([.-]{2,})|([a-zA-Z0-9-]){65,}|([^a-zA-Z0-9.]$){1}`)

	uriSchemeBad = regexp.MustCompile(`(^[^a-zA-Z]){1}|([^a-zA-Z0-9.+-])+`)
)

// isDateTime reports whether s matches the RFC 3339 date-time pattern.
func isDateTime(s string) bool {
	return dateTimeRe.MatchString(s)
}

// isEmail splits s on its first '@' and rejects either half if it matches
// the corresponding bad-character pattern.
func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at < 0 {
		return false
	}
	name, domain := s[:at], s[at+1:]
	if name == "" || domain == "" {
		return false
	}
	if badEmailName.MatchString(name) {
		return false
	}
	return !badEmailDomain.MatchString(domain)
}

// isHostname reuses the email domain's bad-character pattern.
func isHostname(s string) bool {
	if s == "" {
		return false
	}
	return !badEmailDomain.MatchString(s)
}

// isIPv4 splits s on '.' into exactly 4 decimal octets, 0-255, with no
// leading zeroes on multi-digit parts.
func isIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return false
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
		}
		if len(p) > 1 && p[0] == '0' {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// isIPv6 splits s on ':' into at most 8 groups, each empty or 1-4 hex
// digits with no leading zero on multi-digit groups; at most 3 empty
// groups total, and at most 1 when there are more than 4 groups.
func isIPv6(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) > 8 {
		return false
	}
	empties := 0
	for _, p := range parts {
		if p == "" {
			empties++
			continue
		}
		if len(p) > 4 {
			return false
		}
		for _, c := range p {
			isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !isHex {
				return false
			}
		}
		if len(p) > 1 && p[0] == '0' {
			return false
		}
	}
	if empties > 3 {
		return false
	}
	if len(parts) > 4 && empties > 1 {
		return false
	}
	return true
}

// isURI splits s on its first ':' into a scheme and hier-part, both
// non-empty, and rejects schemes matching the bad-scheme pattern.
func isURI(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return false
	}
	scheme, rest := s[:colon], s[colon+1:]
	if scheme == "" || rest == "" {
		return false
	}
	return !uriSchemeBad.MatchString(scheme)
}

// formatCheckers maps a format name to its checker. Names absent from
// this map are unknown formats and never fail validation.
var formatCheckers = map[string]func(string) bool{
	"date-time": isDateTime,
	"email":     isEmail,
	"hostname":  isHostname,
	"ipv4":      isIPv4,
	"ipv6":      isIPv6,
	"uri":       isURI,
}
