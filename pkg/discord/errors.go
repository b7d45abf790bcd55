package discord

import (
	"tscatalog/internal/domain"
	"tscatalog/internal/ports/output"
)

// TranslateDomainError maps a domain error code to a user-facing message in
// locale. Unknown codes get the generic message.
func TranslateDomainError(t output.T, locale, code string) string {
	switch code {
	case "locale_not_found", "lookup_miss", "empty_source", "context_unknown":
		return t.T(locale, "error."+code, nil)
	default:
		return t.T(locale, "error.generic", nil)
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, locale, domain.Code(err))
}
