package phase

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/blueprint/internal/estimate"
)

// Keyword families shared by the rule chain and the value scores. Read-only.
var (
	authKeywords      = []string{"auth", "login", "log in", "signup", "sign up", "sign-up", "registration", "register", "account"}
	profileKeywords   = []string{"profile"}
	listingKeywords   = []string{"listing", "catalog", "catalogue", "inventory", "product"}
	searchKeywords    = []string{"search", "filter", "browse", "discovery"}
	messagingKeywords = []string{"messaging", "message", "inbox", "dm"}
	paymentKeywords   = []string{"payment", "pay", "checkout", "billing", "stripe", "subscription", "invoice"}
	cartKeywords      = []string{"cart", "basket", "wishlist"}
	bookingKeywords   = []string{"booking", "reservation", "appointment", "calendar", "scheduling"}
	mobileKeywords    = []string{"mobile", "ios", "android", "app store"}
	aiKeywords        = []string{"ai", "ml", "machine learning", "artificial intelligence", "recommendation", "gpt", "llm", "chatbot", "personalization"}
	realtimeKeywords  = []string{"real-time", "realtime", "chat", "live", "websocket", "video call"}
	dashboardKeywords = []string{"dashboard"}
	reviewKeywords    = []string{"review", "rating"}
	uploadKeywords    = []string{"upload", "file", "media", "attachment"}

	socialKeywords      = []string{"social", "share", "sharing", "follow", "community", "feed"}
	integrationKeywords = []string{"integration", "api", "webhook", "third-party", "zapier"}
	i18nKeywords        = []string{"i18n", "multi-language", "multilingual", "localization", "localisation", "translation"}
	tenantKeywords      = []string{"multi-tenant", "multitenant", "tenant"}
	whiteLabelKeywords  = []string{"white-label", "whitelabel", "white label"}

	analyticsKeywords    = []string{"analytics", "reporting", "report", "metrics", "insights"}
	adminKeywords        = []string{"admin", "moderation", "back office", "back-office"}
	settingsKeywords     = []string{"settings", "preferences", "configuration"}
	notificationKeywords = []string{"notification", "email", "alert", "push"}
)

// text is a normalized feature name or description prepared for keyword
// matching.
type text struct {
	raw    string
	tokens []string
}

func newText(s string) text {
	raw := estimate.NormalizeLabel(s)
	return text{
		raw: raw,
		tokens: strings.FieldsFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}),
	}
}

// has reports whether any keyword occurs. Phrases (containing a space or a
// hyphen) match as substrings; single words match a whole token, or a token
// prefix when the keyword is at least four characters long.
func (t text) has(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.ContainsAny(kw, " -") {
			if strings.Contains(t.raw, kw) {
				return true
			}
			continue
		}
		for _, tok := range t.tokens {
			if tok == kw || (len(kw) >= 4 && strings.HasPrefix(tok, kw)) {
				return true
			}
		}
	}
	return false
}

func (t text) hasAny(families ...[]string) bool {
	for _, f := range families {
		if t.has(f...) {
			return true
		}
	}
	return false
}
