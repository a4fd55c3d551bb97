package middleware

import (
	"github.com/gofiber/fiber/v2"
	domainBot "github.com/zanyar-dev/botarium/domains/bot"
)

const (
	LocaleHeader = "X-Locale"
	LocaleCookie = "locale"
	localeKey    = "locale"
)

// Locale resolves the display language for the request: header first,
// then cookie, default English.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(LocaleHeader)
		if raw == "" {
			raw = c.Cookies(LocaleCookie)
		}
		c.Locals(localeKey, domainBot.ParseLocale(raw))
		return c.Next()
	}
}

// LocaleFrom returns the locale resolved by the Locale middleware.
func LocaleFrom(c *fiber.Ctx) domainBot.Locale {
	if locale, ok := c.Locals(localeKey).(domainBot.Locale); ok {
		return locale
	}
	return domainBot.DefaultLocale
}
