package bot

// Locale identifies one of the three supported display languages.
type Locale string

const (
	LocaleEn  Locale = "en"
	LocaleAr  Locale = "ar"
	LocaleCkb Locale = "ckb"

	DefaultLocale = LocaleEn
)

// ParseLocale normalizes an arbitrary locale signal (header or cookie
// value) to a supported locale, defaulting to English.
func ParseLocale(raw string) Locale {
	switch Locale(raw) {
	case LocaleAr:
		return LocaleAr
	case LocaleCkb:
		return LocaleCkb
	default:
		return DefaultLocale
	}
}

// Localize projects the locale-appropriate name/description pair onto
// the record. Empty localized values fall back to the English variant.
// Pure: the receiver is copied, stored fields are never modified.
func Localize(b Bot, locale Locale) Bot {
	var name, desc string
	switch locale {
	case LocaleAr:
		name, desc = b.ArName, b.ArDesc
	case LocaleCkb:
		name, desc = b.CkbName, b.CkbDesc
	default:
		name, desc = b.EnName, b.EnDesc
	}

	if name == "" {
		name = b.EnName
	}
	if desc == "" {
		desc = b.EnDesc
	}

	b.Name = name
	b.Description = desc
	return b
}

// LocalizeAll maps Localize over a slice.
func LocalizeAll(bs []Bot, locale Locale) []Bot {
	out := make([]Bot, len(bs))
	for i, b := range bs {
		out[i] = Localize(b, locale)
	}
	return out
}
