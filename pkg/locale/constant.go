package locale

// Locale is the context key for the request language.
type Locale struct{}

const (
	// EN is English.
	EN = "en"
	// ZH is Simplified Chinese.
	ZH = "zh"
)

// LangList contains all supported language codes.
var LangList = []string{EN, ZH}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN
