// Package i18n loads nested translation files and negotiates request languages.
//
// Translation files map language codes to nested message maps; keys are
// addressed with dots ("useragent.devices.mobile"). Files are read through a
// TranslationAdapter, either from memory (MapAdapter) or from any fs.FS
// (FSAdapter), and decoded by a YAMLParser or JSONParser.
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.YAMLParser{}, locales.FS, "."),
//		i18n.WithDefaultLanguage("en"),
//	)
//	label := translator.T("de", "useragent.devices.mobile") // "Mobilgerät"
//
// Placeholders use the "%{name}" form and are filled from name/value pairs:
//
//	translator.T("en", "greeting", "name", "Ann")
//
// Language negotiation relies on golang.org/x/text/language, so regional
// variants fall back to their base language ("de-CH" is served by "de").
// Middleware stores the negotiated language in the request context, where
// GetLocale and Translator.Tc pick it up.
//
// A Translator is immutable after NewTranslator returns and safe for
// concurrent use.
package i18n
