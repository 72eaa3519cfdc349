package transcript

// ResolveLanguage returns the first language code from the preference
// list for which available reports true. It never substitutes a language
// outside the preference list; the second return is false when none of
// the preferred languages is available.
func ResolveLanguage(prefs []string, available func(lang string) bool) (string, bool) {
	for _, lang := range prefs {
		if available(lang) {
			return lang, true
		}
	}
	return "", false
}
