package workshop

import (
	"fmt"
	"strings"

	"atum/internal/models"
)

// Selection holds the user's query, language and testing framework.
// The zero value is the empty selection a session starts with.
type Selection struct {
	Query     string
	Language  models.Language
	Framework models.Framework
}

// SetLanguage changes the language, dropping a framework the new language
// does not offer. An empty language clears the selection.
func (s *Selection) SetLanguage(lang models.Language) error {
	lang = models.Language(strings.TrimSpace(string(lang)))
	if lang != "" && !lang.Valid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	s.Language = lang
	if s.Framework != "" && !models.SupportsFramework(lang, s.Framework) {
		s.Framework = ""
	}
	return nil
}

// SetFramework selects a framework valid for the current language.
// An empty framework clears the selection.
func (s *Selection) SetFramework(fw models.Framework) error {
	fw = models.Framework(strings.TrimSpace(string(fw)))
	if fw == "" {
		s.Framework = ""
		return nil
	}
	if s.Language == "" {
		return fmt.Errorf("select a programming language before choosing a framework")
	}
	if !models.SupportsFramework(s.Language, fw) {
		return fmt.Errorf("framework %q is not available for %s", fw, s.Language)
	}
	s.Framework = fw
	return nil
}

func (s Selection) State() models.SelectionState {
	return models.SelectionState{
		Query:     s.Query,
		Language:  s.Language,
		Framework: s.Framework,
	}
}
