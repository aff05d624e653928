package models

// Language identifies a programming language offered by the generator.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCSharp     Language = "csharp"
	LanguagePHP        Language = "php"
	LanguageRuby       Language = "ruby"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
	LanguageSwift      Language = "swift"
	LanguageTypeScript Language = "typescript"
)

// Framework identifies a unit testing framework.
type Framework string

const (
	FrameworkPytest   Framework = "pytest"
	FrameworkUnittest Framework = "unittest"
	FrameworkJest     Framework = "jest"
	FrameworkMocha    Framework = "mocha"
	FrameworkJUnit    Framework = "junit"
	FrameworkDefault  Framework = "default"
)

// LanguageOption is a selectable language with its display label.
type LanguageOption struct {
	Value Language `json:"value"`
	Label string   `json:"label"`
}

// FrameworkOption is a selectable testing framework with its display label.
type FrameworkOption struct {
	Value Framework `json:"value"`
	Label string    `json:"label"`
}

var languageOptions = []LanguageOption{
	{Value: LanguagePython, Label: "Python"},
	{Value: LanguageJavaScript, Label: "JavaScript"},
	{Value: LanguageJava, Label: "Java"},
	{Value: LanguageCSharp, Label: "C#"},
	{Value: LanguagePHP, Label: "PHP"},
	{Value: LanguageRuby, Label: "Ruby"},
	{Value: LanguageGo, Label: "Go"},
	{Value: LanguageRust, Label: "Rust"},
	{Value: LanguageSwift, Label: "Swift"},
	{Value: LanguageTypeScript, Label: "TypeScript"},
}

var frameworkOptions = map[Language][]FrameworkOption{
	LanguagePython: {
		{Value: FrameworkPytest, Label: "pytest"},
		{Value: FrameworkUnittest, Label: "unittest"},
	},
	LanguageJavaScript: {
		{Value: FrameworkJest, Label: "Jest"},
		{Value: FrameworkMocha, Label: "Mocha"},
	},
	LanguageJava: {
		{Value: FrameworkJUnit, Label: "JUnit"},
	},
}

var defaultFrameworkOptions = []FrameworkOption{{Value: FrameworkDefault, Label: "Default"}}

// Languages returns the supported languages in display order.
func Languages() []LanguageOption {
	out := make([]LanguageOption, len(languageOptions))
	copy(out, languageOptions)
	return out
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, opt := range languageOptions {
		if opt.Value == l {
			return true
		}
	}
	return false
}

// FrameworksFor returns the testing frameworks offered for a language.
// An unselected or unknown language has no frameworks.
func FrameworksFor(l Language) []FrameworkOption {
	if !l.Valid() {
		return nil
	}
	opts, ok := frameworkOptions[l]
	if !ok {
		opts = defaultFrameworkOptions
	}
	out := make([]FrameworkOption, len(opts))
	copy(out, opts)
	return out
}

// SupportsFramework reports whether f may be chosen while l is selected.
func SupportsFramework(l Language, f Framework) bool {
	for _, opt := range FrameworksFor(l) {
		if opt.Value == f {
			return true
		}
	}
	return false
}
