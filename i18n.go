package jsonschema

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	i18nBundle     *i18n.I18n
	i18nBundleOnce sync.Once
	i18nBundleErr  error
)

func loadI18nBundle() (*i18n.I18n, error) {
	i18nBundleOnce.Do(func() {
		bundle := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		i18nBundleErr = bundle.LoadFS(localesFS, "locales/*.json")
		i18nBundle = bundle
	})
	return i18nBundle, i18nBundleErr
}

// GetI18n returns a Localizer for locale, backed by the embedded
// locales/*.json catalogue. The underlying bundle is loaded once and
// shared across calls.
func GetI18n(locale string) (*i18n.Localizer, error) {
	bundle, err := loadI18nBundle()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(locale), nil
}
