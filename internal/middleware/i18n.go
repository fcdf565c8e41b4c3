// internal/middleware/i18n.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// supportedLocales pairs matcher tags with locale file names, default first.
var supportedLocales = []struct {
	tag    language.Tag
	locale string
}{
	{language.English, "en"},
	{language.TraditionalChinese, "zh_TW"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, l := range supportedLocales {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

// I18nMiddleware picks the response locale from ?lang= or Accept-Language.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", ResolveLocale(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func ResolveLocale(preferred, acceptLanguage string) string {
	var tags []language.Tag
	if preferred != "" {
		if tag, err := language.Parse(preferred); err == nil {
			tags = append(tags, tag)
		}
	}
	if acceptLanguage != "" {
		if parsed, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			tags = append(tags, parsed...)
		}
	}
	if len(tags) == 0 {
		return supportedLocales[0].locale
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return supportedLocales[0].locale
	}
	return supportedLocales[index].locale
}
