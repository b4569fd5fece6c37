package normalizers

//go:generate mockgen -source=cookie_name_normalizer.go -destination=./mocks/cookie_name_normalizer_mock.go -package=mocks
type CookieNameNormalizer interface {
	// Normalize returns the canonical name for a raw cookie name. Names matching no rule are returned unchanged.
	Normalize(name string) string
}

type cookieNameNormalizer struct {
	rules []Rule
}

// NewCookieNameNormalizer builds a normalizer evaluating rules in order; the first match wins.
func NewCookieNameNormalizer(rules []Rule) CookieNameNormalizer {
	return &cookieNameNormalizer{rules: rules}
}

func (n *cookieNameNormalizer) Normalize(name string) string {
	for _, rule := range n.rules {
		if rule.Pattern.MatchString(name) {
			metricRuleMatchedTotal.WithLabelValues(rule.Name).Inc()
			return rule.Template
		}
	}
	return name
}
