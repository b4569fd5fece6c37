package normalizers

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule maps cookie names matching Pattern to Template. Pattern only has to
// match at the start of the name.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string
}

// ruleFile is the on-disk form of a rule table.
//
//	rules:
//	  - name: optimizely
//	    pattern: 'optimizelyEndUserId_\d+$'
//	    template: 'optimizelyEndUserId_{id}'
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// NewRule compiles pattern so that it is anchored at the start of the cookie name.
func NewRule(name, pattern, template string) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rule %q: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Template: template}, nil
}

func mustRule(name, pattern, template string) Rule {
	rule, err := NewRule(name, pattern, template)
	if err != nil {
		panic(err)
	}
	return rule
}

// DefaultRules returns the built-in table of volatile third-party cookie names.
// Not every deployment sees every one of these.
func DefaultRules() []Rule {
	return []Rule{
		mustRule("google_ads", `_gac_UA-(\d|-)+$`, "_gac_UA-{id}"),
		mustRule("hotjar_session", `_hjSession_\d+$`, "_hjSession_{id}"),
		mustRule("hotjar_session_user", `_hjSessionUser_\d+$`, "_hjSessionUser_{id}"),
		mustRule("braze_device", `ab\.storage\.deviceId.*$`, "ab.storage.deviceId.{id}"),
		mustRule("braze_session", `ab\.storage\.sessionId.*$`, "ab.storage.sessionId.{id}"),
		mustRule("braze_user", `ab\.storage\.userId.*$`, "ab.storage.userId.{id}"),
		mustRule("adobe_visitor", `AMCV_\w+%40AdobeOrg$`, "AMCV_{id}@AdobeOrg"),
		mustRule("amplitude", `amplitude_id_.*$`, "amplitude_id_{id}"),
		mustRule("mixpanel", `mp_\w+_mixpanel$`, "mp_{id}_mixpanel"),
	}
}

// LoadRules reads a YAML rule table from path.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		if spec.Pattern == "" || spec.Template == "" {
			return nil, fmt.Errorf("rule %d (%q): pattern and template are required", i, spec.Name)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("rule_%d", i)
		}
		rule, err := NewRule(name, spec.Pattern, spec.Template)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
