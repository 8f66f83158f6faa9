// Package filterrewrite provides a rule-driven header rewriting filter.
// Rules are declared in configuration and applied to matching responses,
// e.g. for defaulting Cache-Control on origins that do not send one.
package filterrewrite

import (
	"github.com/rs/zerolog/log"

	"github.com/respctx/respctx"
)

type Rules []Rule

type Rule struct {
	// Status the response must have for the rule to apply.
	// Zero matches any successful (2xx) response.
	Status int `yaml:"status"`
	// Default Cache-Control to set if the response has none.
	Default string `yaml:"default"`
	// Override Cache-Control to set unconditionally.
	Override string `yaml:"override"`
	// Headers to set on the response.
	Headers map[string]string `yaml:"headers"`
}

// Filter applies the first matching rule to the response.
func (r Rules) Filter(rc *respctx.ResponseContext) error {
	if rule := r.find(rc); rule != nil {
		applyRule(*rule, rc)
	}
	return nil
}

func applyRule(rule Rule, rc *respctx.ResponseContext) {
	if rule.Override != "" {
		log.Trace().Msg("Overriding Cache-Control header")
		rc.Headers().Set("Cache-Control", rule.Override)
	} else if rule.Default != "" && rc.Headers().Get("Cache-Control") == "" {
		log.Trace().Msg("Applying default Cache-Control header")
		rc.Headers().Set("Cache-Control", rule.Default)
	}
	for name, value := range rule.Headers {
		log.Trace().Msgf("Setting header %s", name)
		rc.Headers().Set(name, value)
	}
}

func (r Rules) find(rc *respctx.ResponseContext) *Rule {
	for _, rule := range r {
		if rule.Status == 0 && respctx.FamilyOf(rc.Status()) != respctx.Successful {
			continue
		}
		if rule.Status != 0 && rule.Status != rc.Status() {
			continue
		}
		return &rule
	}
	return nil
}
