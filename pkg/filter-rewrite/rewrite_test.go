package filterrewrite

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/respctx/respctx"
)

func TestDefaultCacheControl(t *testing.T) {
	rules := Rules{{Default: "max-age=60"}}
	rc := respctx.New()
	rc.SetStatus(200)
	if err := rules.Filter(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if rc.Headers().Get("Cache-Control") != "max-age=60" {
		t.Fatalf("Cache-Control: %s", rc.Headers().Get("Cache-Control"))
	}
}

func TestDefaultDoesNotOverwrite(t *testing.T) {
	rules := Rules{{Default: "max-age=60"}}
	rc := respctx.New()
	rc.SetStatus(200)
	rc.Headers().Set("Cache-Control", "no-store")
	rules.Filter(rc)
	if rc.Headers().Get("Cache-Control") != "no-store" {
		t.Fatalf("Cache-Control: %s", rc.Headers().Get("Cache-Control"))
	}
}

func TestOverrideWins(t *testing.T) {
	rules := Rules{{Override: "no-store"}}
	rc := respctx.New()
	rc.SetStatus(200)
	rc.Headers().Set("Cache-Control", "max-age=60")
	rules.Filter(rc)
	if rc.Headers().Get("Cache-Control") != "no-store" {
		t.Fatalf("Cache-Control: %s", rc.Headers().Get("Cache-Control"))
	}
}

func TestStatusMatching(t *testing.T) {
	rules := Rules{{Status: 404, Headers: map[string]string{"X-Missing": "true"}}}

	rc := respctx.New()
	rc.SetStatus(200)
	rules.Filter(rc)
	if rc.Headers().Get("X-Missing") != "" {
		t.Fatal("Rule applied to wrong status")
	}

	rc.SetStatus(404)
	rules.Filter(rc)
	if rc.Headers().Get("X-Missing") != "true" {
		t.Fatal("Rule not applied")
	}
}

func TestZeroStatusMatchesSuccessOnly(t *testing.T) {
	rules := Rules{{Headers: map[string]string{"X-Touched": "true"}}}

	rc := respctx.New()
	rc.SetStatus(500)
	rules.Filter(rc)
	if rc.Headers().Get("X-Touched") != "" {
		t.Fatal("Rule applied to server error")
	}

	rc.SetStatus(204)
	rules.Filter(rc)
	if rc.Headers().Get("X-Touched") != "true" {
		t.Fatal("Rule not applied to success")
	}
}

func TestRulesFromYAML(t *testing.T) {
	config := `
- status: 200
  default: "max-age=30"
  headers:
    X-Inspected: "true"
`
	var rules Rules
	if err := yaml.Unmarshal([]byte(config), &rules); err != nil {
		t.Fatalf("Error: %v", err)
	}
	rc := respctx.New()
	rc.SetStatus(200)
	rules.Filter(rc)
	if rc.Headers().Get("X-Inspected") != "true" {
		t.Fatal("YAML rule not applied")
	}
	if rc.Headers().Get("Cache-Control") != "max-age=30" {
		t.Fatal("YAML default not applied")
	}
}
