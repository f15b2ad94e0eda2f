package internal

import "testing"

func TestDecodeLooseJSON(t *testing.T) {
	type payload struct {
		Level string `json:"level"`
	}

	tests := []struct {
		name      string
		text      string
		wantOK    bool
		wantLevel string
	}{
		{"strict object", `{"level":"high"}`, true, "high"},
		{"surrounding prose", "Here you go:\n{\"level\":\"rising\"}\nHope that helps!", true, "rising"},
		{"markdown fence", "```json\n{\"level\":\"low\"}\n```", true, "low"},
		{"empty", "", false, ""},
		{"no object", "sorry, I cannot do that", false, ""},
		{"broken braces", "{level: high", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			ok := DecodeLooseJSON(tt.text, &p)
			if ok != tt.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tt.wantOK)
			}
			if p.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", p.Level, tt.wantLevel)
			}
		})
	}
}

func TestParseConstitutionRules(t *testing.T) {
	rules := ParseConstitutionRules(DefaultConstitution)
	if len(rules) != 5 {
		t.Fatalf("rules = %d, want 5", len(rules))
	}
	for i, rule := range rules {
		if rule == "" {
			t.Errorf("rule %d is empty", i)
		}
	}
}

func TestParseConstitutionRulesIgnoresProse(t *testing.T) {
	text := "# Heading\nsome prose\n- first rule\n  - indented rule\n-not a rule\n- \n"
	rules := ParseConstitutionRules(text)

	want := []string{"first rule", "indented rule"}
	if len(rules) != len(want) {
		t.Fatalf("rules = %v, want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rule %d = %q, want %q", i, rules[i], want[i])
		}
	}
}
