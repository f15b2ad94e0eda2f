package internal

import "testing"

func TestMediationResultDefaults(t *testing.T) {
	var r MediationResult

	if got := r.ConclusionType(); got != "unknown" {
		t.Errorf("conclusion type = %q, want unknown", got)
	}
	if got := r.Channel(); got != "none" {
		t.Errorf("channel = %q, want none", got)
	}
}

func TestSummaryLine(t *testing.T) {
	r := MediationResult{
		Conclusion: Conclusion{
			Type:               "rule_mismatch",
			OneSentenceSummary: "the request matched the trash day rule",
		},
		InterventionPlan: InterventionPlan{
			ShouldNotify: true,
			Channel:      "speaker_voice",
		},
	}

	want := "rule_mismatch: the request matched the trash day rule | notify=true via speaker_voice"
	if got := r.SummaryLine(); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestSummaryLineZeroValue(t *testing.T) {
	var r MediationResult

	want := "unknown:  | notify=false via none"
	if got := r.SummaryLine(); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
