package views

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
)

func phase1Result(t *testing.T, match bool) *phases.Result {
	t.Helper()
	key := "deadbeef0011"
	bobKey := key
	if !match {
		bobKey = "feedface2233"
	}
	res := &phases.Result{
		Success: true,
		Phase:   1,
		Title:   "Basic Diffie-Hellman Key Exchange",
		Summary: "Alice and Bob successfully derived the same shared key.",
	}
	data := map[string]any{
		"alice":      map[string]any{"public_key": "aa", "shared_key": key},
		"bob":        map[string]any{"public_key": "bb", "shared_key": bobKey},
		"keys_match": match,
	}
	viz := map[string]any{
		"labels":        []string{"Alice Shared Key", "Bob Shared Key"},
		"keys_match":    match,
		"alice_key_hex": key,
		"bob_key_hex":   bobKey,
	}
	res.Data = mustJSON(t, data)
	res.Visualization = mustJSON(t, viz)
	return res
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func TestRenderPhase1Match(t *testing.T) {
	v, err := Render(1, phase1Result(t, true))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !v.SummaryOK {
		t.Fatalf("matching keys must render a non-error summary")
	}
	if v.Chart == nil {
		t.Fatalf("successful phase must carry a chart")
	}
	matches := 0
	for _, sec := range v.Sections {
		for _, ln := range sec.Lines {
			if ln.Label == "Result" && ln.Value == "match" {
				matches++
			}
		}
	}
	if matches != 2 {
		t.Fatalf("both parties must be marked match, got %d", matches)
	}
}

func TestRenderPhase1Mismatch(t *testing.T) {
	v, err := Render(1, phase1Result(t, false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.SummaryOK {
		t.Fatalf("mismatching keys must render the error banner")
	}
	text := v.Text()
	if !strings.Contains(text, "MISMATCH") {
		t.Fatalf("mismatch marker missing from:\n%s", text)
	}
}

func TestRenderPhase6Tally(t *testing.T) {
	res := &phases.Result{Success: true, Phase: 6, Summary: "Blockchain security working! 3/4 attacks prevented."}
	res.Data = mustJSON(t, map[string]any{
		"attacks": map[string]any{
			"attack1_prevented": true,
			"attack2_prevented": true,
			"attack3_prevented": true,
			"attack4_prevented": false,
			"total_prevented":   3,
		},
	})
	res.Visualization = mustJSON(t, map[string]any{"attacks_prevented": 3, "total_attacks": 4})

	v, err := Render(6, res)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.SummaryOK {
		t.Fatalf("3 of 4 prevented must be error-styled")
	}
	if !strings.Contains(v.Text(), "3/4") {
		t.Fatalf("tally 3/4 missing from:\n%s", v.Text())
	}
	if v.Chart == nil {
		t.Fatalf("expected prevention chart")
	}
	if v.Chart.Values[0].Value != 3 || v.Chart.Values[1].Value != 1 {
		t.Fatalf("chart bars = [%v, %v], want [3, 1]",
			v.Chart.Values[0].Value, v.Chart.Values[1].Value)
	}
}

func TestRenderPhase6MissingAttacks(t *testing.T) {
	res := &phases.Result{Success: true, Phase: 6}
	v, err := Render(6, res)
	if err != nil {
		t.Fatalf("missing attacks block must render with zero defaults: %v", err)
	}
	if !strings.Contains(v.Text(), "0/4") {
		t.Fatalf("expected 0/4 tally, got:\n%s", v.Text())
	}
	if v.SummaryOK {
		t.Fatalf("zero prevented must not read as success")
	}
}

func TestRenderFailureSuppressesChartAllPhases(t *testing.T) {
	for n := 1; n <= phases.Count; n++ {
		res := &phases.Result{Success: false, Error: "backend exploded"}
		v, err := Render(n, res)
		if err != nil {
			t.Fatalf("phase %d: %v", n, err)
		}
		if v.Chart != nil {
			t.Fatalf("phase %d: failed result must not carry a chart", n)
		}
		if v.SummaryOK {
			t.Fatalf("phase %d: failure must be error-styled", n)
		}
		if !strings.Contains(v.Summary, "backend exploded") {
			t.Fatalf("phase %d: error text lost: %q", n, v.Summary)
		}
	}
}

func TestRenderFailureDefaultsErrorText(t *testing.T) {
	v, err := Render(2, &phases.Result{Success: false})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.Summary != "Unknown error" {
		t.Fatalf("missing error field must default, got %q", v.Summary)
	}
}

func TestRenderUnknownPhase(t *testing.T) {
	if _, err := Render(7, &phases.Result{Success: true}); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
}

func TestRenderPhase4OverheadDisplayedVerbatim(t *testing.T) {
	res := &phases.Result{Success: true, Phase: 4}
	res.Data = mustJSON(t, map[string]any{
		"message_original":   "Hello Bob! This is a secret message.",
		"message_length":     36,
		"ciphertext_length":  52,
		"decryption_success": true,
		"tampering_detected": true,
	})
	res.Visualization = mustJSON(t, map[string]any{
		"message_sizes": map[string]any{"original": 36, "encrypted": 52, "overhead": 16},
	})
	v, err := Render(4, res)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !v.SummaryOK {
		t.Fatalf("working channel must be success-styled")
	}
	if !strings.Contains(v.Text(), "16 bytes") {
		t.Fatalf("backend-provided overhead missing:\n%s", v.Text())
	}
	if v.Chart == nil || len(v.Chart.Values) != 3 {
		t.Fatalf("expected 3-bar size chart, got %+v", v.Chart)
	}
}

func TestTextHumanizesStepDetails(t *testing.T) {
	res := phase1Result(t, true)
	res.Steps = []phases.Step{{
		Step:        1,
		Title:       "Alice generates X25519 keypair",
		Description: "Alice creates a private key",
		Details:     map[string]any{"private_key_size": "32 bytes"},
	}}
	v, err := Render(1, res)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := v.Text()
	if !strings.Contains(text, "Private Key Size: 32 bytes") {
		t.Fatalf("step details not humanized:\n%s", text)
	}
}

func TestRenderPhase5PerPartyVerification(t *testing.T) {
	res := &phases.Result{Success: true, Phase: 5, Summary: "Blockchain verification successful!"}
	res.Data = mustJSON(t, map[string]any{
		"blockchain": map[string]any{"network": "Solana (Devnet)", "registry_program": "KeyRegistry111"},
		"alice":      map[string]any{"address": "Alice111", "registered": true, "verified": true},
		"bob":        map[string]any{"address": "Bob111", "registered": true, "verified": false},
	})
	res.Visualization = mustJSON(t, map[string]any{
		"registrations": []map[string]any{
			{"name": "Alice", "status": "registered", "verified": true},
			{"name": "Bob", "status": "registered", "verified": false},
		},
		"verification_success": false,
	})
	v, err := Render(5, res)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.SummaryOK {
		t.Fatalf("one unverified party must fail the banner")
	}
	text := v.Text()
	if !strings.Contains(text, "Solana (Devnet)") || !strings.Contains(text, "KeyRegistry111") {
		t.Fatalf("blockchain info missing:\n%s", text)
	}
	if v.Chart == nil || len(v.Chart.Values) != 2 {
		t.Fatalf("expected 2 registration bars, got %+v", v.Chart)
	}
}
