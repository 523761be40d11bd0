// Package charts turns per-phase visualization payloads into renderable chart
// specs and owns the registry of live chart instances.
package charts

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
)

// Kind selects the chart geometry.
type Kind int

const (
	KindBar Kind = iota
	KindDonut
)

// Value is one labeled, colored datum of a chart.
type Value struct {
	Label string
	Value float64
	Color drawing.Color
}

// Spec is a fully derived chart description: geometry, title and colored
// series. The color encoding is part of the contract — green for
// match/success, red for mismatch/failure, orange for attacker-adjacent
// values — since it is the only human-visible signal of protocol outcome.
type Spec struct {
	Kind   Kind
	Title  string
	Values []Value
	// YMax fixes the value axis upper bound when > 0 (bar charts only).
	YMax float64
}

var (
	colorGood     = chart.ColorGreen
	colorBad      = chart.ColorRed
	colorAttacker = chart.ColorOrange
	colorNeutral  = chart.ColorBlue
)

func passFail(ok bool) drawing.Color {
	if ok {
		return colorGood
	}
	return colorBad
}

// KeyComparison builds the phase 1 chart: two key-magnitude bars, green when
// the backend reports a match, red otherwise.
func KeyComparison(p *phases.Phase1Payload) Spec {
	aliceLabel, bobLabel := "Alice Shared Key", "Bob Shared Key"
	if len(p.Viz.Labels) == 2 {
		aliceLabel, bobLabel = p.Viz.Labels[0], p.Viz.Labels[1]
	}
	col := passFail(p.Viz.KeysMatch)
	title := "Shared Key Comparison — keys match"
	if !p.Viz.KeysMatch {
		title = "Shared Key Comparison — KEYS DO NOT MATCH"
	}
	return Spec{
		Kind:  KindBar,
		Title: title,
		Values: []Value{
			{Label: aliceLabel, Value: float64(HexMagnitude(p.Viz.AliceKeyHex)), Color: col},
			{Label: bobLabel, Value: float64(HexMagnitude(p.Viz.BobKeyHex)), Color: col},
		},
	}
}

// MITMComparison builds the phase 2 chart: four key-magnitude bars. Alice and
// Bob turn red when their keys differ (the attack worked); Mallory's two
// session keys are always attacker-orange.
func MITMComparison(p *phases.Phase2Payload) Spec {
	victim := colorGood
	title := "MITM Key Comparison — attack failed"
	if p.Data.AliceBobKeysDiffer {
		victim = colorBad
		title = "MITM Key Comparison — attack succeeded"
	}
	k := p.Viz.Keys
	return Spec{
		Kind:  KindBar,
		Title: title,
		Values: []Value{
			{Label: "Alice", Value: float64(HexMagnitude(k.Alice)), Color: victim},
			{Label: "Bob", Value: float64(HexMagnitude(k.Bob)), Color: victim},
			{Label: "Mallory↔Alice", Value: float64(HexMagnitude(k.MalloryAlice)), Color: colorAttacker},
			{Label: "Mallory↔Bob", Value: float64(HexMagnitude(k.MalloryBob)), Color: colorAttacker},
		},
	}
}

// AuthenticationRing builds the phase 3 chart: a three-segment ring, one
// segment per authentication gate, green when the gate passed.
func AuthenticationRing(p *phases.Phase3Payload) Spec {
	title := "Authentication Status — secure"
	if !(p.Viz.SignaturesValid && p.Viz.KeysMatch && p.Viz.AttackPrevented) {
		title = "Authentication Status — FAILED"
	}
	return Spec{
		Kind:  KindDonut,
		Title: title,
		Values: []Value{
			{Label: "Signatures Valid", Value: 1, Color: passFail(p.Viz.SignaturesValid)},
			{Label: "Keys Match", Value: 1, Color: passFail(p.Viz.KeysMatch)},
			{Label: "Attack Prevented", Value: 1, Color: passFail(p.Viz.AttackPrevented)},
		},
	}
}

// MessageSizes builds the phase 4 chart: original vs encrypted message size
// with the AEAD overhead as reported by the backend (never recomputed here).
func MessageSizes(p *phases.Phase4Payload) Spec {
	sz := p.Viz.MessageSizes
	return Spec{
		Kind:  KindBar,
		Title: "Message Size Breakdown (bytes)",
		Values: []Value{
			{Label: "Original", Value: float64(sz.Original), Color: colorNeutral},
			{Label: "Encrypted", Value: float64(sz.Encrypted), Color: colorGood},
			{Label: "Overhead", Value: float64(sz.Overhead), Color: colorAttacker},
		},
	}
}

// RegistrationBars builds the phase 5 chart: one 0/1 bar per registered
// party, green when on-chain verification passed.
func RegistrationBars(p *phases.Phase5Payload) Spec {
	title := "Registry Verification — all verified"
	if !p.Viz.VerificationSuccess {
		title = "Registry Verification — FAILED"
	}
	s := Spec{Kind: KindBar, Title: title, YMax: 1}
	for _, reg := range p.Viz.Registrations {
		v := 0.0
		if reg.Verified {
			v = 1
		}
		s.Values = append(s.Values, Value{Label: reg.Name, Value: v, Color: passFail(reg.Verified)})
	}
	return s
}

// PreventionTally builds the phase 6 chart: prevented vs failed attack
// counts, titled with the backend's X/total tally.
func PreventionTally(a phases.AttackTally, totalAttacks int) Spec {
	if totalAttacks <= 0 {
		totalAttacks = 4
	}
	prevented := a.PreventedCount()
	failed := totalAttacks - prevented
	if failed < 0 {
		failed = 0
	}
	return Spec{
		Kind:  KindBar,
		Title: fmt.Sprintf("%d/%d Attacks Prevented", prevented, totalAttacks),
		Values: []Value{
			{Label: "Prevented", Value: float64(prevented), Color: colorGood},
			{Label: "Failed", Value: float64(failed), Color: colorBad},
		},
		YMax: float64(totalAttacks),
	}
}
