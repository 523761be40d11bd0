// Package views maps decoded phase results onto displayable views: labeled
// text sections, a pass/fail summary banner, the narrated steps, and at most
// one chart spec per phase.
package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stuchain/UoM-Cryptography-sub001/src/charts"
	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
)

// Line is one "Label: Value" row of a section.
type Line struct {
	Label string
	Value string
}

// Section groups related lines under a heading.
type Section struct {
	Heading string
	Lines   []Line
}

// View is the rendered output for one phase result. Chart is nil when the
// phase failed or carries nothing to plot; SummaryOK selects the banner style
// (success vs error treatment).
type View struct {
	Title     string
	Summary   string
	SummaryOK bool
	Sections  []Section
	Steps     []phases.Step
	Chart     *charts.Spec
}

// Renderer renders one phase's result variant.
type Renderer interface {
	Render(res *phases.Result) (View, error)
}

// rendererFunc adapts a typed decode+render pair into a Renderer, so each
// table entry is statically bound to its payload variant.
type rendererFunc[P any] struct {
	decode func(*phases.Result) (P, error)
	render func(*phases.Result, P) View
}

func (r rendererFunc[P]) Render(res *phases.Result) (View, error) {
	p, err := r.decode(res)
	if err != nil {
		return View{}, err
	}
	return r.render(res, p), nil
}

// table routes a phase number to its renderer. Adding a phase means adding
// one entry here.
var table = map[int]Renderer{
	1: rendererFunc[*phases.Phase1Payload]{(*phases.Result).Phase1, renderPhase1},
	2: rendererFunc[*phases.Phase2Payload]{(*phases.Result).Phase2, renderPhase2},
	3: rendererFunc[*phases.Phase3Payload]{(*phases.Result).Phase3, renderPhase3},
	4: rendererFunc[*phases.Phase4Payload]{(*phases.Result).Phase4, renderPhase4},
	5: rendererFunc[*phases.Phase5Payload]{(*phases.Result).Phase5, renderPhase5},
	6: rendererFunc[*phases.Phase6Payload]{(*phases.Result).Phase6, renderPhase6},
}

// Render produces the view for phase n from res. A result with success=false
// renders as an error view for every phase: only the error text, no chart.
// Decode failures surface as errors so the caller can treat them like any
// other failure at the phase boundary.
func Render(n int, res *phases.Result) (View, error) {
	if !res.Success {
		return ErrorView(n, res.Error), nil
	}
	r, ok := table[n]
	if !ok {
		return View{}, fmt.Errorf("no renderer for phase %d", n)
	}
	return r.Render(res)
}

// ErrorView is the uniform failed-phase view: error-styled summary, no chart.
func ErrorView(n int, msg string) View {
	if strings.TrimSpace(msg) == "" {
		msg = "Unknown error"
	}
	title := fmt.Sprintf("Phase %d", n)
	if ph, ok := phases.ByNum(n); ok {
		title = ph.Title
	}
	return View{Title: title, Summary: msg, SummaryOK: false}
}

func titleFor(n int, res *phases.Result) string {
	if res.Title != "" {
		return res.Title
	}
	if ph, ok := phases.ByNum(n); ok {
		return ph.Title
	}
	return fmt.Sprintf("Phase %d", n)
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// shortKey truncates long hex material for display.
func shortKey(s string) string {
	if len(s) <= 32 {
		return s
	}
	return s[:32] + "..."
}

// detailLines flattens a step's details map into sorted, humanized lines.
func detailLines(details map[string]any) []Line {
	if len(details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Line, 0, len(keys))
	for _, k := range keys {
		out = append(out, Line{Label: phases.HumanizeKey(k), Value: fmt.Sprint(details[k])})
	}
	return out
}

// Text renders the view as plain text, shared by the headless demo runner
// and the viewer's content labels.
func (v View) Text() string {
	var b strings.Builder
	b.WriteString(v.Title)
	b.WriteString("\n")
	if v.Summary != "" {
		if v.SummaryOK {
			fmt.Fprintf(&b, "OK: %s\n", v.Summary)
		} else {
			fmt.Fprintf(&b, "ERROR: %s\n", v.Summary)
		}
	}
	for _, sec := range v.Sections {
		fmt.Fprintf(&b, "\n%s\n", sec.Heading)
		for _, ln := range sec.Lines {
			fmt.Fprintf(&b, "  %s: %s\n", ln.Label, ln.Value)
		}
	}
	if len(v.Steps) > 0 {
		b.WriteString("\nSteps\n")
		for _, st := range v.Steps {
			fmt.Fprintf(&b, "  %d. %s — %s\n", st.Step, st.Title, st.Description)
			for _, ln := range detailLines(st.Details) {
				fmt.Fprintf(&b, "     %s: %s\n", ln.Label, ln.Value)
			}
		}
	}
	return b.String()
}
