// scviewer is the desktop console for the secure channel walkthrough: six
// phase cards, each runnable on its own or all in order, rendering the
// backend's results as text plus a chart per phase.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/stuchain/UoM-Cryptography-sub001/src/charts"
	"github.com/stuchain/UoM-Cryptography-sub001/src/client"
	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
	"github.com/stuchain/UoM-Cryptography-sub001/src/views"
)

const (
	chartWidth  = 760
	chartHeight = 300
)

// canvasID is the stable identifier scheme binding a phase to its chart slot.
func canvasID(n int) string { return fmt.Sprintf("chart-phase%d", n) }

// phaseCard bundles the widgets of one phase's card.
type phaseCard struct {
	num     int
	title   *widget.Label
	status  *widget.Label
	loading *widget.ProgressBarInfinite
	content *widget.Label
	chart   *canvas.Image
	run     *widget.Button
	box     fyne.CanvasObject
}

type uiState struct {
	app      fyne.App
	window   fyne.Window
	runner   *client.Runner
	registry *charts.Registry
	cards    map[int]*phaseCard
}

// chartInstance is one live chart bound to a card's canvas image. Dispose
// blanks the slot; the registry guarantees it runs before a replacement is
// constructed.
type chartInstance struct {
	img *canvas.Image
}

func (ci *chartInstance) Dispose() {
	fyne.DoAndWait(func() {
		ci.img.Image = charts.Blank(chartWidth, chartHeight)
		ci.img.Refresh()
	})
}

// chartFactory renders a spec to an image and installs it into the matching
// card. Render errors degrade to the blank placeholder so the UI still moves.
func (s *uiState) chartFactory(id string, spec charts.Spec) (charts.Instance, error) {
	var card *phaseCard
	for _, c := range s.cards {
		if canvasID(c.num) == id {
			card = c
			break
		}
	}
	if card == nil {
		return nil, fmt.Errorf("no chart slot %q", id)
	}
	img, err := charts.RenderImage(spec, chartWidth, chartHeight)
	if err != nil {
		client.Errorf("chart %s: %v", id, err)
		img = charts.Blank(chartWidth, chartHeight)
	}
	img = charts.DrawCaption(img, "rendered "+time.Now().Format("15:04:05"))
	inst := &chartInstance{img: card.chart}
	fyne.DoAndWait(func() {
		card.chart.Image = img
		card.chart.Refresh()
	})
	return inst, nil
}

// Listener implementation. The runner invokes these off the UI thread, so
// widget mutations are marshaled through fyne.DoAndWait; returning only after
// the UI settled is what makes RunAll's "render before next phase" ordering
// hold in the viewer too.

func (s *uiState) PhaseStatusChanged(n int, st phases.Status) {
	card := s.cards[n]
	if card == nil {
		return
	}
	fyne.DoAndWait(func() {
		card.status.SetText(st.String())
		switch st {
		case phases.StatusRunning:
			card.status.Importance = widget.HighImportance
			card.title.Importance = widget.HighImportance
			card.loading.Show()
			card.loading.Start()
		case phases.StatusSuccess:
			card.status.Importance = widget.SuccessImportance
			card.title.Importance = widget.MediumImportance
			card.loading.Stop()
			card.loading.Hide()
		case phases.StatusError:
			card.status.Importance = widget.DangerImportance
			card.title.Importance = widget.MediumImportance
			card.loading.Stop()
			card.loading.Hide()
		default:
			card.status.Importance = widget.MediumImportance
			card.loading.Stop()
			card.loading.Hide()
		}
		card.status.Refresh()
		card.title.Refresh()
	})
}

func (s *uiState) PhaseCompleted(n int, res *phases.Result) {
	v, err := views.Render(n, res)
	if err != nil {
		// Schema mismatch is an error outcome like any other decode failure.
		client.Errorf("phase %d render: %v", n, err)
		s.PhaseFailed(n, err.Error())
		return
	}
	card := s.cards[n]
	if card == nil {
		return
	}
	fyne.DoAndWait(func() {
		card.content.SetText(v.Text())
	})
	if v.Chart != nil {
		if err := s.registry.Render(canvasID(n), *v.Chart); err != nil {
			client.Errorf("phase %d chart: %v", n, err)
		}
	}
}

func (s *uiState) PhaseFailed(n int, msg string) {
	card := s.cards[n]
	if card == nil {
		return
	}
	text := views.ErrorView(n, msg).Text()
	fyne.DoAndWait(func() {
		card.status.SetText(phases.StatusError.String())
		card.status.Importance = widget.DangerImportance
		card.status.Refresh()
		card.content.SetText(text)
	})
}

func newPhaseCard(s *uiState, ph phases.Phase) *phaseCard {
	card := &phaseCard{num: ph.Num}
	card.title = widget.NewLabelWithStyle(
		fmt.Sprintf("Phase %d — %s", ph.Num, ph.Title),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	desc := widget.NewLabel(ph.ShortDescription)
	desc.Wrapping = fyne.TextWrapWord
	card.status = widget.NewLabel(phases.StatusPending.String())
	card.loading = widget.NewProgressBarInfinite()
	card.loading.Stop()
	card.loading.Hide()
	card.content = widget.NewLabel("")
	card.content.Wrapping = fyne.TextWrapWord
	card.chart = canvas.NewImageFromImage(charts.Blank(chartWidth, chartHeight))
	card.chart.FillMode = canvas.ImageFillContain
	card.chart.SetMinSize(fyne.NewSize(chartWidth, chartHeight))
	card.run = widget.NewButton("Run", func() {
		go s.runner.RunPhase(context.Background(), ph.Num)
	})

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(card.status, card.run), card.title)
	card.box = container.NewVBox(
		header,
		desc,
		card.loading,
		card.content,
		card.chart,
		widget.NewSeparator(),
	)
	return card
}

func main() {
	var api string
	var pause time.Duration
	var logLevel string
	flag.StringVar(&api, "api", client.DefaultBaseURL, "Backend base URL")
	flag.DurationVar(&pause, "pause", client.DefaultPause, "Pause between phases in Run All")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug|info|warn|error")
	flag.Parse()
	client.SetLogLevel(logLevel)

	a := app.NewWithID("com.securechan.scviewer")
	w := a.NewWindow("Secure Channel Demo")
	w.Resize(fyne.NewSize(900, 820))

	state := &uiState{
		app:    a,
		window: w,
		cards:  make(map[int]*phaseCard),
	}
	state.registry = charts.NewRegistry(state.chartFactory)
	state.runner = client.NewRunner(client.New(api), state)
	state.runner.Pause = pause

	cardBoxes := make([]fyne.CanvasObject, 0, phases.Count)
	for _, ph := range phases.All() {
		card := newPhaseCard(state, ph)
		state.cards[ph.Num] = card
		cardBoxes = append(cardBoxes, card.box)
	}

	runAll := widget.NewButton("Run All Phases", func() {
		go func() {
			if err := state.runner.RunAll(context.Background()); err != nil {
				client.Errorf("run all: %v", err)
			}
		}()
	})
	top := container.NewHBox(
		runAll,
		widget.NewLabel("Backend: "+strings.TrimRight(api, "/")),
	)

	scroll := container.NewVScroll(container.NewVBox(cardBoxes...))
	w.SetContent(container.NewBorder(top, nil, nil, nil, scroll))
	w.ShowAndRun()
}
