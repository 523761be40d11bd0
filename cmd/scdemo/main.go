// scdemo runs all six walkthrough phases against the demo backend in order
// and prints each rendered view as text. Exit status 1 when any phase ends in
// error. Useful for terminals and CI where the Fyne viewer cannot open.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stuchain/UoM-Cryptography-sub001/src/client"
	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
	"github.com/stuchain/UoM-Cryptography-sub001/src/views"
)

type printer struct {
	failed bool
}

func (p *printer) PhaseStatusChanged(n int, st phases.Status) {
	if st == phases.StatusRunning {
		fmt.Printf("=== Phase %d: running\n", n)
	}
}

func (p *printer) PhaseCompleted(n int, res *phases.Result) {
	v, err := views.Render(n, res)
	if err != nil {
		p.failed = true
		fmt.Printf("phase %d: %v\n", n, err)
		return
	}
	fmt.Println(v.Text())
	if v.Chart != nil {
		fmt.Printf("[chart %q: %d values]\n\n", v.Chart.Title, len(v.Chart.Values))
	}
}

func (p *printer) PhaseFailed(n int, msg string) {
	p.failed = true
	fmt.Println(views.ErrorView(n, msg).Text())
}

func main() {
	var api string
	var pause time.Duration
	var logLevel string
	flag.StringVar(&api, "api", client.DefaultBaseURL, "Backend base URL")
	flag.DurationVar(&pause, "pause", client.DefaultPause, "Pause between phases")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug|info|warn|error")
	flag.Parse()
	client.SetLogLevel(logLevel)

	p := &printer{}
	runner := client.NewRunner(client.New(api), p)
	runner.Pause = pause
	if err := runner.RunAll(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if p.failed {
		os.Exit(1)
	}
}
