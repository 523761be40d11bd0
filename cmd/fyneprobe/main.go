// fyneprobe opens a minimal window and closes it after a few seconds. Run it
// before scviewer to check that the GUI toolkit works on the current display
// (remote X, Wayland, headless CI) without dragging in the whole console.
package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
)

func main() {
	fmt.Println("[fyneprobe] starting minimal Fyne app")
	a := app.New()
	w := a.NewWindow("Secure Channel Demo — display probe")
	w.SetContent(widget.NewLabel("Display works — window closes in 5s"))
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[fyneprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[fyneprobe] exited cleanly")
}
