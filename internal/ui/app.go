package ui

import (
	"fmt"
	"image/color"
	"log"
	"net/url"

	"DoodleBoard/internal/config"
	"DoodleBoard/internal/export"
	"DoodleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const appID = "io.doodleboard.app"

// Doodle wires the board, the tool state and the exporter to one window.
type Doodle struct {
	app      fyne.App
	win      fyne.Window
	cfg      config.Config
	recorder *state.Recorder
	tools    *state.ToolState
	board    *BoardWidget
	exporter *export.Exporter
	status   *widget.Label

	// spawn runs exports off the UI goroutine.
	spawn func(func())
}

// NewDoodle builds the window content. cfg must already be validated.
func NewDoodle(a fyne.App, cfg config.Config, sink export.Sink) *Doodle {
	recorder := state.NewRecorder(cfg.BackgroundColor())
	tools := state.NewToolState(cfg.PenColor(), cfg.DefaultWidth, cfg.MinWidth, cfg.MaxWidth)

	d := &Doodle{
		app:      a,
		win:      a.NewWindow(cfg.Title),
		cfg:      cfg,
		recorder: recorder,
		tools:    tools,
		board:    NewBoardWidget(recorder, tools),
		exporter: export.NewExporter(sink),
		status:   widget.NewLabel("Ready"),
		spawn:    func(f func()) { go f() },
	}

	content := container.NewBorder(NewToolbar(d), d.status, nil, nil, d.board)
	d.win.SetContent(content)
	d.win.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	return d
}

// RunApp opens the board and blocks until the window is closed.
func RunApp(cfg config.Config) error {
	dir, err := cfg.ExportPath()
	if err != nil {
		return fmt.Errorf("export dir: %w", err)
	}
	d := NewDoodle(app.NewWithID(appID), cfg, export.DirSink{Dir: dir})
	log.Printf("Doodle session %s, exporting to %s", state.SessionID(), dir)
	d.win.ShowAndRun()
	return nil
}

func (d *Doodle) SetStatus(text string) {
	d.status.SetText(text)
}

func (d *Doodle) SelectTool(k state.ToolKind) {
	d.tools.SelectTool(k)
	d.SetStatus(fmt.Sprintf("Tool: %s", k))
}

func (d *Doodle) SelectColor(c color.NRGBA) {
	d.tools.SelectColor(c)
}

func (d *Doodle) SelectWidth(w float32) {
	if err := d.tools.SelectWidth(w); err != nil {
		log.Printf("[BOARD] %v", err)
	}
}

// Clear wipes the board; the redraw follows from the recorder.
func (d *Doodle) Clear() {
	d.recorder.Clear()
	d.SetStatus("Cleared")
}

// Export saves the finished strokes in the background. A stroke still being
// drawn is not included.
func (d *Doodle) Export(f export.Format) {
	w, h := d.board.CanvasSize()
	if w <= 0 || h <= 0 {
		d.SetStatus("Canvas is not ready yet, nothing to save")
		return
	}
	strokes := d.recorder.Snapshot()
	bg := d.recorder.Background()
	d.SetStatus("Saving...")

	d.spawn(func() {
		u, err := d.exporter.Export(strokes, w, h, bg, f)
		fyne.Do(func() {
			if err != nil {
				d.SetStatus("Save failed")
				dialog.ShowError(err, d.win)
				return
			}
			d.SetStatus("Saved " + u.Name())
			d.offerView(u)
		})
	})
}

func (d *Doodle) offerView(u fyne.URI) {
	dialog.ShowConfirm("Saved", fmt.Sprintf("Saved %s. Open it?", u.Name()), func(open bool) {
		if !open {
			return
		}
		target, err := url.Parse(u.String())
		if err == nil {
			err = d.app.OpenURL(target)
		}
		if err != nil {
			log.Printf("[EXPORT] Could not open %s: %v", u, err)
		}
	}, d.win)
}

// SaveAs writes a PNG to a location picked in a file dialog.
func (d *Doodle) SaveAs() {
	w, h := d.board.CanvasSize()
	if w <= 0 || h <= 0 {
		d.SetStatus("Canvas is not ready yet, nothing to save")
		return
	}
	strokes := d.recorder.Snapshot()

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.win)
			return
		}
		if writer == nil {
			return
		}
		if err := d.saveTo(writer, strokes, w, h); err != nil {
			d.SetStatus("Save failed")
			dialog.ShowError(err, d.win)
			return
		}
		d.SetStatus("Saved " + writer.URI().Name())
	}, d.win)
	fd.SetFileName(export.FileName(d.exporter.Now(), export.PNG))
	fd.Show()
}

func (d *Doodle) saveTo(writer fyne.URIWriteCloser, strokes []state.Stroke, w, h int) error {
	data, err := export.Render(strokes, w, h, d.recorder.Background(), export.PNG)
	if err != nil {
		_ = writer.Close()
		return err
	}
	log.Printf("[EXPORT] Writing %d strokes to %s", len(strokes), writer.URI())
	return export.SaveTo(writer, data)
}
