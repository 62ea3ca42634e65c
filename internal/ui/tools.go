package ui

import (
	"image/color"

	"DoodleBoard/internal/export"
	"DoodleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(d *Doodle) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			d.SelectTool(state.Pen)
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			d.SelectTool(state.Eraser)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), d.Clear),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			d.Export(export.PNG)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			d.Export(export.PDF)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), d.SaveAs),
	)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, c := range d.cfg.PaletteColors() {
		colorBox.Add(newColorSwatch(c, d.SelectColor))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(float64(d.cfg.MinWidth), float64(d.cfg.MaxWidth))
	strokeSlider.SetValue(float64(d.tools.Width()))
	strokeSlider.OnChanged = func(val float64) {
		d.SelectWidth(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
