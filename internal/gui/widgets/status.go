package widgets

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	positionLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	positionLabel := widget.NewLabel("Ln 1, Col 1")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		positionLabel,
	)

	return &StatusBar{
		container:     mainContainer,
		statusLabel:   statusLabel,
		positionLabel: positionLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) Status() string { return sb.statusLabel.Text }

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetPosition shows a zero-based line and column as one-based.
func (sb *StatusBar) SetPosition(line, col int) {
	sb.positionLabel.SetText(fmt.Sprintf("Ln %d, Col %d", line+1, col+1))
}

func (sb *StatusBar) Position() string { return sb.positionLabel.Text }
