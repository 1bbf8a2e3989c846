package game

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/esp-overlay/internal/export"
)

const defaultExportName = "overlay.pdf"

func (g *Game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Overlay"),
		zenity.Filename(defaultExportName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PDF",
			Patterns: []string{"*.pdf"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.exportTo(filename)
}

func (g *Game) exportTo(filename string) error {
	path := export.WithPDFExt(filename)
	w, h := float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
	if err := export.WriteFile(path, w, h, g.fonts, g.scene); err != nil {
		return err
	}
	g.exported = filepath.Base(path)
	log.Printf("exported frame to %s", path)
	return nil
}
