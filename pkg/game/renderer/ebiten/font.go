package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts into text/v2 face sources.
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("parsing regular font: %w", err)
	}
	e.sansFontSource = sans

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("parsing bold font: %w", err)
	}
	e.sansBoldFontSource = bold

	return nil
}

// fontScale derives the UI font scale from the tile size so zoom affects text.
func (e *EbitenRenderer) fontScale() float64 {
	return float64(e.tileSize) / float64(defaultTileSize)
}

// uiFace returns the regular face at the current zoom, cached between frames.
func (e *EbitenRenderer) uiFace() *text.GoTextFace {
	size := baseFontSize * e.fontScale()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// titleFace returns the bold face at the current zoom, cached between frames.
func (e *EbitenRenderer) titleFace() *text.GoTextFace {
	size := baseFontSize * 1.75 * e.fontScale()
	if e.cachedTitleFace == nil || e.cachedTitleFontSize != size {
		e.cachedTitleFontSize = size
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedTitleFace
}
