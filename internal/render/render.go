// Package render rasterizes a saved deck into fixed-resolution slide
// bitmaps and pushes them to the remote asset store.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"lecturecast/internal/deck"
	"lecturecast/internal/storage"
	"lecturecast/internal/workspace"
)

const (
	slideWidth  = 1280
	slideHeight = 720

	titleFontSize = 36
	bodyFontSize  = 24

	titleX       = 50
	bodyX        = 70
	topMargin    = 50
	titleAdvance = 80
	lineAdvance  = 40
)

// Rasterizer draws slide bitmaps with a preferred font file, falling
// back to the embedded Go Regular face when the file is unavailable.
type Rasterizer struct {
	uploader  storage.Uploader
	titleFace font.Face
	bodyFace  font.Face
}

type Result struct {
	// LocalPaths and URLs are index-aligned with the deck's slide
	// order. A URL equals its local path when the upload failed.
	LocalPaths []string
	URLs       []string
}

func New(uploader storage.Uploader, fontPath string) (*Rasterizer, error) {
	fnt, err := loadFont(fontPath)
	if err != nil {
		return nil, err
	}

	return &Rasterizer{
		uploader:  uploader,
		titleFace: truetype.NewFace(fnt, &truetype.Options{Size: titleFontSize}),
		bodyFace:  truetype.NewFace(fnt, &truetype.Options{Size: bodyFontSize}),
	}, nil
}

func loadFont(fontPath string) (*truetype.Font, error) {
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err == nil {
			if fnt, parseErr := truetype.Parse(data); parseErr == nil {
				return fnt, nil
			}
			slog.Warn("Preferred font unusable, falling back to embedded font", "path", fontPath)
		} else {
			slog.Warn("Preferred font not found, falling back to embedded font", "path", fontPath)
		}
	}

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return fnt, nil
}

// Rasterize renders one 1280x720 PNG per slide, in deck order, at
// ordinal-named paths, then uploads each image. An upload failure
// degrades that image's URL to its local path and never aborts the
// stage.
func (r *Rasterizer) Rasterize(ctx context.Context, deckPath string, ws *workspace.Workspace) (*Result, error) {
	d, err := deck.Load(deckPath)
	if err != nil {
		return nil, fmt.Errorf("open presentation: %w", err)
	}

	localPaths := make([]string, 0, len(d.Slides))
	for i, slide := range d.Slides {
		imgPath := ws.SlideImagePath(i + 1)
		if err := r.renderSlide(slide, imgPath); err != nil {
			return nil, fmt.Errorf("render slide %d: %w", i+1, err)
		}
		localPaths = append(localPaths, imgPath)
	}

	urls := r.uploadAll(ctx, localPaths)

	return &Result{LocalPaths: localPaths, URLs: urls}, nil
}

func (r *Rasterizer) renderSlide(slide deck.Slide, imgPath string) error {
	dc := gg.NewContext(slideWidth, slideHeight)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	y := float64(topMargin)

	if slide.Title != "" {
		dc.SetFontFace(r.titleFace)
		dc.SetRGB255(0, 0, 0)
		dc.DrawString(slide.Title, titleX, y+titleFontSize)
		y += titleAdvance
	}

	dc.SetFontFace(r.bodyFace)
	dc.SetRGB255(50, 50, 50)
	for _, line := range slide.Bullets {
		if line == "" {
			continue
		}
		dc.DrawString(line, bodyX, y+bodyFontSize)
		y += lineAdvance
	}

	if err := dc.SavePNG(imgPath); err != nil {
		return fmt.Errorf("save slide image: %w", err)
	}
	return nil
}

func (r *Rasterizer) uploadAll(ctx context.Context, localPaths []string) []string {
	urls := make([]string, len(localPaths))

	for i, path := range localPaths {
		urls[i] = path
		if r.uploader == nil {
			continue
		}
		url, err := r.uploader.Upload(ctx, path, "image")
		if err != nil {
			slog.Warn("Slide image upload failed, keeping local path", "path", path, "error", err)
			continue
		}
		urls[i] = url
	}

	return urls
}
