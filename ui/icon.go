package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/draw"

	// Extra decoders for the window icon
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const iconSize = 256

var iconNames = []string{"folderer.png", "folderer.bmp", "folderer.webp"}

// iconDirs lists where the window icon is looked for: beside the executable,
// then the working directory.
func iconDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	return dirs
}

// LoadIcon finds the first icon file in dirs and returns it scaled to a
// square PNG resource.
func LoadIcon(dirs []string) (fyne.Resource, error) {
	for _, dir := range dirs {
		for _, name := range iconNames {
			path := filepath.Join(dir, name)
			f, err := os.Open(path)
			if err != nil {
				continue
			}
			img, _, err := image.Decode(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
			data, err := scaleIcon(img, iconSize)
			if err != nil {
				return nil, err
			}
			return fyne.NewStaticResource("folderer.png", data), nil
		}
	}
	return nil, fmt.Errorf("couldn't find %v in %v", iconNames, dirs)
}

// scaleIcon fits img into a size×size square, keeping its aspect ratio
func scaleIcon(img image.Image, size int) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty icon image")
	}
	dw, dh := size, size
	if w > h {
		dh = h * size / w
	} else if h > w {
		dw = w * size / h
	}
	off := image.Pt((size-dw)/2, (size-dh)/2)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, image.Rectangle{Min: off, Max: off.Add(image.Pt(dw, dh))}, img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// appIcon returns the custom icon or the stock folder icon
func (mw *MainWindow) appIcon() fyne.Resource {
	res, err := LoadIcon(iconDirs())
	if err != nil {
		mw.log.Warn("Icon not loaded: %v", err)
		return theme.FolderIcon()
	}
	return res
}
