package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/storage"
)

const (
	AppIcon = "meal-finder.png"

	// EmptyStateImageURL is the illustration shown before the first search
	EmptyStateImageURL = "https://cdn-icons-png.flaticon.com/512/3723/3723725.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// newRemoteImage creates an image that loads from rawURL. It returns nil when
// rawURL is empty or not a valid URI so callers can skip the image.
func newRemoteImage(rawURL string, size fyne.Size, fill canvas.ImageFill) *canvas.Image {
	if rawURL == "" {
		return nil
	}

	uri, err := storage.ParseURI(rawURL)
	if err != nil {
		return nil
	}

	img := canvas.NewImageFromURI(uri)
	img.FillMode = fill
	img.SetMinSize(size)
	return img
}
