package tags

import (
	"os"
	"path/filepath"
	"strings"
)

// Common cover art filenames to look for in album folders, in priority order.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
	"artwork.jpg", "artwork.jpeg", "artwork.png",
}

// findFolderArt returns the first common cover art file in dir, or nil.
func findFolderArt(dir string) []byte {
	for _, filename := range coverArtFilenames {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			// Try case-insensitive match
			data, err = os.ReadFile(filepath.Join(dir, strings.ToUpper(filename)))
			if err != nil {
				continue
			}
		}
		return data
	}
	return nil
}
