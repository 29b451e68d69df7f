package app

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// posterFileInfo lets a poster asset name be looked up as a file.
type posterFileInfo struct {
	name string
}

func (i posterFileInfo) Name() string { return i.name }

func (i posterFileInfo) Size() int64 { return 0 }

func (i posterFileInfo) Mode() os.FileMode { return 0 }

func (i posterFileInfo) ModTime() time.Time { return time.Time{} }

func (i posterFileInfo) IsDir() bool { return false }

func (i posterFileInfo) Sys() any { return nil }

const iconPinned = ""

// posterIcon returns the file-type glyph of a poster asset.
func posterIcon(asset string) string {
	if asset == "" {
		return ""
	}
	return devicons.IconForInfo(posterFileInfo{name: asset}).Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
