// Package notify delivers desktop notifications and keeps the status file
// indicator current
package notify

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"

	"github.com/tomatick/pomo/config"
)

// Desktop sends desktop notifications through the system notification
// daemon.
type Desktop struct {
	iconPath string
}

// NewDesktop creates a desktop notifier. The notification icon is looked up
// in the XDG data directory and omitted when absent.
func NewDesktop() *Desktop {
	// pathToIcon will be an empty string if the file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "static", "icon.png"),
	)

	return &Desktop{
		iconPath: pathToIcon,
	}
}

func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, d.iconPath)
}
