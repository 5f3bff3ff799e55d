package server

import (
	"context"
	"sync"

	"github.com/koppilab/cryodaq-go/models"
	serialpkg "github.com/koppilab/cryodaq-go/serial"
)

// AcqSession guards the one acquisition a daqd process runs at a time.
type AcqSession struct {
	mu sync.Mutex

	configID string
	params   *models.PARAMETERS
	bridge   *serialpkg.Bridge

	opCancel context.CancelFunc
}

func (a *AcqSession) cancelLocked() {
	if a.opCancel != nil {
		a.opCancel()
		a.opCancel = nil
	}
}

func (a *AcqSession) disconnectLocked() {
	if a.bridge != nil {
		_ = a.bridge.Close()
	}
	a.bridge = nil
	a.params = nil
	a.configID = ""
}
