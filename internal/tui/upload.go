package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/doin-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type uploadFunc func(file models.FileUpload, progress func(models.UploadProgress)) error

// startUpload opens path and runs upload in the background. Progress and
// the final result arrive as uploadEventMsg values; each one carries the
// command for the next.
func startUpload(path string, upload uploadFunc) tea.Cmd {
	path = strings.TrimSpace(path)

	f, err := os.Open(path)
	if err != nil {
		return func() tea.Msg {
			return uploadEventMsg{done: true, err: fmt.Errorf("open %s: %w", path, err)}
		}
	}

	var size int64
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}

	events := make(chan uploadEventMsg, 8)
	go func() {
		defer close(events)
		defer f.Close()

		err := upload(models.FileUpload{Name: filepath.Base(path), Reader: f, Size: size}, func(p models.UploadProgress) {
			select {
			case events <- uploadEventMsg{progress: &p}:
			default:
			}
		})
		deliverFinal(events, uploadEventMsg{done: true, err: err})
	}()

	return waitUpload(events)
}

// deliverFinal queues msg without blocking, dropping stale progress updates
// until it fits. The page may have stopped reading, and the goroutine must
// still exit.
func deliverFinal(events chan uploadEventMsg, msg uploadEventMsg) {
	for {
		select {
		case events <- msg:
			return
		default:
		}
		select {
		case <-events:
		default:
		}
	}
}

func waitUpload(events <-chan uploadEventMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		msg.next = events
		return msg
	}
}
