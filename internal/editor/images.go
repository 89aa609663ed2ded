package editor

import (
	"encoding/base64"
	"sync"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// ImageFile is one selected image: raw bytes plus the browser-reported MIME
// type. No format validation happens beyond that.
type ImageFile struct {
	Name string
	MIME string
	Data []byte
}

// AttachImages encodes each file to a data URI and appends it to the draft.
// Encoding runs concurrently per file and results are appended as they
// complete, so the final order reflects completion order, not selection
// order. The list is capped at domain.MaxImages; files beyond the remaining
// capacity are dropped silently.
func (e *Editor) AttachImages(files []ImageFile) {
	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(f ImageFile) {
			defer wg.Done()
			uri := encodeDataURI(f)

			e.mu.Lock()
			defer e.mu.Unlock()
			if len(e.draft.Images) >= domain.MaxImages {
				return
			}
			e.draft.Images = append(e.draft.Images, uri)
		}(f)
	}
	wg.Wait()
}

// RemoveImage drops the attachment at the given position.
func (e *Editor) RemoveImage(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.draft.Images) {
		return
	}
	e.draft.Images = append(e.draft.Images[:index], e.draft.Images[index+1:]...)
}

func encodeDataURI(f ImageFile) string {
	mime := f.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}
