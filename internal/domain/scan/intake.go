package scan

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"sync"
)

var (
	// ErrUnsupportedType marks non-image input. Callers drop it silently:
	// no notification, no callback, prior state retained.
	ErrUnsupportedType = errors.New("file is not an image")
	ErrFileTooLarge    = errors.New("file exceeds the upload limit")
)

// Accepted is handed to the intake callback for every accepted photo.
type Accepted struct {
	Filename    string
	ContentType string
	Content     []byte
	PreviewURL  string
}

// Intake mirrors the upload widget contract: it sniffs the MIME type from
// content (never from the extension), produces a base64 data-URL preview,
// and invokes the registered callback. While the analyzing flag is set the
// clear control is suppressed.
type Intake struct {
	mu        sync.Mutex
	onAccept  func(Accepted)
	maxBytes  int64
	analyzing bool
	current   *Accepted
}

// NewIntake creates an Intake. maxBytes <= 0 disables the size check.
func NewIntake(maxBytes int64, onAccept func(Accepted)) *Intake {
	return &Intake{maxBytes: maxBytes, onAccept: onAccept}
}

// Accept validates and takes in one photo. On ErrUnsupportedType the caller
// is expected to stay quiet; on ErrFileTooLarge it should notify. Either way
// the callback does not fire and the previous selection is retained.
func (i *Intake) Accept(filename string, content []byte) error {
	contentType := sniffContentType(content)
	if !strings.HasPrefix(contentType, "image/") {
		return ErrUnsupportedType
	}
	if i.maxBytes > 0 && int64(len(content)) > i.maxBytes {
		return ErrFileTooLarge
	}

	accepted := Accepted{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
		PreviewURL:  "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content),
	}

	i.mu.Lock()
	i.current = &accepted
	cb := i.onAccept
	i.mu.Unlock()

	if cb != nil {
		cb(accepted)
	}
	return nil
}

// SetAnalyzing toggles the external analyzing flag.
func (i *Intake) SetAnalyzing(analyzing bool) {
	i.mu.Lock()
	i.analyzing = analyzing
	i.mu.Unlock()
}

// Clear drops the current selection. Suppressed while analyzing; returns
// whether the clear took effect.
func (i *Intake) Clear() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.analyzing {
		return false
	}
	i.current = nil
	return true
}

// Current returns the active selection, or nil.
func (i *Intake) Current() *Accepted {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current
}

func sniffContentType(content []byte) string {
	// DetectContentType wants at most 512 bytes and handles short input.
	head := content
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if idx := strings.IndexByte(ct, ';'); idx >= 0 {
		ct = ct[:idx]
	}
	return ct
}
