package scan

import (
	"errors"
	"strings"
	"testing"
)

// pngBytes carries a real PNG signature so content sniffing sees image/png.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func TestIntake_AcceptImage(t *testing.T) {
	var got *Accepted
	intake := NewIntake(0, func(a Accepted) { got = &a })

	if err := intake.Accept("lesion.png", pngBytes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected callback to fire")
	}
	if got.ContentType != "image/png" {
		t.Errorf("expected image/png, got %q", got.ContentType)
	}
	if !strings.HasPrefix(got.PreviewURL, "data:image/png;base64,") {
		t.Errorf("unexpected preview URL %q", got.PreviewURL)
	}
	if intake.Current() == nil {
		t.Error("expected current selection set")
	}
}

func TestIntake_RejectsNonImageSilently(t *testing.T) {
	fired := false
	intake := NewIntake(0, func(Accepted) { fired = true })

	// Extension lies; content decides.
	err := intake.Accept("report.png", []byte("%PDF-1.4 not an image at all"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if fired {
		t.Error("callback must not fire for rejected input")
	}
	if intake.Current() != nil {
		t.Error("no preview may be set for rejected input")
	}
}

func TestIntake_RejectionKeepsPriorState(t *testing.T) {
	intake := NewIntake(0, nil)

	if err := intake.Accept("first.png", pngBytes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := intake.Accept("junk.txt", []byte("plain words")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	cur := intake.Current()
	if cur == nil || cur.Filename != "first.png" {
		t.Errorf("expected prior selection retained, got %+v", cur)
	}
}

func TestIntake_SizeLimit(t *testing.T) {
	fired := false
	intake := NewIntake(16, func(Accepted) { fired = true })

	err := intake.Accept("big.png", pngBytes) // 40 bytes
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if fired {
		t.Error("callback must not fire for oversize input")
	}
}

func TestIntake_ClearSuppressedWhileAnalyzing(t *testing.T) {
	intake := NewIntake(0, nil)
	if err := intake.Accept("lesion.png", pngBytes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intake.SetAnalyzing(true)
	if intake.Clear() {
		t.Error("clear must be suppressed while analyzing")
	}
	if intake.Current() == nil {
		t.Error("selection must survive a suppressed clear")
	}

	intake.SetAnalyzing(false)
	if !intake.Clear() {
		t.Error("clear must work once analyzing ends")
	}
	if intake.Current() != nil {
		t.Error("expected selection cleared")
	}
}
