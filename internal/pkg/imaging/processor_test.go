package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcessResizesOversizedImage(t *testing.T) {
	p := NewProcessor(DefaultConfig())

	result, err := p.Process(bytes.NewReader(encodeTestJPEG(t, 4800, 2400)), "site.jpg")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Width > 2400 || result.Height > 2400 {
		t.Fatalf("original not resized: %dx%d", result.Width, result.Height)
	}
	if result.ThumbWidth != 480 || result.ThumbHeight != 270 {
		t.Fatalf("thumbnail = %dx%d, want 480x270", result.ThumbWidth, result.ThumbHeight)
	}
	if result.ContentType != "image/jpeg" {
		t.Fatalf("content type = %s", result.ContentType)
	}
	if len(result.Original) == 0 || len(result.Thumbnail) == 0 {
		t.Fatal("encoded variants must not be empty")
	}
}

func TestProcessKeepsSmallImageDimensions(t *testing.T) {
	p := NewProcessor(DefaultConfig())

	result, err := p.Process(bytes.NewReader(encodeTestJPEG(t, 800, 600)), "site.jpg")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Width != 800 || result.Height != 600 {
		t.Fatalf("small image was resized: %dx%d", result.Width, result.Height)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	p := NewProcessor(DefaultConfig())

	if _, err := p.Process(bytes.NewReader([]byte("not an image")), "site.jpg"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidateType(t *testing.T) {
	valid := []string{"a.jpg", "b.JPEG", "c.png", "d.webp"}
	for _, name := range valid {
		if !ValidateType(name) {
			t.Errorf("ValidateType(%q) = false, want true", name)
		}
	}

	invalid := []string{"e.gif", "f.pdf", "g", "h.svg"}
	for _, name := range invalid {
		if ValidateType(name) {
			t.Errorf("ValidateType(%q) = true, want false", name)
		}
	}
}

func TestValidateSize(t *testing.T) {
	if !ValidateSize(MaxFileSize) {
		t.Fatal("exactly the limit must be accepted")
	}
	if ValidateSize(MaxFileSize + 1) {
		t.Fatal("over the limit must be rejected")
	}
}
