package appraisals

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/curiolabs/curio/internal/workflow"
)

func dataURI(mime string, size int) string {
	payload := base64.StdEncoding.EncodeToString(make([]byte, size))
	return "data:" + mime + ";base64," + payload
}

func TestValidateImages(t *testing.T) {
	const maxPayload = 1 << 20

	t.Run("valid submission", func(t *testing.T) {
		images, err := validateImages([]ImageInput{
			{Role: "overview", DataURI: dataURI("image/jpeg", 1024), Label: "front"},
			{Role: "MARKS", DataURI: dataURI("image/png", 1024)},
		}, maxPayload)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if len(images) != 2 {
			t.Fatalf("expected 2 images, got %d", len(images))
		}
		if images[1].Role != workflow.RoleMarks {
			t.Errorf("expected case-folded role marks, got %s", images[1].Role)
		}
		if images[0].ID == images[1].ID {
			t.Error("expected distinct image ids")
		}
	})

	t.Run("empty role defaults to additional", func(t *testing.T) {
		images, err := validateImages([]ImageInput{
			{DataURI: dataURI("image/webp", 512)},
		}, maxPayload)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if images[0].Role != workflow.RoleAdditional {
			t.Errorf("expected additional default, got %s", images[0].Role)
		}
	})

	t.Run("no images", func(t *testing.T) {
		if _, err := validateImages(nil, maxPayload); !errors.Is(err, ErrNoImages) {
			t.Errorf("expected ErrNoImages, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := validateImages([]ImageInput{
			{Role: "selfie", DataURI: dataURI("image/jpeg", 512)},
		}, maxPayload)
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("disallowed mime type", func(t *testing.T) {
		_, err := validateImages([]ImageInput{
			{Role: "overview", DataURI: dataURI("image/tiff", 512)},
		}, maxPayload)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})

	t.Run("not a data uri", func(t *testing.T) {
		_, err := validateImages([]ImageInput{
			{Role: "overview", DataURI: "https://example.com/photo.jpg"},
		}, maxPayload)
		if !errors.Is(err, ErrInvalidImage) {
			t.Errorf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("combined payload over cap", func(t *testing.T) {
		_, err := validateImages([]ImageInput{
			{Role: "overview", DataURI: dataURI("image/jpeg", 700_000)},
			{Role: "detail", DataURI: dataURI("image/jpeg", 700_000)},
		}, maxPayload)
		if !errors.Is(err, ErrPayloadTooLarge) {
			t.Errorf("expected ErrPayloadTooLarge, got %v", err)
		}
	})
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("not really a jpeg")
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	data, mime, err := decodeDataURI(uri)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
	if string(data) != string(payload) {
		t.Error("round-trip payload mismatch")
	}

	if _, _, err := decodeDataURI("data:image/jpeg;base64,%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestEncodeUpload(t *testing.T) {
	t.Run("png payload", func(t *testing.T) {
		// Minimal PNG signature so content sniffing resolves image/png.
		data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

		uri, err := encodeUpload(data)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if !strings.HasPrefix(uri, "data:image/png;base64,") {
			t.Errorf("unexpected prefix: %.40s", uri)
		}
	})

	t.Run("unsniffable payload rejected", func(t *testing.T) {
		if _, err := encodeUpload([]byte("plain text, not an image")); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		if _, err := encodeUpload(nil); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("expected ErrInvalidImage, got %v", err)
		}
	})
}

func TestImageInputUnmarshal(t *testing.T) {
	t.Run("bare data-URI string accepted", func(t *testing.T) {
		body := `{"images": ["` + dataURI("image/png", 64) + `"]}`

		var cmd AppraiseCommand
		if err := json.Unmarshal([]byte(body), &cmd); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(cmd.Images) != 1 {
			t.Fatalf("expected 1 image, got %d", len(cmd.Images))
		}
		if cmd.Images[0].Role != "" || cmd.Images[0].Label != "" {
			t.Errorf("expected empty role and label, got %q %q", cmd.Images[0].Role, cmd.Images[0].Label)
		}

		images, err := validateImages(cmd.Images, 1<<20)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if images[0].Role != workflow.RoleAdditional {
			t.Errorf("expected additional role, got %s", images[0].Role)
		}
	})

	t.Run("object form still decodes", func(t *testing.T) {
		body := `{"images": [{"role": "marks", "data_uri": "` + dataURI("image/jpeg", 64) + `", "label": "base"}]}`

		var cmd AppraiseCommand
		if err := json.Unmarshal([]byte(body), &cmd); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if cmd.Images[0].Role != "marks" || cmd.Images[0].Label != "base" {
			t.Errorf("unexpected decode: %+v", cmd.Images[0])
		}
	})
}
