package appraisals

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"

	"github.com/curiolabs/curio/internal/workflow"
)

// allowedImageTypes is the inbound MIME allowlist.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// validateImages converts inbound image inputs into captured images,
// enforcing the role set, the MIME allowlist, and the combined payload cap.
func validateImages(inputs []ImageInput, maxPayload int64) ([]workflow.CapturedImage, error) {
	if len(inputs) == 0 {
		return nil, ErrNoImages
	}

	var total int64
	images := make([]workflow.CapturedImage, 0, len(inputs))

	for i, in := range inputs {
		role := workflow.ImageRole(strings.ToLower(strings.TrimSpace(in.Role)))
		if role == "" {
			role = workflow.RoleAdditional
		}
		if !workflow.ValidRole(role) {
			return nil, fmt.Errorf("%w: image %d role %q", ErrInvalidRole, i, in.Role)
		}

		size, err := validateDataURI(in.DataURI)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}

		total += size
		if total > maxPayload {
			return nil, ErrPayloadTooLarge
		}

		images = append(images, workflow.CapturedImage{
			ID:      uuid.New(),
			Role:    role,
			DataURI: in.DataURI,
			Label:   in.Label,
		})
	}

	return images, nil
}

// validateDataURI checks the data-URI envelope and MIME type and returns
// the approximate decoded payload size.
func validateDataURI(uri string) (int64, error) {
	if !strings.HasPrefix(uri, "data:") {
		return 0, ErrInvalidImage
	}

	rest := uri[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return 0, ErrInvalidImage
	}

	mime := rest[:sep]
	if !allowedImageTypes[mime] {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	encoded := int64(len(rest) - sep - len(";base64,"))
	if encoded == 0 {
		return 0, ErrInvalidImage
	}

	// Base64 carries 3 payload bytes per 4 characters.
	return encoded * 3 / 4, nil
}

// encodeUpload turns raw uploaded bytes into a data URI, sniffing the
// content type and enforcing the allowlist. PNG payloads go through the
// document encoder; the other allowed types have no document.Format and
// are framed directly.
func encodeUpload(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidImage
	}

	mime := http.DetectContentType(data)
	if !allowedImageTypes[mime] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	if mime == "image/png" {
		uri, err := encoding.EncodeImageDataURI(data, document.PNG)
		if err != nil {
			return "", fmt.Errorf("encode image: %w", err)
		}
		return uri, nil
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
