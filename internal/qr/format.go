// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

const defaultFilename = "qr-code"

// encodeRaster serializes the rendered image into the resolved container and
// returns the bytes plus the container's MIME type. Quality applies to lossy
// containers only.
func encodeRaster(img image.Image, container model.Container, quality float64) ([]byte, string, error) {
	var buf bytes.Buffer

	switch container {
	case model.ContainerJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: int(quality * 100)}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	case model.ContainerWEBP:
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality * 100)}); err != nil {
			return nil, "", fmt.Errorf("failed to encode WEBP: %w", err)
		}
		return buf.Bytes(), "image/webp", nil
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
}

// dataURL wraps raw bytes as a base64 data URL suitable for direct use in an
// img src attribute.
func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// formatFor maps a container onto the format label reported to consumers.
func formatFor(container model.Container) model.OutputFormat {
	switch container {
	case model.ContainerJPEG:
		return model.FormatJPG
	case model.ContainerWEBP:
		return model.FormatWEBP
	case model.ContainerSVG:
		return model.FormatSVG
	default:
		return model.FormatPNG
	}
}

// extensionFor returns the file extension for a format, without the dot.
func extensionFor(format model.OutputFormat) string {
	switch format {
	case model.FormatJPG:
		return "jpg"
	case model.FormatWEBP:
		return "webp"
	case model.FormatSVG:
		return "svg"
	default:
		return "png"
	}
}

// knownExtensions covers the extensions stripped when normalizing an SVG
// filename.
var knownExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}

// resolveFilename proposes an output filename with the correct extension for
// the resolved format. SVG output always ends in .svg, stripping any raster
// extension the caller supplied; for raster output a caller-supplied name is
// kept as-is when it already carries an extension. Character sanitization is
// a collaborator concern.
func resolveFilename(name string, format model.OutputFormat) string {
	ext := extensionFor(format)
	if name == "" {
		return defaultFilename + "." + ext
	}

	if format == model.FormatSVG {
		lower := strings.ToLower(name)
		for _, known := range knownExtensions {
			if strings.HasSuffix(lower, known) {
				name = name[:len(name)-len(known)]
				break
			}
		}
		return name + ".svg"
	}

	if !strings.Contains(name, ".") {
		return name + "." + ext
	}
	return name
}
