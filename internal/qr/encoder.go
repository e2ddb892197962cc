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
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

// encodeMatrix runs the encoding primitive and returns the module matrix
// without a quiet zone. The margin is applied by the renderers so that the
// configured quiet-zone width is honored exactly.
func encodeMatrix(data string, level model.ErrorCorrectionLevel) ([][]bool, error) {
	code, err := qrcode.New(data, recoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	code.DisableBorder = true

	matrix := code.Bitmap()
	if len(matrix) == 0 {
		return nil, fmt.Errorf("encoding produced an empty symbol")
	}
	return matrix, nil
}

// recoveryLevel maps the wire-level error correction value onto the encoding
// primitive's recovery levels.
func recoveryLevel(level model.ErrorCorrectionLevel) qrcode.RecoveryLevel {
	switch level {
	case model.LevelLow:
		return qrcode.Low
	case model.LevelQuart:
		return qrcode.High
	case model.LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// renderRaster draws the module matrix into a square NRGBA image of the given
// pixel width. The margin is measured in modules and rendered in the light
// color, so a transparent light value yields a transparent quiet zone too.
func renderRaster(matrix [][]bool, width, margin int, dark, light color.Color) *image.NRGBA {
	modules := len(matrix)
	total := modules + 2*margin

	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	darkC := color.NRGBAModel.Convert(dark).(color.NRGBA)
	lightC := color.NRGBAModel.Convert(light).(color.NRGBA)

	for y := 0; y < width; y++ {
		my := y*total/width - margin
		for x := 0; x < width; x++ {
			mx := x*total/width - margin
			if my >= 0 && my < modules && mx >= 0 && mx < modules && matrix[my][mx] {
				img.SetNRGBA(x, y, darkC)
			} else {
				img.SetNRGBA(x, y, lightC)
			}
		}
	}
	return img
}

// renderSVG serializes the module matrix as standalone SVG markup. The
// coordinate space is module units with the quiet zone included in the
// viewBox; the background is emitted as exactly one leading rect in the light
// color, which the transparency transform relies on. Horizontal runs of dark
// modules are merged into single rects to keep the markup compact.
func renderSVG(matrix [][]bool, width, margin int, dark, light string) string {
	modules := len(matrix)
	total := modules + 2*margin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		total, total, width, width,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, total, total, light))

	for y := 0; y < modules; y++ {
		for x := 0; x < modules; {
			if !matrix[y][x] {
				x++
				continue
			}
			run := 1
			for x+run < modules && matrix[y][x+run] {
				run++
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="1" fill="%s"/>`,
				x+margin, y+margin, run, dark))
			x += run
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// parseHexColor parses #rgb and #rrggbb color strings, with or without the
// leading hash. There is no strict validation upstream; malformed values
// surface here as an encoding-stage failure.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected a 3 or 6 digit hex value", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// hexString renders a parsed color back to canonical lowercase #rrggbb form
// so SVG output always carries a normalized fill value.
func hexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
