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
	"image"
	"image/color"
	"regexp"
)

// lightThreshold is the per-channel brightness cutoff for background keying.
// A pixel becomes transparent only when R, G, and B each exceed this value;
// a channel at exactly 240 stays opaque. The threshold approach is a
// color-keying approximation, not semantic transparency, and its exact
// behavior is part of the output contract. Do not change it.
const lightThreshold = 240

// MakeTransparent returns a copy of img with every sufficiently light pixel's
// alpha zeroed and all other pixels untouched. It is the fallback raster
// transparency path; the primary path renders with a transparent background
// color in one pass. Transparency is a best-effort enhancement and this
// function never fails.
func MakeTransparent(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R > lightThreshold && c.G > lightThreshold && c.B > lightThreshold {
				c.A = 0
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// White-family fill values recognized by the SVG transform, case-insensitive.
var (
	svgWhiteElement = regexp.MustCompile(`(?i)<(?:rect|path)\b[^>]*\bfill="(?:white|#ffffff|#fff|rgb\(\s*255\s*,\s*255\s*,\s*255\s*\))"[^>]*/?>`)
	svgWhiteFill    = regexp.MustCompile(`(?i)\bfill="(?:white|#ffffff|#fff|rgb\(\s*255\s*,\s*255\s*,\s*255\s*\))"`)
)

// MakeSVGTransparent strips the solid background from SVG markup by text
// substitution: rect and path elements filled with a white-family value are
// removed outright, and any remaining white-family fill attribute is
// rewritten to "none". The renderer in this package guarantees the background
// is a single leading rect, which keeps this transform stable; markup with no
// white fills passes through unchanged.
func MakeSVGTransparent(markup string) string {
	out := svgWhiteElement.ReplaceAllString(markup, "")
	return svgWhiteFill.ReplaceAllString(out, `fill="none"`)
}
