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

// Package model contains the request, options, and result types shared by the
// rendering pipeline and the transport layer.
package model

// Mode selects a fixed generation policy. It picks defaults and a code path;
// it carries no state of its own.
type Mode string

const (
	ModeBasic       Mode = "basic"
	ModeColored     Mode = "colored"
	ModeSVG         Mode = "svg"
	ModeHighQuality Mode = "high-quality"
)

// Valid reports whether m is one of the four supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeBasic, ModeColored, ModeSVG, ModeHighQuality:
		return true
	}
	return false
}

// Container identifies the output container format requested for the artifact.
type Container string

const (
	ContainerPNG  Container = "png"
	ContainerJPEG Container = "jpeg"
	ContainerWEBP Container = "webp"
	ContainerSVG  Container = "svg"
)

// OutputFormat is the format label reported back to consumers.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "PNG"
	FormatJPG  OutputFormat = "JPG"
	FormatWEBP OutputFormat = "WEBP"
	FormatSVG  OutputFormat = "SVG"
)

// ErrorCorrectionLevel is the QR redundancy level (L/M/Q/H, roughly
// 7/15/25/30% recovery).
type ErrorCorrectionLevel string

const (
	LevelLow     ErrorCorrectionLevel = "L"
	LevelMedium  ErrorCorrectionLevel = "M"
	LevelQuart   ErrorCorrectionLevel = "Q"
	LevelHighest ErrorCorrectionLevel = "H"
)

// ColorOptions holds the foreground ("dark") and background ("light") colors
// as hex strings. Fields are merged key-wise over defaults, never replaced
// wholesale.
type ColorOptions struct {
	Dark  string `json:"dark,omitempty"`
	Light string `json:"light,omitempty"`
}

// Options is the sparse, caller-supplied option set. Numeric fields are
// pointers so that an absent field can be distinguished from a zero value:
// absent fields take mode defaults and are not range-checked at validation.
type Options struct {
	Width                *int                 `json:"width,omitempty"`
	Height               *int                 `json:"height,omitempty"`
	Margin               *int                 `json:"margin,omitempty"`
	Quality              *float64             `json:"quality,omitempty"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel,omitempty"`
	Format               Container            `json:"format,omitempty"`
	Transparent          *bool                `json:"transparent,omitempty"`
	Color                ColorOptions         `json:"color,omitempty"`
}

// GenerationRequest is a single QR generation request. The caller owns the
// request for its lifetime; the pipeline retains no reference into it.
type GenerationRequest struct {
	Data     string  `json:"data"`
	Mode     Mode    `json:"mode"`
	Options  Options `json:"options,omitempty"`
	Filename string  `json:"filename,omitempty"`
}

// RenderOptions is the fully resolved option set used for rendering. All
// fields are populated; Height always equals Width.
type RenderOptions struct {
	Width       int
	Height      int
	Margin      int
	Quality     float64
	Level       ErrorCorrectionLevel
	Container   Container
	Transparent bool
	Color       ColorOptions
}

// Range invariants enforced before any rendering is attempted.
const (
	MaxDataLength = 4296

	MinDimension = 64
	MaxDimension = 2048

	MinMargin = 0
	MaxMargin = 20

	MinQuality = 0.1
	MaxQuality = 1.0
)

// Segment describes one data segment of the encoded payload.
type Segment struct {
	Data    string `json:"data"`
	Mode    string `json:"mode"`
	NumBits int    `json:"numBits"`
}

// Metadata is a best-effort descriptive summary of the encoded symbol. It is
// display-only and plays no part in rendering decisions.
type Metadata struct {
	Version              int                  `json:"version"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel"`
	Segments             []Segment            `json:"segments"`
}

// Size is the pixel dimensions of the produced artifact. Width always equals
// Height.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GenerationResult is the sole contract exposed to consumers. It is
// constructed once per request and never mutated afterwards. Data and DataURL
// usually carry the same value duplicated for caller convenience; for SVG
// output Data is the raw markup and DataURL its base64 wrapping.
type GenerationResult struct {
	Success   bool         `json:"success"`
	Data      string       `json:"data,omitempty"`
	DataURL   string       `json:"dataUrl,omitempty"`
	Filename  string       `json:"filename"`
	Format    OutputFormat `json:"format,omitempty"`
	Size      Size         `json:"size"`
	Metadata  *Metadata    `json:"metadata,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// ValidationResult accumulates every invariant violation found in a request,
// not just the first.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// BatchSummary aggregates the outcome of one batch run for logging.
type BatchSummary struct {
	Total      int
	Succeeded  int
	Failed     int
	DurationMS int64
}
