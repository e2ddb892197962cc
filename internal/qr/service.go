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

// Package qr implements the QR rendering pipeline: request validation, mode
// resolution, symbol encoding, color/transparency processing, format
// adaptation, metadata extraction, and batch orchestration.
package qr

import (
	"image"
	"image/color"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

// Service defines the business logic for QR code generation.
type Service interface {
	// Generate runs one request through the full pipeline. It never returns
	// a Go error: every failure surfaces as a result with Success false and
	// a display-safe message, so consumers have a single handling path.
	Generate(req model.GenerationRequest) model.GenerationResult

	// GenerateBatch processes requests independently and returns results in
	// input order. One item's failure never aborts its siblings.
	GenerateBatch(reqs []model.GenerationRequest) []model.GenerationResult

	// ValidateRequest checks request invariants without rendering anything.
	ValidateRequest(req model.GenerationRequest) model.ValidationResult

	// SupportedFormats lists the output formats available for a mode.
	SupportedFormats(mode model.Mode) []model.OutputFormat
}

type service struct {
	logger       *zap.Logger
	batchWorkers int
}

// NewService creates a new QR generation service instance. batchWorkers
// bounds batch concurrency; values below 2 keep batches strictly sequential.
func NewService(logger *zap.Logger, batchWorkers int) Service {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &service{
		logger:       logger,
		batchWorkers: batchWorkers,
	}
}

func (s *service) ValidateRequest(req model.GenerationRequest) model.ValidationResult {
	return ValidateRequest(req)
}

func (s *service) SupportedFormats(mode model.Mode) []model.OutputFormat {
	return SupportedFormats(mode)
}

func (s *service) Generate(req model.GenerationRequest) model.GenerationResult {
	if v := ValidateRequest(req); !v.IsValid {
		s.logger.Warn("QR generation rejected by validation",
			zap.String("mode", string(req.Mode)),
			zap.Strings("errors", v.Errors),
		)
		return s.failure(req, strings.Join(v.Errors, "; "))
	}

	opts := ResolveOptions(req.Mode, req.Options)

	s.logger.Debug("Starting QR generation",
		zap.String("mode", string(req.Mode)),
		zap.Int("data_length", len(req.Data)),
		zap.String("container", string(opts.Container)),
		zap.Int("width", opts.Width),
		zap.Bool("transparent", opts.Transparent),
	)

	matrix, err := encodeMatrix(req.Data, opts.Level)
	if err != nil {
		s.logger.Error("Failed to encode QR symbol",
			zap.Error(err),
			zap.Int("data_length", len(req.Data)),
			zap.String("level", string(opts.Level)),
		)
		return s.failure(req, err.Error())
	}

	var result model.GenerationResult
	if opts.Container == model.ContainerSVG {
		result, err = s.renderVector(req, opts, matrix)
	} else {
		result, err = s.renderRasterArtifact(req, opts, matrix)
	}
	if err != nil {
		s.logger.Error("Failed to render QR artifact",
			zap.Error(err),
			zap.String("container", string(opts.Container)),
		)
		return s.failure(req, err.Error())
	}

	// Metadata is best-effort and never fails the generation.
	result.Metadata = ExtractMetadata(req.Data, opts.Level)

	s.logger.Debug("QR generation completed",
		zap.String("format", string(result.Format)),
		zap.String("filename", result.Filename),
		zap.Int("width", result.Size.Width),
	)
	return result
}

// renderRasterArtifact renders the symbol into a pixel buffer and wraps it in
// the resolved raster container.
func (s *service) renderRasterArtifact(req model.GenerationRequest, opts model.RenderOptions, matrix [][]bool) (model.GenerationResult, error) {
	dark, err := parseHexColor(opts.Color.Dark)
	if err != nil {
		return model.GenerationResult{}, err
	}

	var img image.Image
	if opts.Transparent {
		// Primary path: render the background and quiet zone with a fully
		// transparent color in one pass. MakeTransparent remains available
		// as the color-keying fallback for artifacts rendered with solid
		// colors.
		img = renderRaster(matrix, opts.Width, opts.Margin, dark, color.NRGBA{})
	} else {
		light, lerr := parseHexColor(opts.Color.Light)
		if lerr != nil {
			return model.GenerationResult{}, lerr
		}
		img = renderRaster(matrix, opts.Width, opts.Margin, dark, light)
	}

	raw, mimeType, err := encodeRaster(img, opts.Container, opts.Quality)
	if err != nil {
		return model.GenerationResult{}, err
	}

	url := dataURL(mimeType, raw)
	format := formatFor(opts.Container)
	return model.GenerationResult{
		Success:   true,
		Data:      url,
		DataURL:   url,
		Filename:  resolveFilename(req.Filename, format),
		Format:    format,
		Size:      model.Size{Width: opts.Width, Height: opts.Width},
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// renderVector serializes the symbol as SVG markup, applying the text-level
// transparency transform when requested.
func (s *service) renderVector(req model.GenerationRequest, opts model.RenderOptions, matrix [][]bool) (model.GenerationResult, error) {
	dark, err := parseHexColor(opts.Color.Dark)
	if err != nil {
		return model.GenerationResult{}, err
	}
	light, err := parseHexColor(opts.Color.Light)
	if err != nil {
		return model.GenerationResult{}, err
	}

	markup := renderSVG(matrix, opts.Width, opts.Margin, hexString(dark), hexString(light))
	if opts.Transparent {
		markup = MakeSVGTransparent(markup)
	}

	return model.GenerationResult{
		Success:   true,
		Data:      markup,
		DataURL:   dataURL("image/svg+xml", []byte(markup)),
		Filename:  resolveFilename(req.Filename, model.FormatSVG),
		Format:    model.FormatSVG,
		Size:      model.Size{Width: opts.Width, Height: opts.Width},
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// failure builds the same-shape result consumers receive for any rejected or
// failed request. The message is suitable for direct display and carries no
// internal detail beyond the stage error text.
func (s *service) failure(req model.GenerationRequest, message string) model.GenerationResult {
	opts := ResolveOptions(req.Mode, req.Options)
	return model.GenerationResult{
		Success:   false,
		Error:     message,
		Filename:  resolveFilename(req.Filename, formatFor(opts.Container)),
		Timestamp: time.Now().UnixMilli(),
	}
}
