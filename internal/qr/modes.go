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
	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

// Global defaults applied before mode defaults and caller overrides.
const (
	defaultDimension = 256
	defaultMargin    = 4
	defaultQuality   = 0.92
	defaultDark      = "#000000"
	defaultLight     = "#ffffff"
)

// HighQuality floor constraints. These raise, never replace: a caller asking
// for more keeps their higher value.
const (
	highQualityMinDimension = 512
	highQualityMinMargin    = 4
	highQualityMinQuality   = 0.95
)

// ResolveOptions merges option layers into a fully resolved RenderOptions.
// Merge order is global defaults, then mode defaults, then caller overrides,
// with the color sub-object merged key-wise. Basic and Colored share one
// resolution path; they differ only in documented intent, and both honor
// caller-supplied colors.
func ResolveOptions(mode model.Mode, opts model.Options) model.RenderOptions {
	resolved := model.RenderOptions{
		Width:     defaultDimension,
		Height:    defaultDimension,
		Margin:    defaultMargin,
		Quality:   defaultQuality,
		Level:     model.LevelMedium,
		Container: model.ContainerPNG,
		Color: model.ColorOptions{
			Dark:  defaultDark,
			Light: defaultLight,
		},
	}

	// Mode defaults.
	switch mode {
	case model.ModeSVG:
		resolved.Container = model.ContainerSVG
	case model.ModeHighQuality:
		resolved.Level = model.LevelHighest
	}

	// Caller overrides. Output is always square: a single supplied dimension
	// drives both axes.
	switch {
	case opts.Width != nil:
		resolved.Width = *opts.Width
	case opts.Height != nil:
		resolved.Width = *opts.Height
	}
	if opts.Margin != nil {
		resolved.Margin = *opts.Margin
	}
	if opts.Quality != nil {
		resolved.Quality = *opts.Quality
	}
	if opts.ErrorCorrectionLevel != "" {
		resolved.Level = opts.ErrorCorrectionLevel
	}
	if opts.Format != "" {
		resolved.Container = normalizeContainer(opts.Format)
	}
	if opts.Transparent != nil {
		resolved.Transparent = *opts.Transparent
	}
	if opts.Color.Dark != "" {
		resolved.Color.Dark = opts.Color.Dark
	}
	if opts.Color.Light != "" {
		resolved.Color.Light = opts.Color.Light
	}

	switch mode {
	case model.ModeSVG:
		// Vector output is forced regardless of the requested container.
		resolved.Container = model.ContainerSVG
	case model.ModeHighQuality:
		if resolved.Width < highQualityMinDimension {
			resolved.Width = highQualityMinDimension
		}
		if resolved.Margin < highQualityMinMargin {
			resolved.Margin = highQualityMinMargin
		}
		if resolved.Container == model.ContainerJPEG || resolved.Container == model.ContainerWEBP {
			if resolved.Quality < highQualityMinQuality {
				resolved.Quality = highQualityMinQuality
			}
		}
		resolved.Level = model.LevelHighest
	}

	// JPEG has no alpha channel; the transparency flag is silently ignored
	// for that container.
	if resolved.Container == model.ContainerJPEG {
		resolved.Transparent = false
	}

	resolved.Height = resolved.Width
	return resolved
}

// normalizeContainer maps a requested container to a supported one. Anything
// unrecognized falls back to PNG.
func normalizeContainer(c model.Container) model.Container {
	switch c {
	case model.ContainerPNG, model.ContainerJPEG, model.ContainerWEBP, model.ContainerSVG:
		return c
	default:
		return model.ContainerPNG
	}
}

// SupportedFormats returns the output formats available for a mode. The SVG
// mode renders vector output only; every other mode supports all four
// containers.
func SupportedFormats(mode model.Mode) []model.OutputFormat {
	if mode == model.ModeSVG {
		return []model.OutputFormat{model.FormatSVG}
	}
	return []model.OutputFormat{model.FormatPNG, model.FormatJPG, model.FormatWEBP, model.FormatSVG}
}
