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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

func TestResolveOptions_Defaults(t *testing.T) {
	resolved := ResolveOptions(model.ModeBasic, model.Options{})

	assert.Equal(t, 256, resolved.Width)
	assert.Equal(t, 256, resolved.Height)
	assert.Equal(t, 4, resolved.Margin)
	assert.Equal(t, model.LevelMedium, resolved.Level)
	assert.Equal(t, model.ContainerPNG, resolved.Container)
	assert.Equal(t, "#000000", resolved.Color.Dark)
	assert.Equal(t, "#ffffff", resolved.Color.Light)
	assert.False(t, resolved.Transparent)
}

func TestResolveOptions_ColorMergedKeyWise(t *testing.T) {
	resolved := ResolveOptions(model.ModeColored, model.Options{
		Color: model.ColorOptions{Dark: "#ff0000"},
	})

	assert.Equal(t, "#ff0000", resolved.Color.Dark)
	// The light default survives a partial color override.
	assert.Equal(t, "#ffffff", resolved.Color.Light)
}

func TestResolveOptions_HighQualityFloors(t *testing.T) {
	tests := []struct {
		name        string
		options     model.Options
		wantWidth   int
		wantMargin  int
		wantQuality float64
		wantLevel   model.ErrorCorrectionLevel
	}{
		{
			name:        "small request raised to floors",
			options:     model.Options{Width: intPtr(256), Margin: intPtr(2), Quality: floatPtr(0.5), Format: model.ContainerJPEG},
			wantWidth:   512,
			wantMargin:  4,
			wantQuality: 0.95,
			wantLevel:   model.LevelHighest,
		},
		{
			name:        "large request keeps higher values",
			options:     model.Options{Width: intPtr(1024), Margin: intPtr(8), Quality: floatPtr(0.98), Format: model.ContainerJPEG},
			wantWidth:   1024,
			wantMargin:  8,
			wantQuality: 0.98,
			wantLevel:   model.LevelHighest,
		},
		{
			name:      "level forced high even with override",
			options:   model.Options{ErrorCorrectionLevel: model.LevelLow},
			wantWidth: 512, wantMargin: 4, wantQuality: 0.92,
			wantLevel: model.LevelHighest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveOptions(model.ModeHighQuality, tt.options)
			assert.Equal(t, tt.wantWidth, resolved.Width)
			assert.Equal(t, tt.wantWidth, resolved.Height)
			assert.Equal(t, tt.wantMargin, resolved.Margin)
			assert.InDelta(t, tt.wantQuality, resolved.Quality, 0.0001)
			assert.Equal(t, tt.wantLevel, resolved.Level)
		})
	}
}

func TestResolveOptions_SVGModeForcesVector(t *testing.T) {
	resolved := ResolveOptions(model.ModeSVG, model.Options{Format: model.ContainerJPEG})
	assert.Equal(t, model.ContainerSVG, resolved.Container)
}

func TestResolveOptions_UnrecognizedContainerFallsBackToPNG(t *testing.T) {
	resolved := ResolveOptions(model.ModeBasic, model.Options{Format: "bmp"})
	assert.Equal(t, model.ContainerPNG, resolved.Container)
}

func TestResolveOptions_JPEGIgnoresTransparency(t *testing.T) {
	resolved := ResolveOptions(model.ModeBasic, model.Options{
		Format:      model.ContainerJPEG,
		Transparent: boolPtr(true),
	})
	assert.False(t, resolved.Transparent)
}

func TestResolveOptions_SingleDimensionDrivesSquare(t *testing.T) {
	resolved := ResolveOptions(model.ModeBasic, model.Options{Height: intPtr(640)})
	assert.Equal(t, 640, resolved.Width)
	assert.Equal(t, 640, resolved.Height)
}

func TestSupportedFormats(t *testing.T) {
	svgOnly := SupportedFormats(model.ModeSVG)
	assert.Equal(t, []model.OutputFormat{model.FormatSVG}, svgOnly)

	for _, mode := range []model.Mode{model.ModeBasic, model.ModeColored, model.ModeHighQuality} {
		formats := SupportedFormats(mode)
		assert.Len(t, formats, 4, "mode %s", mode)
		assert.ElementsMatch(t, []model.OutputFormat{
			model.FormatPNG, model.FormatJPG, model.FormatWEBP, model.FormatSVG,
		}, formats, "mode %s", mode)
	}
}
