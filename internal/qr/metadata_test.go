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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

func TestExtractMetadata_SegmentModes(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantMode string
	}{
		{name: "digits only", data: "1234567890", wantMode: "numeric"},
		{name: "uppercase alphanumeric", data: "HELLO WORLD 123", wantMode: "alphanumeric"},
		{name: "alphanumeric symbols", data: "A$B%C*D+E-F.G/H:I", wantMode: "alphanumeric"},
		{name: "lowercase forces byte", data: "Hello", wantMode: "byte"},
		{name: "url is byte", data: "https://example.com/path", wantMode: "byte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMetadata(tt.data, model.LevelMedium)
			require.NotNil(t, meta)
			require.Len(t, meta.Segments, 1)
			assert.Equal(t, tt.wantMode, meta.Segments[0].Mode)
			assert.Equal(t, tt.data, meta.Segments[0].Data)
		})
	}
}

func TestEstimateVersion(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{length: 1, want: 1},
		{length: 17, want: 1},
		{length: 18, want: 2},
		{length: 106, want: 5},
		{length: 271, want: 10},
		{length: 1200, want: 30},
		{length: 4296, want: 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, estimateVersion(tt.length), "length %d", tt.length)
	}
}

func TestSegmentBitCount(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		length int
		want   int
	}{
		{name: "numeric multiple of three", mode: "numeric", length: 6, want: 20},
		{name: "numeric remainder one", mode: "numeric", length: 4, want: 14},
		{name: "numeric remainder two", mode: "numeric", length: 5, want: 17},
		{name: "alphanumeric even", mode: "alphanumeric", length: 4, want: 22},
		{name: "alphanumeric odd", mode: "alphanumeric", length: 5, want: 28},
		{name: "byte", mode: "byte", length: 10, want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmentBitCount(tt.mode, tt.length))
		})
	}
}

func TestExtractMetadata_LevelAndNumBits(t *testing.T) {
	data := strings.Repeat("7", 9)
	meta := ExtractMetadata(data, model.LevelHighest)
	require.NotNil(t, meta)
	assert.Equal(t, model.LevelHighest, meta.ErrorCorrectionLevel)
	assert.Equal(t, 30, meta.Segments[0].NumBits)
	assert.Equal(t, 1, meta.Version)
}

func TestExtractMetadata_EmptyData(t *testing.T) {
	assert.Nil(t, ExtractMetadata("", model.LevelMedium))
}
