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

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestValidateRequest_RangeInvariants(t *testing.T) {
	tests := []struct {
		name     string
		options  model.Options
		wantErr  string
	}{
		{
			name:    "width below minimum",
			options: model.Options{Width: intPtr(32)},
			wantErr: "width must be between 64 and 2048",
		},
		{
			name:    "width above maximum",
			options: model.Options{Width: intPtr(4096)},
			wantErr: "width must be between 64 and 2048",
		},
		{
			name:    "height above maximum",
			options: model.Options{Height: intPtr(3000)},
			wantErr: "height must be between 64 and 2048",
		},
		{
			name:    "negative margin",
			options: model.Options{Margin: intPtr(-1)},
			wantErr: "margin must be between 0 and 20",
		},
		{
			name:    "margin above maximum",
			options: model.Options{Margin: intPtr(21)},
			wantErr: "margin must be between 0 and 20",
		},
		{
			name:    "quality below minimum",
			options: model.Options{Quality: floatPtr(0.05)},
			wantErr: "quality must be between 0.1 and 1",
		},
		{
			name:    "quality above maximum",
			options: model.Options{Quality: floatPtr(1.5)},
			wantErr: "quality must be between 0.1 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRequest(model.GenerationRequest{
				Data:    "hello",
				Mode:    model.ModeBasic,
				Options: tt.options,
			})
			require.False(t, result.IsValid)
			require.Len(t, result.Errors, 1)
			assert.Contains(t, result.Errors[0], tt.wantErr)
		})
	}
}

func TestValidateRequest_AbsentFieldsNotChecked(t *testing.T) {
	result := ValidateRequest(model.GenerationRequest{
		Data: "hello",
		Mode: model.ModeBasic,
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateRequest_DataLengthBoundary(t *testing.T) {
	atLimit := ValidateRequest(model.GenerationRequest{
		Data: strings.Repeat("a", 4296),
		Mode: model.ModeBasic,
	})
	assert.True(t, atLimit.IsValid)

	overLimit := ValidateRequest(model.GenerationRequest{
		Data: strings.Repeat("a", 4297),
		Mode: model.ModeBasic,
	})
	require.False(t, overLimit.IsValid)
	require.Len(t, overLimit.Errors, 1)
	assert.Contains(t, overLimit.Errors[0], "4297")
	assert.Contains(t, overLimit.Errors[0], "4296")
}

func TestValidateRequest_EmptyData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty string", data: ""},
		{name: "whitespace only", data: "   \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRequest(model.GenerationRequest{Data: tt.data, Mode: model.ModeBasic})
			require.False(t, result.IsValid)
			assert.Contains(t, result.Errors[0], "data is required")
		})
	}
}

func TestValidateRequest_InvalidMode(t *testing.T) {
	result := ValidateRequest(model.GenerationRequest{Data: "hello", Mode: "fancy"})
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `invalid mode "fancy"`)
}

func TestValidateRequest_AccumulatesAllErrors(t *testing.T) {
	result := ValidateRequest(model.GenerationRequest{
		Data: "",
		Mode: "nope",
		Options: model.Options{
			Width:   intPtr(10),
			Margin:  intPtr(99),
			Quality: floatPtr(2.0),
		},
	})
	require.False(t, result.IsValid)
	assert.Len(t, result.Errors, 5)
}
