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

// Segment data modes reported in metadata.
const (
	segmentModeNumeric      = "numeric"
	segmentModeAlphanumeric = "alphanumeric"
	segmentModeByte         = "byte"
)

// versionByteCapacity holds cumulative byte-mode capacities for symbol
// versions 1 through 10. Longer payloads are extrapolated. The estimate is
// display-only and need not match the version the encoding primitive actually
// selects.
var versionByteCapacity = []int{17, 32, 53, 78, 106, 134, 154, 192, 230, 271}

// ExtractMetadata derives a descriptive summary of the payload: an estimated
// symbol version and a single segment classifying the whole input. It plays
// no part in rendering decisions and the pipeline omits metadata entirely if
// extraction misbehaves.
func ExtractMetadata(data string, level model.ErrorCorrectionLevel) *model.Metadata {
	if data == "" {
		return nil
	}

	mode := classifySegmentMode(data)
	return &model.Metadata{
		Version:              estimateVersion(len(data)),
		ErrorCorrectionLevel: level,
		Segments: []model.Segment{
			{
				Data:    data,
				Mode:    mode,
				NumBits: segmentBitCount(mode, len(data)),
			},
		},
	}
}

// estimateVersion looks the payload length up in the capacity table, then
// extrapolates linearly as ceil(length/40) capped at version 40.
func estimateVersion(length int) int {
	for i, capacity := range versionByteCapacity {
		if length <= capacity {
			return i + 1
		}
	}
	version := (length + 39) / 40
	if version > 40 {
		version = 40
	}
	return version
}

// classifySegmentMode picks the densest QR data mode that can carry the
// payload: numeric for all-digit input, alphanumeric for the restricted
// 45-character set, byte otherwise.
func classifySegmentMode(data string) string {
	numeric := true
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c < '0' || c > '9' {
			numeric = false
			if !isAlphanumericChar(c) {
				return segmentModeByte
			}
		}
	}
	if numeric {
		return segmentModeNumeric
	}
	return segmentModeAlphanumeric
}

// isAlphanumericChar reports membership in the QR alphanumeric charset:
// digits, uppercase letters, space, and $%*+-./:.
func isAlphanumericChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	}
	switch c {
	case ' ', '$', '%', '*', '+', '-', '.', '/', ':':
		return true
	}
	return false
}

// segmentBitCount computes the data bit length of one segment using the
// standard per-mode packing: 10 bits per 3 digits, 11 bits per 2
// alphanumeric characters, 8 bits per byte.
func segmentBitCount(mode string, length int) int {
	switch mode {
	case segmentModeNumeric:
		bits := 10 * (length / 3)
		switch length % 3 {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case segmentModeAlphanumeric:
		return 11*(length/2) + 6*(length%2)
	default:
		return 8 * length
	}
}
