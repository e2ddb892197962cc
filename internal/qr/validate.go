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
	"strings"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

// ValidateRequest checks every request invariant and accumulates all
// violations so callers can fix everything in one round-trip. It is a pure
// function with no side effects.
//
// Color strings are deliberately not syntax-checked here: a malformed hex
// color flows through to the encoding stage, which reports it as a generation
// failure. Filenames are likewise passed through; path sanitization is a
// collaborator concern.
func ValidateRequest(req model.GenerationRequest) model.ValidationResult {
	var errs []string

	if strings.TrimSpace(req.Data) == "" {
		errs = append(errs, "data is required and must be a non-empty string")
	} else if len(req.Data) > model.MaxDataLength {
		errs = append(errs, fmt.Sprintf("data length %d exceeds the maximum of %d characters",
			len(req.Data), model.MaxDataLength))
	}

	if !req.Mode.Valid() {
		errs = append(errs, fmt.Sprintf("invalid mode %q: must be one of basic, colored, svg, high-quality", req.Mode))
	}

	// Only supplied numeric options are range-checked; absent fields take
	// mode defaults during resolution.
	if w := req.Options.Width; w != nil && (*w < model.MinDimension || *w > model.MaxDimension) {
		errs = append(errs, fmt.Sprintf("width must be between %d and %d, got %d",
			model.MinDimension, model.MaxDimension, *w))
	}
	if h := req.Options.Height; h != nil && (*h < model.MinDimension || *h > model.MaxDimension) {
		errs = append(errs, fmt.Sprintf("height must be between %d and %d, got %d",
			model.MinDimension, model.MaxDimension, *h))
	}
	if m := req.Options.Margin; m != nil && (*m < model.MinMargin || *m > model.MaxMargin) {
		errs = append(errs, fmt.Sprintf("margin must be between %d and %d, got %d",
			model.MinMargin, model.MaxMargin, *m))
	}
	if q := req.Options.Quality; q != nil && (*q < model.MinQuality || *q > model.MaxQuality) {
		errs = append(errs, fmt.Sprintf("quality must be between %g and %g, got %g",
			model.MinQuality, model.MaxQuality, *q))
	}

	return model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
