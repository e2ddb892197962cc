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

// Package http provides the HTTP transport layer for the QR render service.
// It is a thin adapter: JSON requests in, GenerationResult JSON out, with no
// pipeline semantics of its own.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/qr"
)

type Handler struct {
	svc           qr.Service
	logger        *zap.Logger
	maxBodySize   int64
	maxBatchItems int
}

func NewHandler(svc qr.Service, logger *zap.Logger, maxBodySize int64, maxBatchItems int) *Handler {
	return &Handler{
		svc:           svc,
		logger:        logger,
		maxBodySize:   maxBodySize,
		maxBatchItems: maxBatchItems,
	}
}

// Generate handles POST /generate. Pipeline failures are reported inside the
// GenerationResult body with HTTP 200: the result shape is the contract, and
// only transport-level problems map to error status codes.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, h.svc.Generate(req))
}

// GenerateBatch handles POST /generate/batch.
func (h *Handler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var reqs []model.GenerationRequest
	if !h.decodeBody(w, r, &reqs) {
		return
	}
	if len(reqs) > h.maxBatchItems {
		h.logger.Warn("Batch request over item limit",
			zap.Int("items", len(reqs)),
			zap.Int("limit", h.maxBatchItems),
		)
		http.Error(w, "Too many batch items", http.StatusRequestEntityTooLarge)
		return
	}

	h.writeJSON(w, http.StatusOK, h.svc.GenerateBatch(reqs))
}

// Validate handles POST /validate without rendering anything.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, h.svc.ValidateRequest(req))
}

// Formats handles GET /formats?mode=.
func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode := model.Mode(r.URL.Query().Get("mode"))
	if !mode.Valid() {
		http.Error(w, "Invalid mode parameter: must be one of basic, colored, svg, high-quality", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]model.OutputFormat{
		"formats": h.svc.SupportedFormats(mode),
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody reads and decodes a JSON body, writing the appropriate error
// response on failure. It reports whether decoding succeeded.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		h.logger.Warn("Failed to decode request body", zap.Error(err))
		http.Error(w, "Invalid JSON request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
