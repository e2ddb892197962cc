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
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/model"
)

// GenerateBatch runs every request through the pipeline and returns results
// at their input positions. Items are isolated: a failing item yields a
// Success=false result at its index and the remaining items are still
// attempted, with no early abort and no failure ceiling.
//
// With batchWorkers of 1 the batch is strictly sequential, which bounds peak
// memory to a single render buffer. Higher values run items under a bounded
// worker group; each item owns its own buffers and writes only its own slot,
// so no render state is shared between in-flight items.
func (s *service) GenerateBatch(reqs []model.GenerationRequest) []model.GenerationResult {
	start := time.Now()
	results := make([]model.GenerationResult, len(reqs))

	if s.batchWorkers <= 1 {
		for i, req := range reqs {
			results[i] = s.Generate(req)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.batchWorkers)
		for i, req := range reqs {
			i, req := i, req
			g.Go(func() error {
				// Generate never returns an error, so a failed item cannot
				// cancel its siblings through the group.
				results[i] = s.Generate(req)
				return nil
			})
		}
		_ = g.Wait()
	}

	summary := model.BatchSummary{
		Total:      len(reqs),
		DurationMS: time.Since(start).Milliseconds(),
	}
	for _, r := range results {
		if r.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	s.logger.Info("Batch generation completed",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int64("duration_ms", summary.DurationMS),
		zap.Int("workers", s.batchWorkers),
	)
	return results
}
