// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"log/slog"

	"github.com/l3montree-dev/crossguard/shared"
)

// IntentImpactQueue is the fire-and-forget lane between the intent handler
// and the impact calculation. The calculation is idempotent, so a lost task
// is repaired by the next enqueue for the same intent.
type IntentImpactQueue struct {
	tasks chan string
}

func NewIntentImpactQueue() *IntentImpactQueue {
	return &IntentImpactQueue{
		tasks: make(chan string, 256),
	}
}

func (queue *IntentImpactQueue) EnqueueIntentImpact(intentID string) {
	select {
	case queue.tasks <- intentID:
	default:
		// a full queue means the worker is far behind. Dropping is safe -
		// the next status change re-enqueues the intent.
		slog.Warn("intent impact queue full, dropping task", "intentID", intentID)
	}
}

var _ shared.IntentImpactQueue = (*IntentImpactQueue)(nil)
