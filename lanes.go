// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"sort"
)

// Helper struct for sorting inputs based on length
type lane struct {
	len uint
	pos uint
}

type lanes []lane

func (lns lanes) Len() int      { return len(lns) }
func (lns lanes) Swap(i, j int) { lns[i], lns[j] = lns[j], lns[i] }

// Longest first; ties keep input order.
func (lns lanes) Less(i, j int) bool {
	if lns[i].len != lns[j].len {
		return lns[i].len > lns[j].len
	}
	return lns[i].pos < lns[j].pos
}

// scheduleLanes returns the order in which inputs are handed to workers,
// so the largest messages start first and do not trail the batch.
func scheduleLanes(inputs [][]byte) lanes {
	sorted := make(lanes, len(inputs))
	for c, inpt := range inputs {
		sorted[c] = lane{uint(len(inpt)), uint(c)}
	}
	sort.Sort(sorted)
	return sorted
}
