// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"strconv"
)

// FillPairs runs the row scheduler over n synthetic samples with pair as the
// distance kernel. It returns nil and the error when the run is cancelled.
func FillPairs(ctx context.Context, n, workers int, pair func(i, j int) float64) (*Matrix, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "s" + strconv.Itoa(i)
	}
	dm := newMatrix(ids)
	if err := fillMatrix(ctx, dm, pair, workers); err != nil {
		return nil, err
	}

	return dm, nil
}
