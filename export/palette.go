// SPDX-License-Identifier: MIT

package export

import (
	"sort"

	"github.com/katalvlaran/genonet/sitemap"
)

// UnknownColor is the fixed color of sitemap.Unknown.
const UnknownColor = "#B4B4B4"

// Palette is the fixed site color cycle. Sites beyond its length wrap around.
var Palette = []string{
	"#27AEEF", "#E6C050", "#D95F4B", "#006400",
	"#F096FF", "#0064C8", "#0096A0", "#FFBB22",
	"#8E44AD", "#2ECC71", "#E67E22", "#34495E",
}

// AssignColors maps every distinct label in sites to a color: Unknown to
// UnknownColor, the others by their index in sorted order into Palette.
// Complexity: O(S log S).
func AssignColors(sites []string) map[string]string {
	distinct := make(map[string]struct{}, len(sites))
	for _, s := range sites {
		distinct[s] = struct{}{}
	}

	labels := make([]string, 0, len(distinct))
	for s := range distinct {
		if s != sitemap.Unknown {
			labels = append(labels, s)
		}
	}
	sort.Strings(labels)

	colors := make(map[string]string, len(distinct))
	for i, s := range labels {
		colors[s] = Palette[i%len(Palette)]
	}
	if _, ok := distinct[sitemap.Unknown]; ok {
		colors[sitemap.Unknown] = UnknownColor
	}

	return colors
}
