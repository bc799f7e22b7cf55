// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/lielath/lie"

// SL2 returns a Constructor for sl(2) in the Chevalley basis e, f, h with
// [e,f] = h, [h,e] = 2e, [h,f] = -2f. It is simple, so its only ideals are
// 0 and itself.
func SL2() Constructor {
	return func(_ builderConfig) (table, error) {
		return table{
			name:  "sl2",
			basis: []string{"e", "f", "h"},
			relations: []lie.Option{
				lie.WithRelation("e", "f", "h"),
				lie.WithRelation("h", "e", "2*e"),
				lie.WithRelation("h", "f", "-2*f"),
			},
		}, nil
	}
}
