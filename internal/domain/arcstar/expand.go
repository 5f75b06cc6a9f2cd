package arcstar

import (
	"math"

	"github.com/okian/arcstar/internal/domain/model"
)

// freshest returns the index and value of the strictly largest element.
// Ties keep the first occurrence; an all-zero ring yields (0, 0).
func freshest(vals []model.Time) (idx int, val model.Time) {
	for i, v := range vals {
		if v > val {
			idx, val = i, v
		}
	}
	return idx, val
}

// expandArc grows an arc outward from vals[start] in both directions,
// always stepping toward the fresher neighbor, and returns the length of the
// contiguous arc whose elements stay at or above the oldest value admitted
// so far. The first minArc elements are admitted unconditionally.
func expandArc(vals []model.Time, minArc, start int) int {
	n := len(vals)
	cw := (start + 1) % n
	ccw := (start + n - 1) % n

	cwVal, ccwVal := vals[cw], vals[ccw]
	cwOldest, ccwOldest := cwVal, ccwVal
	segOldest := model.Time(math.MaxUint32)

	for step := 1; step < minArc; step++ {
		if cwVal > ccwVal {
			segOldest = min(segOldest, cwOldest)
			cw = (cw + 1) % n
			cwVal = vals[cw]
			cwOldest = min(cwOldest, cwVal)
		} else {
			segOldest = min(segOldest, ccwOldest)
			ccw = (ccw + n - 1) % n
			ccwVal = vals[ccw]
			ccwOldest = min(ccwOldest, ccwVal)
		}
	}

	length := minArc
	for step := minArc; step < n; step++ {
		if cwVal > ccwVal {
			if cwVal >= segOldest {
				length = step + 1
				segOldest = min(segOldest, cwOldest)
			}
			cw = (cw + 1) % n
			cwVal = vals[cw]
			cwOldest = min(cwOldest, cwVal)
		} else {
			if ccwVal >= segOldest {
				length = step + 1
				segOldest = min(segOldest, ccwOldest)
			}
			ccw = (ccw + n - 1) % n
			ccwVal = vals[ccw]
			ccwOldest = min(ccwOldest, ccwVal)
		}
	}
	return length
}
