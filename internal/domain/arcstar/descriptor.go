package arcstar

import "github.com/okian/arcstar/internal/domain/model"

// buildDescriptor normalizes both rings against the freshest value across
// them. Each ring is walked from its own freshest index, inner ring first.
// It returns false when there is nothing to normalize against.
func buildDescriptor(c3 []model.Time, i3 int, c4 []model.Time, i4 int, top model.Time) (model.Descriptor, bool) {
	var d model.Descriptor
	if top == 0 {
		return d, false
	}

	f := float64(top)
	k := 0
	for _, vals := range [...]struct {
		ring  []model.Time
		start int
	}{{c3, i3}, {c4, i4}} {
		n := len(vals.ring)
		for j := 0; j < n; j++ {
			v := float64(vals.ring[(vals.start+j)%n])
			d[k] = 1 - (f-v)/f
			k++
		}
	}
	return d, true
}
