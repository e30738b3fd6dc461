package skim

import "fmt"

// ContainerBits is the fixed width of a packed cut container.
const ContainerBits = 64

// ContainerLayout assigns each criterion of a selection a disjoint,
// contiguous bit range inside one uint64 cut container. Range i starts at
// Offset(i) and spans Width(i) bits, the variant count of criterion i.
//
// The layout is validated once at configuration time: the total packed width
// must not exceed ContainerBits. A candidate value can then be encoded per
// criterion with CutVariantSet.Mask and packed without any further checks.
type ContainerLayout struct {
	offsets []int
	widths  []int
	total   int
}

// NewContainerLayout builds a layout for the given per-criterion variant
// counts, in criterion order. It returns an error if any width is not
// positive or the ranges together exceed ContainerBits; this is a
// configuration error and must abort initialization, never truncate.
func NewContainerLayout(widths []int) (*ContainerLayout, error) {
	l := &ContainerLayout{
		offsets: make([]int, len(widths)),
		widths:  make([]int, len(widths)),
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("criterion %d: variant count must be positive, got %d", i, w)
		}
		l.offsets[i] = l.total
		l.widths[i] = w
		l.total += w
	}
	if l.total > ContainerBits {
		return nil, fmt.Errorf("packed cut width %d exceeds container capacity %d bits", l.total, ContainerBits)
	}
	return l, nil
}

// NCriteria returns the number of criteria in the layout.
func (l *ContainerLayout) NCriteria() int { return len(l.widths) }

// Width returns the bit width allotted to criterion i.
func (l *ContainerLayout) Width(i int) int { return l.widths[i] }

// Offset returns the starting bit of criterion i's range.
func (l *ContainerLayout) Offset(i int) int { return l.offsets[i] }

// TotalBits returns the total packed width.
func (l *ContainerLayout) TotalBits() int { return l.total }

// Pack assembles per-criterion variant masks into one container value.
// masks[i] must be the Mask output of criterion i's variant set, so it is
// guaranteed to fit the allotted width.
func (l *ContainerLayout) Pack(masks []uint64) uint64 {
	var container uint64
	for i, m := range masks {
		container |= m << uint(l.offsets[i])
	}
	return container
}

// Extract recovers the variant mask of criterion i from a packed container.
func (l *ContainerLayout) Extract(container uint64, i int) uint64 {
	return (container >> uint(l.offsets[i])) & ((1 << uint(l.widths[i])) - 1)
}

// AllSet reports whether every variant bit of every criterion is set in the
// container, i.e. the candidate passed the tightest configured variation of
// every cut.
func (l *ContainerLayout) AllSet(container uint64) bool {
	for i := range l.widths {
		full := uint64(1)<<uint(l.widths[i]) - 1
		if l.Extract(container, i) != full {
			return false
		}
	}
	return true
}
