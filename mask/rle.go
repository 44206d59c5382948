package mask

import (
	"fmt"
	"strings"
	"unicode"
)

// decoder tracks the cursor state of one RLE parse.
type decoder struct {
	mask          *Mask
	width, height int // 0 = not yet declared
	count         int // pending repeat count
	index         int // row-major cursor into the buffer
}

// take consumes the pending repeat count, defaulting to 1.
func (d *decoder) take() int {
	n := d.count
	d.count = 0
	if n < 1 {
		return 1
	}
	return n
}

// allocate builds the all-on buffer once both dimensions are known.
func (d *decoder) allocate() {
	if d.mask == nil && d.width > 0 && d.height > 0 {
		d.mask, _ = New(d.height, d.width)
	}
}

// Decode parses RLE text into a Mask. Decoding is fail-fast: the first
// malformed character aborts with no partial mask.
// Returns ErrInvalidCharacter, ErrDuplicateDimension, ErrDimensionsNotSet,
// or ErrIndexOutOfRange as described in the package grammar.
// Complexity: O(len(text) + rows×columns).
func Decode(text string) (*Mask, error) {
	var d decoder
	for i, ch := range text {
		switch {
		case unicode.IsSpace(ch):
			continue
		case ch >= '0' && ch <= '9':
			d.count = d.count*10 + int(ch-'0')
		case ch == 'w':
			if d.width != 0 {
				return nil, fmt.Errorf("%w: width already %d", ErrDuplicateDimension, d.width)
			}
			d.width = d.take()
			d.allocate()
		case ch == 'h':
			if d.height != 0 {
				return nil, fmt.Errorf("%w: height already %d", ErrDuplicateDimension, d.height)
			}
			d.height = d.take()
			d.allocate()
		case ch == 'o':
			if d.mask == nil {
				return nil, fmt.Errorf("%w: occupancy before dimensions", ErrDimensionsNotSet)
			}
			for n := d.take(); n > 0; n-- {
				if err := d.mask.Set(d.index/d.width, d.index%d.width, false); err != nil {
					return nil, err
				}
				d.index++
			}
		case ch == '.':
			if d.mask == nil {
				return nil, fmt.Errorf("%w: skip before dimensions", ErrDimensionsNotSet)
			}
			d.index += d.take()
		case ch == '$':
			if d.width == 0 {
				return nil, fmt.Errorf("%w: row end before width", ErrDimensionsNotSet)
			}
			d.index += d.width - d.index%d.width
		case ch == '!':
			if d.mask == nil {
				return nil, fmt.Errorf("%w: no dimensions declared", ErrDimensionsNotSet)
			}
			return d.mask, nil
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, ch, i)
		}
	}
	if d.mask == nil {
		return nil, fmt.Errorf("%w: no dimensions declared", ErrDimensionsNotSet)
	}

	return d.mask, nil
}

// Encode renders the mask as RLE text: a "{rows}h{columns}w" header
// followed by the run-length-encoded row-major cell sequence, '.' for
// on runs and 'o' for off runs, leading counts of 1 omitted.
// Decode(Encode(m)) reproduces m cell for cell.
func (m *Mask) Encode() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dh%dw", m.rows, m.columns)

	emit := func(on bool, n int) {
		if n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
		if on {
			b.WriteByte('.')
		} else {
			b.WriteByte('o')
		}
	}

	current, run := m.on[0][0], 0
	for _, row := range m.on {
		for _, v := range row {
			if v == current {
				run++
				continue
			}
			emit(current, run)
			current, run = v, 1
		}
	}
	emit(current, run)

	return b.String()
}
