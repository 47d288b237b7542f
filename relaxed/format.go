package relaxed

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func bitSize[F constraints.Float]() int {
	return int(unsafe.Sizeof(F(0))) * 8
}

// String formats the held value exactly as fmt's %v renders the bare
// primitive.
func (x Float[F]) String() string {
	return strconv.FormatFloat(float64(x.v), 'g', -1, bitSize[F]())
}

// Format implements fmt.Formatter, forwarding the verb, flags, width and
// precision to the primitive so that wrapped and bare values render
// character-for-character identically under every floating-point verb
// (%v, %g, %G, %e, %E, %f, %x, %X, %b).
func (x Float[F]) Format(s fmt.State, verb rune) {
	layout := make([]byte, 0, 8)
	layout = append(layout, '%')
	for _, flag := range []int{'+', '-', '#', ' ', '0'} {
		if s.Flag(flag) {
			layout = append(layout, byte(flag))
		}
	}
	if w, ok := s.Width(); ok {
		layout = strconv.AppendInt(layout, int64(w), 10)
	}
	if p, ok := s.Precision(); ok {
		layout = append(layout, '.')
		layout = strconv.AppendInt(layout, int64(p), 10)
	}
	layout = append(layout, string(verb)...)
	fmt.Fprintf(s, string(layout), x.v)
}
