package world

import (
	"encoding/binary"
	"math"

	"github.com/automoto/tilewalk/actors"
	"github.com/cespare/xxhash/v2"
)

// checksum fingerprints the mutable state of every sprite in tick order.
// Two worlds built from the same level and fed the same input produce the
// same sequence of checksums.
func checksum(list []actors.Actor) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 40)
	for _, a := range list {
		s, ok := a.(*actors.Sprite)
		if !ok {
			continue
		}
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Position.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Position.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Velocity.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Velocity.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Clock()))
		_, _ = d.Write(buf)
		_, _ = d.WriteString(s.SequenceName())
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
