package layout

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/choice/niche"
)

// Calculator computes and caches layout decisions. The zero Calculator is
// not usable; construct with NewCalculator.
type Calculator struct {
	cache map[string]Info
}

// NewCalculator returns a Calculator with an empty cache.
func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[string]Info),
	}
}

// Select returns the storage strategy for shape: niched iff the shape has
// exactly two alternatives, exactly one of them statically empty and
// trivially constructible, and the other niche-bearing. Everything else
// falls back to tagged.
func (c *Calculator) Select(shape Shape) Decision {
	if len(shape.Alts) != 2 {
		return Tagged
	}
	a, b := shape.Alts[0], shape.Alts[1]
	aEmpty, bEmpty := emptyType(a), emptyType(b)
	switch {
	case aEmpty && !bEmpty && niche.HasType(b):
		return NichedSecond
	case bEmpty && !aEmpty && niche.HasType(a):
		return NichedFirst
	default:
		return Tagged
	}
}

// Calculate returns the canonical representation info for shape.
func (c *Calculator) Calculate(shape Shape) Info {
	key := shape.key()
	if cached, ok := c.cache[key]; ok {
		return cached
	}

	var info Info
	decision := c.Select(shape)
	switch decision {
	case NichedFirst:
		info = nichedInfo(shape.Alts[0], decision)
	case NichedSecond:
		info = nichedInfo(shape.Alts[1], decision)
	default:
		info = c.taggedInfo(shape)
	}

	Logger().Debug("layout selected",
		zap.String("shape", key),
		zap.String("decision", decision.String()),
		zap.Uint64("size", uint64(info.Size)),
		zap.Uint64("align", uint64(info.Align)),
	)

	c.cache[key] = info
	return info
}

func nichedInfo(payload reflect.Type, d Decision) Info {
	return Info{
		Size:     payload.Size(),
		Align:    uintptr(payload.Align()),
		Decision: d,
	}
}

func (c *Calculator) taggedInfo(shape Shape) Info {
	discSize := DiscriminantSize(len(shape.Alts))

	maxAlign := discSize
	if maxAlign == 0 {
		maxAlign = 1
	}
	maxSize := uintptr(0)

	for _, alt := range shape.Alts {
		if a := uintptr(alt.Align()); a > maxAlign {
			maxAlign = a
		}
		if s := alt.Size(); s > maxSize {
			maxSize = s
		}
	}

	payloadOffset := AlignTo(discSize, maxAlign)
	totalSize := AlignTo(payloadOffset+maxSize, maxAlign)

	return Info{
		Size:          totalSize,
		Align:         maxAlign,
		DiscSize:      discSize,
		PayloadOffset: payloadOffset,
		Decision:      Tagged,
	}
}

// emptyType reports whether t is statically empty and trivially
// constructible: zero size and no reference semantics to speak of.
func emptyType(t reflect.Type) bool {
	return t.Size() == 0
}
