package imagepkg

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// SeedRange bounds the style seed.
const SeedRange = 10000

type StripeOrientation int

const (
	StripeHorizontal StripeOrientation = iota
	StripeVertical
)

type HandleStyle int

const (
	HandleArc HandleStyle = iota
	HandleRounded
)

type WheelStyle int

const (
	WheelRound WheelStyle = iota
	WheelSquare
)

type StickerKind int

const (
	StickerCircle StickerKind = iota
	StickerStar
)

// stickerAnchors are body-relative sticker centers, indexed by Sticker.Position.
var stickerAnchors = [4][2]float64{
	{0.25, 0.30},
	{0.75, 0.30},
	{0.25, 0.70},
	{0.75, 0.70},
}

// Sticker is the optional decal on the suitcase body.
type Sticker struct {
	Kind       StickerKind
	Position   int
	ColorIndex int
}

// StyleVariant is the full set of stylistic choices for one product.
type StyleVariant struct {
	BackgroundIndex int
	Gradient        bool
	Stripe          StripeOrientation
	Handle          HandleStyle
	Wheel           WheelStyle
	WheelSpacing    float64
	Sticker         *Sticker
}

// Seed hashes the product identity into [0, SeedRange).
func Seed(text, color, size string) int64 {
	return int64(xxhash.Sum64String(text+color+size) % SeedRange)
}

// SelectStyle derives the seed and the style variant for a product.
// The same triple always yields the same variant.
func SelectStyle(text, color, size string, pal Palette) (int64, StyleVariant) {
	seed := Seed(text, color, size)
	return seed, variantFromRand(rand.New(rand.NewSource(seed)), pal)
}

// variantFromRand consumes rng in a fixed order; reordering these draws
// changes every generated image.
func variantFromRand(rng *rand.Rand, pal Palette) StyleVariant {
	var v StyleVariant
	v.BackgroundIndex = rng.Intn(max(len(pal.Backgrounds), 1))
	v.Gradient = rng.Intn(2) == 1
	v.Stripe = StripeOrientation(rng.Intn(2))
	v.Handle = HandleStyle(rng.Intn(2))
	v.Wheel = WheelStyle(rng.Intn(2))
	v.WheelSpacing = 0.06 + rng.Float64()*0.06
	if rng.Intn(3) == 0 {
		v.Sticker = &Sticker{
			Kind:       StickerKind(rng.Intn(2)),
			Position:   rng.Intn(len(stickerAnchors)),
			ColorIndex: rng.Intn(max(len(pal.StickerColors), 1)),
		}
	}
	return v
}
