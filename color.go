package gridmesh

import "math"

// PackedColor stores four 8-bit channels in one 32-bit value: byte 0 is red,
// byte 1 green, byte 2 blue, byte 3 alpha. This is the layout the shader
// unpacks with shift/mask, so the Go side and the WGSL side must agree.
type PackedColor uint32

// PackColor packs four 8-bit channels.
func PackColor(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// PackColorF packs normalized channels, rounding each to the nearest of the
// 256 representable values. Inputs outside [0,1] are clamped.
func PackColorF(r, g, b, a float32) PackedColor {
	return PackColor(channelByte(r), channelByte(g), channelByte(b), channelByte(a))
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255.0))
}

// Bytes returns the four raw channels.
func (c PackedColor) Bytes() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Unpack normalizes each channel to [0,1], mirroring the vertex stage.
func (c PackedColor) Unpack() (r, g, b, a float32) {
	return float32(c&0xFF) / 255.0,
		float32(c>>8&0xFF) / 255.0,
		float32(c>>16&0xFF) / 255.0,
		float32(c>>24&0xFF) / 255.0
}
