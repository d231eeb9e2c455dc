package grading

import (
	"math"
)

// ColorMatrix is a 4x4 matrix applied to RGBA pixel values in the
// [0, 1] range. Row-major: out[i] = sum_j m[i][j] * in[j].
type ColorMatrix [4][4]float64

// IdentityMatrix returns the identity color matrix.
func IdentityMatrix() ColorMatrix {
	var m ColorMatrix
	for i := 0; i < 4; i++ {
		m[i][i] = 1.0
	}
	return m
}

// DiagonalMatrix returns a diagonal color matrix with the given channel
// scales and alpha passed through.
func DiagonalMatrix(r, g, b float64) ColorMatrix {
	m := IdentityMatrix()
	m[0][0] = r
	m[1][1] = g
	m[2][2] = b
	return m
}

// Mul returns m * other, the matrix that applies other first and m
// second.
func (m ColorMatrix) Mul(other ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// ChannelScales returns the diagonal of the matrix for the three color
// channels. Valid for the matrices this package produces, which are all
// diagonal.
func (m ColorMatrix) ChannelScales() (r, g, b float64) {
	return m[0][0], m[1][1], m[2][2]
}

// Transform describes one grading pass as two stages in fixed order:
// temperature correction first, channel gain second. Channel gains are
// defined relative to the temperature-corrected image, so reordering the
// stages changes the visual result.
type Transform struct {
	// Temperature is the white-point correction stage. Nil when the
	// temperature input was degenerate; the gain stage then applies to
	// the uncorrected image (silent fallback, not an error).
	Temperature *ColorMatrix

	// Gain is the diagonal channel gain stage, diag(r, g, b, 1).
	Gain ColorMatrix
}

// BuildTransform maps grading parameters to a transform description.
// Pure and stateless; execution is delegated to the render context.
func BuildTransform(params Parameters) Transform {
	t := Transform{
		Gain: DiagonalMatrix(params.RedGain, params.GreenGain, params.BlueGain),
	}
	if wp, ok := whitePointScales(params.Temperature); ok {
		m := DiagonalMatrix(wp[0], wp[1], wp[2])
		t.Temperature = &m
	}
	return t
}

// Compose collapses the two stages into the single matrix to execute:
// gain applied after temperature correction.
func (t Transform) Compose() ColorMatrix {
	if t.Temperature == nil {
		return t.Gain
	}
	return t.Gain.Mul(*t.Temperature)
}

// whitePointScales derives per-channel multipliers that shift the image
// white point toward the given color temperature. Normalized against the
// neutral temperature so 6500K is exactly the identity; lower values
// bias warm, higher values bias cool. Returns false for degenerate
// temperatures that produce no usable correction.
func whitePointScales(kelvin float64) ([3]float64, bool) {
	if math.IsNaN(kelvin) || math.IsInf(kelvin, 0) || kelvin <= 0 {
		return [3]float64{}, false
	}

	tr, tg, tb := kelvinToRGB(kelvin)
	nr, ng, nb := kelvinToRGB(NeutralTemperature)

	scales := [3]float64{tr / nr, tg / ng, tb / nb}
	for _, s := range scales {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return [3]float64{}, false
		}
	}
	return scales, true
}

// kelvinToRGB converts a color temperature in Kelvin to RGB multipliers
// in the range 0.0-1.0 using the Tanner Helland approximation. At 2700K
// the result is roughly (1, 0.65, 0.34); toward 9000K blue dominates.
func kelvinToRGB(kelvin float64) (r, g, b float64) {
	temp := kelvin / 100.0

	if temp <= 66 {
		r = 1.0
	} else {
		r = 329.698727446 * math.Pow(temp-60, -0.1332047592) / 255.0
	}

	if temp <= 66 {
		g = (99.4708025861*math.Log(temp) - 161.1195681661) / 255.0
	} else {
		g = 288.1221695283 * math.Pow(temp-60, -0.0755148492) / 255.0
	}

	if temp >= 66 {
		b = 1.0
	} else if temp <= 19 {
		b = 0.0
	} else {
		b = (138.5177312231*math.Log(temp-10) - 305.0447927307) / 255.0
	}

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	b = math.Max(0, math.Min(1, b))
	return
}
