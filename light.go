package pixelforge

import (
	math "github.com/chewxy/math32"

	"github.com/gogpu/pixelforge/math3"
)

// Light is one fixed-function light source. Positions and directions
// are given in eye space. A position with W=0 is directional, W=1
// positional. A spot cutoff of 180 degrees disables the cone.
type Light struct {
	enabled bool

	position math3.Vec4

	ambient  [4]float32
	diffuse  [4]float32
	specular [4]float32

	spotDirection math3.Vec3
	spotCutoff    float32 // degrees
	spotExponent  float32

	attenuation [3]float32 // constant, linear, quadratic
}

func defaultLight(index int) Light {
	l := Light{
		position:      math3.Vec4{X: 0, Y: 0, Z: 1, W: 0},
		spotDirection: math3.Vec3{X: 0, Y: 0, Z: -1},
		spotCutoff:    180,
		attenuation:   [3]float32{1, 0, 0},
	}
	l.ambient[3] = 1
	l.diffuse[3] = 1
	l.specular[3] = 1
	if index == 0 {
		l.diffuse = [4]float32{1, 1, 1, 1}
		l.specular = [4]float32{1, 1, 1, 1}
	}
	return l
}

// lightIndex maps a LIGHT0..LIGHT7 capability to its slot, or -1.
func lightIndex(cap Capability) int {
	if cap < Light0 || cap > Light7 {
		return -1
	}
	return int(cap - Light0)
}

// Lightfv sets a parameter of one light. The light argument must be
// one of the Light0..Light7 capabilities. Scalar parameters read one
// value; POSITION reads four; colors read four; SPOT_DIRECTION reads
// three.
func (c *Context) Lightfv(light Capability, param LightParam, values []float32) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	i := lightIndex(light)
	if i < 0 {
		c.setError(InvalidEnum)
		return
	}
	l := &c.lights[i]
	switch param {
	case Position:
		if len(values) < 4 {
			c.setError(InvalidValue)
			return
		}
		l.position = math3.Vec4{X: values[0], Y: values[1], Z: values[2], W: values[3]}
	case SpotDirection:
		if len(values) < 3 {
			c.setError(InvalidValue)
			return
		}
		l.spotDirection = math3.Vec3{X: values[0], Y: values[1], Z: values[2]}
	case Ambient, Diffuse, Specular:
		if len(values) < 4 {
			c.setError(InvalidValue)
			return
		}
		dst := &l.ambient
		if param == Diffuse {
			dst = &l.diffuse
		} else if param == Specular {
			dst = &l.specular
		}
		copy(dst[:], values[:4])
	case SpotCutoff:
		if len(values) < 1 || (values[0] != 180 && (values[0] < 0 || values[0] > 90)) {
			c.setError(InvalidValue)
			return
		}
		l.spotCutoff = values[0]
	case SpotExponent:
		if len(values) < 1 || values[0] < 0 || values[0] > 128 {
			c.setError(InvalidValue)
			return
		}
		l.spotExponent = values[0]
	case ConstantAttenuation, LinearAttenuation, QuadraticAttenuation:
		if len(values) < 1 || values[0] < 0 {
			c.setError(InvalidValue)
			return
		}
		l.attenuation[int(param-ConstantAttenuation)] = values[0]
	default:
		c.setError(InvalidEnum)
	}
}

// EnableLight turns on one light slot. Equivalent to Enable(light).
func (c *Context) EnableLight(light Capability) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	i := lightIndex(light)
	if i < 0 {
		c.setError(InvalidEnum)
		return
	}
	c.lights[i].enabled = true
}

// DisableLight turns off one light slot. Equivalent to Disable(light).
func (c *Context) DisableLight(light Capability) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	i := lightIndex(light)
	if i < 0 {
		c.setError(InvalidEnum)
		return
	}
	c.lights[i].enabled = false
}

// lightVertex evaluates the fixed-function lighting model for one
// vertex. eyePos and normal are in eye space, normal unit length.
// base is the vertex's latched color, substituted into the material
// when color-material is enabled.
func (c *Context) lightVertex(eyePos, normal math3.Vec3, base Color) Color {
	mAmbient := c.material.ambient
	mDiffuse := c.material.diffuse
	mSpecular := c.material.specular
	mEmission := c.material.emission
	if c.isEnabled(ColorMaterial) {
		bc := [4]float32{
			float32(base.R) / 255,
			float32(base.G) / 255,
			float32(base.B) / 255,
			float32(base.A) / 255,
		}
		switch c.colorMaterialMode {
		case MaterialAmbient:
			mAmbient = bc
		case MaterialDiffuse:
			mDiffuse = bc
		case AmbientAndDiffuse:
			mAmbient = bc
			mDiffuse = bc
		case MaterialSpecular:
			mSpecular = bc
		case MaterialEmission:
			mEmission = bc
		}
	}

	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = mEmission[i] + c.globalAmbient[i]*mAmbient[i]
	}

	view := math3.Unit(math3.Neg(eyePos))
	for li := range c.lights {
		l := &c.lights[li]
		if !l.enabled {
			continue
		}

		var L math3.Vec3
		attenuation := float32(1)
		if l.position.W == 0 {
			// A directional light's position vector points toward
			// the light.
			L = math3.Unit(math3.Vec3FromVec4(l.position))
		} else {
			toLight := math3.Sub(math3.Vec3FromVec4(l.position), eyePos)
			d := math3.Norm(toLight)
			L = math3.Unit(toLight)
			attenuation = 1 / (l.attenuation[0] + l.attenuation[1]*d + l.attenuation[2]*d*d)
		}

		spot := float32(1)
		if l.spotCutoff < 180 {
			cosAngle := math3.Dot(math3.Unit(l.spotDirection), math3.Neg(L))
			if cosAngle < math.Cos(math3.DegToRad(l.spotCutoff)) {
				spot = 0
			} else {
				spot = math.Pow(cosAngle, l.spotExponent)
			}
		}
		if spot == 0 {
			continue
		}

		nDotL := math.Max(math3.Dot(normal, L), 0)

		specular := float32(0)
		if nDotL > 0 && c.material.shininess >= 0 {
			reflected := math3.Sub(math3.Scale(2*math3.Dot(normal, L), normal), L)
			rDotV := math.Max(math3.Dot(reflected, view), 0)
			if rDotV > 0 {
				specular = math.Pow(rDotV, c.material.shininess)
			}
		}

		scale := attenuation * spot
		for i := 0; i < 3; i++ {
			out[i] += scale * (l.ambient[i]*mAmbient[i] +
				nDotL*l.diffuse[i]*mDiffuse[i] +
				specular*l.specular[i]*mSpecular[i])
		}
	}

	return ColorFromFloats(out[0], out[1], out[2], mDiffuse[3])
}
