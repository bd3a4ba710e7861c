package pixelforge

// The immediate-mode assembler is a state machine: Begin moves it from
// IDLE into one of the primitive modes, vertices accumulate in a small
// scratch ring, and complete primitives flush through the pipeline as
// soon as their last vertex arrives. End flushes any residue (the
// LINE_LOOP closing segment) and returns to IDLE.

// assemblerActive reports whether a Begin/End pair is open.
func (c *Context) assemblerActive() bool {
	return c.primMode != modeIdle
}

// Begin opens a primitive of the given mode. Calling Begin while a
// primitive is active latches INVALID_OPERATION and leaves the active
// primitive undisturbed.
func (c *Context) Begin(mode PrimitiveMode) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !mode.valid() {
		c.setError(InvalidEnum)
		return
	}
	c.primMode = mode
	c.primCount = 0
	c.pending = c.pending[:0]
}

// End closes the open primitive, flushing any residue. End without a
// matching Begin latches INVALID_OPERATION.
func (c *Context) End() {
	if !c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if c.primMode == LineLoop && c.primCount >= 2 {
		c.processLine(c.lineVert, c.loopFirst)
	}
	// Incomplete primitives of other modes are discarded.
	c.primMode = modeIdle
	c.pending = c.pending[:0]
}

// appendVertex feeds one vertex into the open primitive, flushing
// whenever the mode's arity completes.
func (c *Context) appendVertex(v vertex) {
	i := c.primCount
	c.primCount++

	switch c.primMode {
	case Points:
		c.processPoint(v)

	case Lines:
		if i%2 == 0 {
			c.lineVert = v
		} else {
			c.processLine(c.lineVert, v)
		}

	case LineStrip:
		if i > 0 {
			c.processLine(c.lineVert, v)
		}
		c.lineVert = v

	case LineLoop:
		if i == 0 {
			c.loopFirst = v
		} else {
			c.processLine(c.lineVert, v)
		}
		c.lineVert = v

	case Triangles:
		c.pending = append(c.pending, v)
		if len(c.pending) == 3 {
			c.processPolygon(c.pending, 2)
			c.pending = c.pending[:0]
		}

	case TriangleStrip:
		if i < 2 {
			c.pending = append(c.pending, v)
			return
		}
		a, b := c.pending[0], c.pending[1]
		if i%2 == 0 {
			c.processPolygon([]vertex{a, b, v}, 2)
		} else {
			// Odd triangles swap the leading pair to keep a
			// consistent winding along the strip.
			c.processPolygon([]vertex{b, a, v}, 2)
		}
		c.pending[0], c.pending[1] = b, v

	case TriangleFan:
		if i == 0 {
			c.loopFirst = v
			return
		}
		if i >= 2 {
			c.processPolygon([]vertex{c.loopFirst, c.lineVert, v}, 2)
		}
		c.lineVert = v

	case Quads:
		c.pending = append(c.pending, v)
		if len(c.pending) == 4 {
			// Rasterized as the two triangles 0-1-2 and 0-2-3 by the
			// fan triangulation downstream.
			c.processPolygon(c.pending, 3)
			c.pending = c.pending[:0]
		}

	case QuadStrip:
		c.pending = append(c.pending, v)
		if i >= 3 && i%2 == 1 {
			// Vertices arrive as v0 v1 v2 v3 ...; each completed pair
			// closes the quad v0-v1-v3-v2.
			q0, q1, c0, c1 := c.pending[0], c.pending[1], c.pending[2], c.pending[3]
			c.processPolygon([]vertex{q0, q1, c1, c0}, 2)
			c.pending = c.pending[:0]
			c.pending = append(c.pending, c0, c1)
		}
	}
}
