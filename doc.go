// Package pixelforge is a CPU-only fixed-function 3D rasterization
// engine. Given a caller-owned pixel buffer it draws colored, lit,
// textured primitives — points, lines, triangles, quads and their
// strip/fan/loop variants — with no GPU or windowing dependency.
//
// # Quick Start
//
//	buf := make([]byte, 640*480*4)
//	ctx, err := pixelforge.ContextCreate(buf, 640, 480,
//		pixelforge.PixelFormatR8G8B8A8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pixelforge.ContextDestroy(ctx)
//
//	ctx.Viewport(0, 0, 640, 480)
//	ctx.MatrixMode(pixelforge.Projection)
//	ctx.LoadIdentity()
//	ctx.Ortho(0, 640, 480, 0, 0, 1) // origin at the upper-left corner
//	ctx.MatrixMode(pixelforge.ModelView)
//	ctx.LoadIdentity()
//
//	ctx.ClearColor(pixelforge.Black)
//	ctx.Clear(pixelforge.ColorBufferBit)
//
//	ctx.Begin(pixelforge.Triangles)
//	ctx.Color3f(1, 0, 0)
//	ctx.Vertex2f(100, 100)
//	ctx.Color3f(0, 1, 0)
//	ctx.Vertex2f(540, 100)
//	ctx.Color3f(0, 0, 1)
//	ctx.Vertex2f(320, 400)
//	ctx.End()
//
// The pipeline is the classic fixed-function one: an immediate-mode
// assembler feeds vertices through the modelview and projection matrix
// stacks, an optional per-vertex lighting evaluator, a six-plane
// frustum clipper, and a perspective-correct scanline rasterizer with
// depth testing and nearest-filtered texturing.
//
// # Current context
//
// All drawing state lives in a Context and every operation is a method
// on it. For callers porting fixed-function code, the package also
// exposes the same surface as package-level functions operating on the
// context installed with MakeCurrent; without one they are no-ops and
// GetError reports NO_CONTEXT.
//
// A context is not safe for concurrent use. Goroutines may render
// concurrently into distinct contexts whose color buffers do not
// alias.
//
// # Errors
//
// Recoverable errors never panic. Each context latches the first error
// code since the last GetError read; subsequent errors are dropped
// until the slot is read.
package pixelforge
