package main

import (
	"context"
	"errors"
	"math"
	"syscall/js"
	"time"

	"fortio.org/log"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/globeview/geoloc"
	"github.com/seqsense/globeview/orient"
)

const (
	containerID   = "earth-container"
	maxPixelRatio = 2.0
	pointSizeBase = 6.0
)

var (
	globeColor = mat.Vec3{0.25, 0.55, 0.95}
	cloudColor = mat.Vec3{1, 1, 1}
)

const (
	globeAlpha = 1.0
	cloudAlpha = 0.35
)

func loadConfig() *appConfig {
	b, err := fetchGet(configPath)
	if err != nil {
		if errors.Is(err, errFetchNotFound) {
			log.Infof("No %s, using defaults", configPath)
		} else {
			log.Warnf("Failed to load config, using defaults: %v", err)
		}
		return defaultAppConfig()
	}
	c, err := parseConfig(b)
	if err != nil {
		log.Errf("Invalid config, using defaults: %v", err)
		return defaultAppConfig()
	}
	return c
}

type mesh struct {
	buf    webgl.Buffer
	points int
	stride int
}

func uploadMesh(gl *webgl.WebGL, pp *pc.PointCloud) mesh {
	buf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(pp.Data), gl.STATIC_DRAW)
	return mesh{buf: buf, points: pp.Points, stride: pp.Stride()}
}

func main() {
	cfg := loadConfig()
	if err := cfg.apply(); err != nil {
		log.Warnf("Invalid log level %q: %v", cfg.LogLevel, err)
	}

	doc := js.Global().Get("document")
	container := doc.Call("getElementById", containerID)
	if container.IsNull() {
		log.Errf("Element #%s not found", containerID)
		return
	}
	canvas := doc.Call("createElement", "canvas")
	canvas.Get("style").Set("width", "100%")
	canvas.Get("style").Set("height", "100%")
	container.Set("innerHTML", "")
	container.Call("appendChild", canvas)

	gl, err := webgl.New(canvas)
	if err != nil {
		log.Errf("Failed to initialize WebGL: %v", err)
		return
	}
	showDebugInfo(gl)

	program, err := newGlobeProgram(gl)
	if err != nil {
		log.Errf("Failed to initialize shaders: %v", err)
		return
	}
	uProjectionMatrix := gl.GetUniformLocation(program, "uProjectionMatrix")
	uModelViewMatrix := gl.GetUniformLocation(program, "uModelViewMatrix")
	uPointSizeBase := gl.GetUniformLocation(program, "uPointSizeBase")
	uDistance := gl.GetUniformLocation(program, "uDistance")
	uColor := gl.GetUniformLocation(program, "uColor")
	uAlpha := gl.GetUniformLocation(program, "uAlpha")

	globePoints, err := newSpherePoints(globeRadius, globeLatSteps, globeLonSteps)
	if err != nil {
		log.Errf("Failed to build globe: %v", err)
		return
	}
	cloudPoints, err := newSpherePoints(cloudRadius, cloudLatSteps, cloudLonSteps)
	if err != nil {
		log.Errf("Failed to build cloud layer: %v", err)
		return
	}
	globe := uploadMesh(gl, globePoints)
	clouds := uploadMesh(gl, cloudPoints)

	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(program)
	aVertexPosition := 0
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.Uniform1f(uPointSizeBase, pointSizeBase)

	ctl := orient.NewController(cfg.Globe, nil)
	defer ctl.Close()

	pn := newPanel(doc)
	ctl.OnPhase(pn.setPhase)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Geolocation.Enabled {
		ctl.ResolveDriftTarget(ctx, geoloc.NewClient(cfg.Geolocation))
	}

	con := &console{ctl: ctl}
	js.Global().Set("globeConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			return consoleResult(con.Run(args[0].String()))
		}),
	)

	g := newGesture(ctl)
	chPointer := make(chan pointerEvent)
	bindPointerEvents(container, doc, func() bool {
		return ctl.Mode() == orient.ModeDragging
	}, chPointer)

	chOpen := make(chan struct{})
	chClose := make(chan struct{})
	bindPanel(pn, chOpen, chClose)

	chContextLost := make(chan struct{}, 1)
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		e.PreventDefault()
		select {
		case chContextLost <- struct{}{}:
		default:
		}
	})

	chFrame := make(chan float64, 1)
	requestFrame := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chFrame <- args[0].Float():
		default:
		}
		return nil
	})
	defer requestFrame.Release()
	js.Global().Call("requestAnimationFrame", requestFrame)

	vi := newView()
	ov := newOverlay()
	var fc frameClock
	lastCursor := cursor("")

	draw := func(m mesh, modelView mat.Mat4, color mat.Vec3, alpha float32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.buf)
		gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, m.stride, 0)
		gl.UniformMatrix4fv(uModelViewMatrix, false, modelView)
		gl.Uniform3fv(uColor, color)
		gl.Uniform1f(uAlpha, alpha)
		gl.DrawArrays(gl.POINTS, 0, m.points)
	}

	for {
		select {
		case ts := <-chFrame:
			ratio := math.Min(js.Global().Get("devicePixelRatio").Float(), maxPixelRatio)
			width := int(float64(gl.Canvas.ClientWidth()) * ratio)
			height := int(float64(gl.Canvas.ClientHeight()) * ratio)
			if vi.resize(width, height) {
				gl.Canvas.SetWidth(width)
				gl.Canvas.SetHeight(height)
				gl.Viewport(0, 0, width, height)
				gl.UniformMatrix4fv(uProjectionMatrix, false, vi.projection)
				gl.Uniform1f(uDistance, float32(vi.distance))
			}

			f := ctl.Tick()
			ov.SetPhase(f.Phase)
			pn.setOverlay(ov.Step(fc.delta(ts)), ov.Visible())
			if c := g.cursor(); c != lastCursor {
				setCursor(container, c)
				lastCursor = c
			}

			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
			draw(globe, vi.modelView(f.Globe), globeColor, globeAlpha)
			draw(clouds, vi.cloudModelView(f), cloudColor, cloudAlpha)

			js.Global().Call("requestAnimationFrame", requestFrame)
		case e := <-chPointer:
			g.handle(e, time.Now())
		case <-chOpen:
			if g.click(time.Now()) {
				pn.open()
			}
		case <-chClose:
			pn.close()
			if !ctl.OnCloseRequested() {
				log.Debugf("Close ignored in %s mode", ctl.Mode())
			}
		case <-chContextLost:
			log.Errf("%v", errContextLostEvent)
			return
		}
	}
}
