package orient

import (
	"sync"

	"fortio.org/log"
)

type finishPath string

const (
	finishByFrame   finishPath = "frame"
	finishByTimer   finishPath = "timer"
	finishByRequest finishPath = "request"
)

// Controller owns the orientation of the globe.
// Tick is the only autonomous writer; drag input writes direct deltas.
// All methods are safe to call from multiple goroutines.
type Controller struct {
	mu    sync.Mutex
	cfg   Config
	clock Clock

	orientation Orientation
	clouds      Orientation
	target      Orientation
	mode        Mode
	phase       TransitionPhase
	pointer     pointerSample
	located     bool
	panelOpen   bool
	closed      bool

	plan      ReturnPlan
	hasPlan   bool
	returnSeq uint64
	timer     Timer

	onPhase func(TransitionPhase)
}

// NewController returns a controller facing the configured home meridian.
func NewController(cfg Config, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	home := cfg.HomeTarget()
	return &Controller{
		cfg:         cfg,
		clock:       clock,
		orientation: home,
		target:      home,
	}
}

// OnPhase registers a handler called on every TransitionPhase change.
// The handler runs without the controller lock held.
func (c *Controller) OnPhase(fn func(TransitionPhase)) {
	c.mu.Lock()
	c.onPhase = fn
	c.mu.Unlock()
}

func (c *Controller) Orientation() Orientation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *Controller) Clouds() Orientation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clouds
}

func (c *Controller) DriftTarget() Orientation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) Phase() TransitionPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) PanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// Plan returns the plan of the running or last return transition.
func (c *Controller) Plan() (ReturnPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan, c.hasPlan
}

// set is the single write entry of the orientation state.
func (c *Controller) set(o Orientation) {
	c.orientation = o
}

func (c *Controller) frame() Frame {
	return Frame{
		Globe:  c.orientation,
		Clouds: c.clouds,
		Mode:   c.mode,
		Phase:  c.phase,
	}
}

// Tick advances the orientation by one animation frame.
func (c *Controller) Tick() Frame {
	c.mu.Lock()
	c.clouds = c.clouds.spin(c.cfg.CloudSpinYaw, c.cfg.CloudSpinPitch)

	var finished bool
	switch c.mode {
	case ModeAutoDrift:
		c.set(c.orientation.pursue(c.target, c.cfg.Smoothing, c.cfg.ForwardBias))
	case ModeReturning:
		p := c.plan.Progress(c.clock.Now())
		if p >= 1 {
			finished = c.finishReturn(c.returnSeq, finishByFrame)
		} else {
			c.set(c.plan.At(p))
		}
	case ModeDragging:
	}
	f := c.frame()
	c.mu.Unlock()

	if finished {
		c.notifyPhase(PhaseIdle)
	}
	return f
}

// OnOpenRequested records that the panel was opened.
// Orientation is not affected; drag stays allowed unless a return is running.
func (c *Controller) OnOpenRequested() {
	c.mu.Lock()
	c.panelOpen = true
	c.mu.Unlock()
	log.Debugf("Panel opened")
}

// OnCloseRequested starts the return transition toward the drift target.
// It is ignored while a return is already running or after Close.
func (c *Controller) OnCloseRequested() bool {
	c.mu.Lock()
	c.panelOpen = false
	if c.closed || c.mode == ModeReturning {
		c.mu.Unlock()
		return false
	}
	now := c.clock.Now()
	c.plan = PlanReturn(c.orientation, c.target, now, c.cfg.ReturnDuration, c.cfg.HomecomingEpsilon)
	c.hasPlan = true
	c.mode = ModeReturning
	c.phase = PhaseReturning
	c.pointer = pointerSample{}
	c.returnSeq++
	seq := c.returnSeq
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clock.AfterFunc(c.cfg.ReturnDuration, func() {
		c.finishReturnAsync(seq, finishByTimer)
	})
	log.Infof("Return started: yaw %.3f -> %.3f, pitch %.3f -> %.3f",
		c.plan.StartYaw, c.plan.FinalYaw, c.plan.StartPitch, c.plan.FinalPitch)
	c.mu.Unlock()

	c.notifyPhase(PhaseReturning)
	return true
}

// FinishReturn ends the running return transition at its final orientation.
// It is a no-op when no return is running.
func (c *Controller) FinishReturn() bool {
	c.mu.Lock()
	seq := c.returnSeq
	c.mu.Unlock()
	return c.finishReturnAsync(seq, finishByRequest)
}

func (c *Controller) finishReturnAsync(seq uint64, path finishPath) bool {
	c.mu.Lock()
	finished := c.finishReturn(seq, path)
	c.mu.Unlock()

	if finished {
		c.notifyPhase(PhaseIdle)
	}
	return finished
}

// finishReturn must be called with the lock held. Only the return
// identified by seq is finished, so a late timer of an old return is ignored.
func (c *Controller) finishReturn(seq uint64, path finishPath) bool {
	if c.mode != ModeReturning || seq != c.returnSeq {
		return false
	}
	final := c.plan.Final()
	c.set(final)
	c.target = final
	c.mode = ModeAutoDrift
	c.phase = PhaseIdle
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	log.Infof("Return finished by %s at yaw %.3f pitch %.3f", path, final.Yaw, final.Pitch)
	return true
}

func (c *Controller) notifyPhase(p TransitionPhase) {
	c.mu.Lock()
	fn := c.onPhase
	c.mu.Unlock()
	if fn != nil {
		fn(p)
	}
}

// Close tears the controller down. Pending timers are stopped and late
// asynchronous results become no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
