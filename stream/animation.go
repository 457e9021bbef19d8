package stream

// An Animation implements a way to render a specific animation.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// A Stopper is an Animation that holds running timelines which must be
// released when the animation is retired.
type Stopper interface {
	Stop()
}
