package animations

// Animation is a looping frame cycle driven by elapsed seconds.
type Animation struct {
	Count     int     // number of frames in the cycle
	FrameTime float64 // seconds a frame must be exceeded before advancing
	timer     float64
	frame     int
}

// Update adds dt to the timer and advances one frame once the timer exceeds FrameTime.
func (a *Animation) Update(dt float64) {
	a.timer += dt
	if a.timer > a.FrameTime {
		a.frame = (a.frame + 1) % a.Count
		a.timer = 0
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Stop shows the first frame. The timer keeps its value so resuming continues the beat.
func (a *Animation) Stop() {
	a.frame = 0
}

func NewAnimation(count int, frameTime float64) *Animation {
	if count < 1 {
		count = 1
	}
	return &Animation{
		Count:     count,
		FrameTime: frameTime,
	}
}
