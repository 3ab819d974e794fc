package app

// Options holds the viewer settings chosen on the command line.
type Options struct {
	Scale    int // pixels per cell
	TPS      int // generations per second, 0 steps every frame
	HUDWidth int // side panel width in pixels, 0 hides it
}

// DefaultOptions returns the viewer defaults.
func DefaultOptions() Options {
	return Options{Scale: 8, TPS: 10, HUDWidth: 220}
}

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TPS < 0 {
		o.TPS = 0
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	return o
}

// faster doubles a tick rate; an unpaced rate stays unpaced.
func faster(tps int) int {
	if tps <= 0 {
		return 0
	}
	return tps * 2
}

// slower halves a tick rate, never going below one tick per second. An
// unpaced viewer drops to 60.
func slower(tps int) int {
	switch {
	case tps <= 0:
		return 60
	case tps == 1:
		return 1
	}
	return tps / 2
}
