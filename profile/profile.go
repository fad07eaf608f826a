package profile

// Tag is the build tag that enables profiling. It also names the
// subdirectory of the cache directory that receives profiles by default.
const Tag = "pprof"

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string
	Dir   string
	Quiet bool
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start begins profiling in p.Mode. An empty or unsupported mode returns a
// Stopper that does nothing. Stop is always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
