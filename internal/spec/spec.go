package spec

// File is a scene document: the actors on stage and the transitions to run
// against their properties.
type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Render struct {
		FrameMS   int `yaml:"frame_ms"`   // render-loop frame period (0 = no frame log)
		QueueSize int `yaml:"queue_size"` // render-loop inbox capacity
	} `yaml:"render"`

	Actors      []ActorSpec      `yaml:"actors"`
	Transitions []TransitionSpec `yaml:"transitions"`
}

// ActorSpec declares one sprite and its initial property values.
type ActorSpec struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	// Scale and Opacity default to 1 when omitted; pointers keep an
	// explicit 0 distinguishable from absence.
	Scale   *float64 `yaml:"scale"`
	Opacity *float64 `yaml:"opacity"`
	Label   string   `yaml:"label"`
	Tint    string   `yaml:"tint"` // hex, e.g. "#ff8000"
}

// TransitionSpec declares one property animation.
type TransitionSpec struct {
	Actor      string `yaml:"actor"`
	Property   string `yaml:"property"`
	To         any    `yaml:"to"` // coerced to the property's type at compile time
	DurationMS int    `yaml:"duration_ms"`
	Curve      string `yaml:"curve"`   // registry name; default "linear"
	TickMS     int    `yaml:"tick_ms"` // 0 = engine default
}
