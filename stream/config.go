package stream

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate         float64       `yaml:"frameRate"`
	TransitionSecs    float64       `yaml:"transitionSecs"`
	AnimationTimeSecs float64       `yaml:"animationTimeSecs"`
	Gradient          GradientTable `yaml:"gradient"`
}

// ApplyDefaults fills in anything the YAML file left unset.
func (c *Config) ApplyDefaults() {
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.TransitionSecs <= 0 {
		c.TransitionSecs = 5
	}
	if c.AnimationTimeSecs <= 0 {
		c.AnimationTimeSecs = 120
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if len(c.Gradient) == 0 {
		c.Gradient = GradientTable{
			{0.0, 0.0},
			{6.0, 0.04},   // Pink
			{87.0, 0.14},  // Red
			{88.0, 0.28},  // Orange
			{98.0, 0.42},  // Yellow
			{180.0, 0.56}, // Green
			{190.0, 0.70}, // Turquiose
			{320.0, 0.84}, // Blue
			{328.0, 0.91}, // Violet
			{360.0, 1.0},  // Pink wrap
		}
	}
}

// Validate rejects configurations the animations cannot render from.
func (c *Config) Validate() error {
	return c.Gradient.Validate()
}
