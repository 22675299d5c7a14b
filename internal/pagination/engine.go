package pagination

// Engine computes page information and layouts for a fixed configuration
type Engine struct {
	config Config
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		config: DefaultConfig(),
	}
}

// SetConfig sets the configuration for the pagination engine
func (e *Engine) SetConfig(config Config) {
	e.config = config.Normalize()
}

// Config returns the normalized configuration in use
func (e *Engine) Config() Config {
	return e.config
}

// Info computes the page information for the requested page
func (e *Engine) Info(page int) Info {
	return ComputeInfo(e.config, page)
}

// Layout plans the page numbers to display for info
func (e *Engine) Layout(info Info) Layout {
	return ComputeLayout(info, e.config)
}
