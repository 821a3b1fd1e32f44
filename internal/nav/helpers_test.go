package nav

type target struct {
	region   string
	detached bool
}

func (t target) Attached() bool { return !t.detached }

func regionNamed(name string) Region {
	return RegionFunc(func(t Target) bool {
		tt, ok := t.(target)
		return ok && tt.region == name
	})
}

type recordingRouter struct {
	intents []string
}

func (r *recordingRouter) Navigate(destination string) {
	r.intents = append(r.intents, destination)
}

type recordingTooltip struct {
	texts map[string]string
	order []string
}

func (r *recordingTooltip) Tooltip(anchor, text string) {
	if r.texts == nil {
		r.texts = make(map[string]string)
	}
	r.texts[anchor] = text
	r.order = append(r.order, anchor)
}

type recordingSurface struct {
	attached int
	layers   map[string]*recordingLayer
}

type recordingLayer struct {
	sets     []string
	detached bool
}

func (l *recordingLayer) Set(content string) { l.sets = append(l.sets, content) }
func (l *recordingLayer) Detach()            { l.detached = true }

func (s *recordingSurface) Attach(id string) Layer {
	s.attached++
	if s.layers == nil {
		s.layers = make(map[string]*recordingLayer)
	}
	layer := &recordingLayer{}
	s.layers[id] = layer
	return layer
}

func portfolioTable() *Table {
	return MustTable(
		Item{ID: "Home", Label: "Home", Destination: "/", Icon: "home", Description: "Welcome to my portfolio"},
		Item{ID: "Blog", Label: "Blog", Destination: "/blog", Icon: "article", Description: "My thoughts and insights", Badge: "New"},
		Item{ID: "About", Label: "About", Destination: "/about", Icon: "user", Description: "Learn about me"},
	)
}

type fixture struct {
	hub      *Hub
	router   *recordingRouter
	surface  *recordingSurface
	bar      *Bar
	snapshot []Presentation
}

func newFixture() *fixture {
	f := &fixture{
		hub:     NewHub(),
		router:  &recordingRouter{},
		surface: &recordingSurface{},
	}
	f.bar = NewBar(BarConfig{
		Table:    portfolioTable(),
		Router:   f.router,
		Env:      f.hub,
		Boundary: regionNamed("menu"),
		Toggle:   regionNamed("toggle"),
		Surface:  f.surface,
		OnChange: func(p Presentation) { f.snapshot = append(f.snapshot, p) },
	})
	return f
}
