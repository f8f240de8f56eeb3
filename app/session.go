package app

import (
	"fmt"
	"os"
	"path/filepath"

	"texview/hal"
	"texview/hud"
	"texview/snapshot"
	"texview/texture"
)

const defaultBackground = "#1e1e1e"

// Session is one viewer run: a texture shown in a window until the user
// closes it.
type Session struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	win      *Window
	tex      *texture.Texture
	renderer *Renderer
	filter   Filter
	hud      *hud.Overlay
	bg       uint32

	shots int
}

// New validates cfg and wires a session to h.
func New(h hal.HAL, tex *texture.Texture, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	filter, err := ParseFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	bgHex := cfg.Background
	if bgHex == "" {
		bgHex = defaultBackground
	}
	bg, err := ParseColor(bgHex)
	if err != nil {
		return nil, err
	}

	s := &Session{
		h:        h,
		log:      h.Logger(),
		cfg:      cfg,
		win:      NewWindow(h.Surface(), h.Input()),
		tex:      tex,
		renderer: NewRenderer(tex, filter, bg, cfg.Workers),
		filter:   filter,
		bg:       bg,
	}
	if cfg.HUD {
		s.hud = hud.New()
	}

	buf := s.win.Buffer()
	hal.Logf(s.log, "texview: %s %dx%d (%d channels), surface %dx%d, %s",
		cfg.TexturePath, tex.Width(), tex.Height(), tex.Channels(), buf.Width(), buf.Height(), filter)
	return s, nil
}

func (s *Session) Window() *Window { return s.win }

// Step runs one frame tick: draw, overlay, snapshot on request, then
// display. It returns hal.ErrQuit once the window should close.
func (s *Session) Step() (err error) {
	defer s.recoverStep(&err)

	if s.win.ShouldClose() {
		return hal.ErrQuit
	}

	buf := s.win.Buffer()
	buf.Clear(s.bg)
	rx, ry := s.win.Rotate()
	if err := s.renderer.Render(buf, s.win.Zoom(), rx, ry); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}
	if s.hud != nil {
		s.hud.Draw(buf, s.statusLine(), fmt.Sprintf("%.0f fps", s.h.Clock().FPS()))
	}

	if s.cfg.ShotsDir != "" && s.h.Input().KeyPressed(hal.KeyF12) {
		if err := s.shoot(); err != nil {
			hal.Logf(s.log, "texview: snapshot: %v", err)
		}
	}

	resized, err := s.win.Display()
	if err != nil {
		return fmt.Errorf("app: display: %w", err)
	}
	if resized {
		nb := s.win.Buffer()
		hal.Logf(s.log, "texview: surface resized to %dx%d", nb.Width(), nb.Height())
	}
	return nil
}

func (s *Session) statusLine() string {
	rx, ry := s.win.Rotate()
	buf := s.win.Buffer()
	return fmt.Sprintf("zoom=%.2f rot=(%.2f, %.0f) %dx%d %s",
		s.win.Zoom(), rx, ry, buf.Width(), buf.Height(), s.filter)
}

func (s *Session) shoot() error {
	if err := os.MkdirAll(s.cfg.ShotsDir, 0o755); err != nil {
		return err
	}
	s.shots++
	path := filepath.Join(s.cfg.ShotsDir, fmt.Sprintf("shot-%03d.webp", s.shots))
	if err := snapshot.Write(path, s.win.Buffer()); err != nil {
		return err
	}
	hal.Logf(s.log, "texview: wrote %s", path)
	return nil
}

// Close ends the session, writing the last frame to Config.Out if set.
func (s *Session) Close() error {
	defer hal.Logf(s.log, "texview: session ended after %d frames", s.h.Clock().Frame())
	if s.cfg.Out == "" {
		return nil
	}
	if err := snapshot.Write(s.cfg.Out, s.win.Buffer()); err != nil {
		return err
	}
	hal.Logf(s.log, "texview: wrote %s", s.cfg.Out)
	return nil
}
