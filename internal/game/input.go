package game

import "github.com/vovakirdan/tui-snake/internal/core"

// HandleKey routes a key press by screen mode. Exit is honored everywhere;
// any other key that means nothing in the current mode is ignored.
func (s *State) HandleKey(k core.Key) {
	if k == core.KeyExit {
		s.exit = true
		return
	}

	switch s.mode {
	case ModeMenu:
		s.handleMenuKey(k)
	case ModePlaying:
		if h, ok := k.Heading(); ok {
			s.Steer(h)
		}
	case ModeLost:
		if k == core.KeyConfirm {
			s.mode = ModeMenu
			s.cursor = MenuStart
		}
	}
}

func (s *State) handleMenuKey(k core.Key) {
	switch k {
	case core.KeyUp:
		s.cursor = MenuItem(core.Clamp(int(s.cursor)-1, 0, int(menuItemCount)-1))
	case core.KeyDown:
		s.cursor = MenuItem(core.Clamp(int(s.cursor)+1, 0, int(menuItemCount)-1))
	case core.KeyConfirm:
		switch s.cursor {
		case MenuStart:
			s.Reset()
		case MenuQuit:
			s.exit = true
		}
	}
}

// Steer requests a heading change. At most one change is accepted between
// two updates, and a reversal onto the body is ignored. Asking for the
// current heading changes nothing and keeps the window open.
func (s *State) Steer(h core.Heading) bool {
	if s.headingLocked || h == s.heading || h.IsOpposite(s.heading) {
		return false
	}
	s.heading = h
	s.headingLocked = true
	return true
}
