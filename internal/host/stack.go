package host

import "calwatch/internal/graphics"

// WindowStack presents windows on the display
type WindowStack interface {
	Push(w *Window, animated bool) error
	Remove(w *Window)
}

// Stack is an in-memory window stack for a display of fixed bounds
type Stack struct {
	bounds  graphics.Rect
	windows []*Window
}

// NewStack creates an empty stack for a display of the given bounds
func NewStack(bounds graphics.Rect) *Stack {
	return &Stack{bounds: bounds}
}

// Bounds returns the display bounds
func (s *Stack) Bounds() graphics.Rect { return s.bounds }

// Push presents w on top of the stack. Animation is not emulated.
func (s *Stack) Push(w *Window, animated bool) error {
	if err := w.Present(s.bounds); err != nil {
		return err
	}
	s.windows = append(s.windows, w)
	return nil
}

// Remove dismisses w and drops it from the stack
func (s *Stack) Remove(w *Window) {
	for i, win := range s.windows {
		if win == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			w.Dismiss()
			return
		}
	}
}

// Top returns the visible window, or nil
func (s *Stack) Top() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

// Len returns the number of presented windows
func (s *Stack) Len() int { return len(s.windows) }
