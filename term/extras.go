package term

// String renders c, falling back to a diagnostic placeholder rather than
// panicking on a non-renderable term; callers needing NotRenderableError
// should call Render directly.
func (c Conc) String() string {
	s, err := c.Render()
	if err != nil {
		return "<conc>"
	}
	return s
}

// String renders p, falling back to a diagnostic placeholder rather than
// panicking on a non-renderable term; callers needing NotRenderableError
// should call Render directly.
func (p Pattern) String() string {
	s, err := p.Render()
	if err != nil {
		return "()"
	}
	return s
}

// String renders mu, falling back to a diagnostic placeholder rather than
// panicking on a non-renderable term; callers needing NotRenderableError
// should call Render directly.
func (mu Mult) String() string {
	s, err := mu.Render()
	if err != nil {
		return "<mult>"
	}
	return s
}
