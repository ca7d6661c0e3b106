package draw

// Display is the part of a devdraw connection that the input binding and
// the layout code need.
type Display interface {
	OpenFont(name string) (Font, error)
	InitKeyboard() *Keyboardctl
	WriteSnarf(data []byte) error
	SetCursor(c *Cursor) error
}

// Font measures text.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

// displayImpl implements the Display interface.
type displayImpl struct {
	*drawDisplay
}

var _ = Display((*displayImpl)(nil))

func (d *displayImpl) OpenFont(name string) (Font, error) {
	f, err := d.drawDisplay.OpenFont(name)
	if err != nil {
		return nil, err
	}
	return &fontImpl{f}, nil
}

type fontImpl struct {
	*drawFont
}

var _ = Font((*fontImpl)(nil))

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }
