package astdebug

// DefaultSpacing is the indentation width of the node tree when Options
// leaves Spacing unset.
const DefaultSpacing = 4

// Options controls how a debug call renders its node tree.
type Options struct {
	// Spacing is the indentation width of the node tree. Zero selects
	// DefaultSpacing; negative values are rejected. Widths above MaxSpacing
	// render as MaxSpacing.
	Spacing int `yaml:"spacing"`
}

func (o *Options) spacing() int {
	if o == nil || o.Spacing == 0 {
		return DefaultSpacing
	}
	return o.Spacing
}

// toOptions accepts an Options value or a non-nil pointer to one.
func toOptions(v any) (*Options, error) {
	var o Options
	switch v := v.(type) {
	case Options:
		o = v
	case *Options:
		if v == nil {
			return nil, invalidf("options must not be nil")
		}
		o = *v
	default:
		return nil, invalidf("options must be an Options record, provided: %T", v)
	}
	if o.Spacing < 0 {
		return nil, invalidf("spacing must not be negative, provided: %d", o.Spacing)
	}
	return &o, nil
}
