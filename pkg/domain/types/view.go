package types

import "fmt"

// View is one of the navigable screens of a session
type View string

const (
	ViewProfile View = "PROFILE"
	ViewEngage  View = "ENGAGE"
	ViewExplore View = "EXPLORE"
	ViewExpress View = "EXPRESS"
	ViewExtend  View = "EXTEND"
	ViewSummary View = "SUMMARY"
)

// AllViews returns every view in navigation order
func AllViews() []View {
	return []View{
		ViewProfile,
		ViewEngage,
		ViewExplore,
		ViewExpress,
		ViewExtend,
		ViewSummary,
	}
}

// IsValid checks if the view is known
func (v View) IsValid() bool {
	switch v {
	case ViewProfile,
		ViewEngage,
		ViewExplore,
		ViewExpress,
		ViewExtend,
		ViewSummary:
		return true
	default:
		return false
	}
}

// Next returns the following view. The last view returns itself.
func (v View) Next() View {
	views := AllViews()
	for i, view := range views {
		if view == v && i+1 < len(views) {
			return views[i+1]
		}
	}
	return v
}

// Prev returns the preceding view. The first view returns itself.
func (v View) Prev() View {
	views := AllViews()
	for i, view := range views {
		if view == v && i > 0 {
			return views[i-1]
		}
	}
	return v
}

// String returns the string representation of the view
func (v View) String() string {
	return string(v)
}

// ParseView parses a string into a View
func ParseView(s string) (View, error) {
	view := View(s)
	if !view.IsValid() {
		return "", fmt.Errorf("invalid view: %s", s)
	}
	return view, nil
}
