package views

import "strings"

// ClickableRegion makes a whole card or tile behave as one navigation
// target. The region is focusable, labelled, and link-semantic; activation
// is suppressed when it originates on (or inside) an excluded interactive
// element so inner buttons and links keep their own behaviour.
type ClickableRegion struct {
	Href           string   `json:"href"`
	Label          string   `json:"label"`
	ExcludeTags    []string `json:"excludeTags"`
	ExcludeClasses []string `json:"excludeClasses,omitempty"`
}

// defaultExcludedTags are the interactive elements that always keep their
// own click behaviour inside a clickable region.
var defaultExcludedTags = []string{"A", "BUTTON"}

// NewClickableRegion returns a region with the default exclusions.
func NewClickableRegion(href, label string) ClickableRegion {
	return ClickableRegion{
		Href:        href,
		Label:       label,
		ExcludeTags: defaultExcludedTags,
	}
}

// ExcludeClass returns a copy of the region that also suppresses activation
// for targets carrying (or nested inside) the given class.
func (r ClickableRegion) ExcludeClass(class string) ClickableRegion {
	r.ExcludeClasses = append(append([]string(nil), r.ExcludeClasses...), class)
	return r
}

// ActivationTarget describes where an activation event landed: the element's
// tag, its classes, and the classes of its ancestors inside the region.
type ActivationTarget struct {
	Tag             string
	Classes         []string
	AncestorClasses []string
}

// ShouldNavigate reports whether an activation on target should trigger the
// region's navigation. Activations on excluded tags, or on elements carrying
// or nested inside an excluded class, are contained.
func (r ClickableRegion) ShouldNavigate(target ActivationTarget) bool {
	for _, tag := range r.ExcludeTags {
		if strings.EqualFold(tag, target.Tag) {
			return false
		}
	}
	for _, class := range r.ExcludeClasses {
		if containsClass(target.Classes, class) || containsClass(target.AncestorClasses, class) {
			return false
		}
	}
	return true
}

// ActivatesOn reports whether key is one of the keyboard activation keys for
// a link-semantic region: Enter and Space.
func ActivatesOn(key string) bool {
	return key == "Enter" || key == " "
}

func containsClass(classes []string, class string) bool {
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}
