package view

// PatchOp names one DOM or map mutation the page applies in order
type PatchOp string

const (
	OpClearBodyClasses PatchOp = "clear_body_classes"
	OpAddBodyClass     PatchOp = "add_body_class"
	OpSetResultHTML    PatchOp = "set_result_html"
	OpCreateMap        PatchOp = "create_map"
	OpSetView          PatchOp = "set_view"
	OpClearMarkers     PatchOp = "clear_markers"
	OpAddMarker        PatchOp = "add_marker"
	OpSkipMap          PatchOp = "skip_map"
)

// Patch is a single mutation. Only the fields relevant to Op are set.
type Patch struct {
	Op          PatchOp  `json:"op"`
	Classes     []string `json:"classes,omitempty"`
	Class       string   `json:"class,omitempty"`
	HTML        string   `json:"html,omitempty"`
	Instance    string   `json:"instance,omitempty"`
	Center      *LatLng  `json:"center,omitempty"`
	Zoom        int      `json:"zoom,omitempty"`
	TileURL     string   `json:"tileUrl,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	Marker      *Marker  `json:"marker,omitempty"`
}

// Diff lists the patches that turn prev into next. A body class change is always
// a clear of every condition class followed by exactly one add.
func Diff(prev, next State, conditionClasses []string) []Patch {
	var patches []Patch

	if next.Display.BodyClass != "" && next.Display.BodyClass != prev.Display.BodyClass {
		patches = append(patches,
			Patch{Op: OpClearBodyClasses, Classes: conditionClasses},
			Patch{Op: OpAddBodyClass, Class: string(next.Display.BodyClass)},
		)
	}

	if next.Display.ResultHTML != prev.Display.ResultHTML {
		patches = append(patches, Patch{Op: OpSetResultHTML, HTML: next.Display.ResultHTML})
	}

	return append(patches, diffMap(prev.Map, next.Map)...)
}

func diffMap(prev, next *MapState) []Patch {
	if next == nil {
		return nil
	}

	var patches []Patch
	center := next.Center

	switch {
	case prev == nil || prev.Instance != next.Instance:
		patches = append(patches, Patch{
			Op:          OpCreateMap,
			Instance:    next.Instance,
			Center:      &center,
			Zoom:        next.Zoom,
			TileURL:     next.TileURL,
			Attribution: next.Attribution,
		})
	case prev.Center != next.Center || prev.Zoom != next.Zoom:
		patches = append(patches, Patch{
			Op:       OpSetView,
			Instance: next.Instance,
			Center:   &center,
			Zoom:     next.Zoom,
		})
	}

	created := len(patches) > 0 && patches[0].Op == OpCreateMap
	if next.Marker != nil && (created || prev.Marker == nil || *prev.Marker != *next.Marker) {
		if !created {
			patches = append(patches, Patch{Op: OpClearMarkers, Instance: next.Instance})
		}
		marker := *next.Marker
		patches = append(patches, Patch{Op: OpAddMarker, Instance: next.Instance, Marker: &marker})
	}

	return patches
}
