package services

import (
	"fmt"

	"github.com/drcity/portal/api/internal/models"
)

var hotspots = []models.Hotspot{
	{
		Label:    "Water Pipe",
		Position: models.Vec3{-0.01, -0.75, -1.12},
		Camera: models.CameraView{
			Position: models.Vec3{-1.55, -1.15, -0.93},
			Target:   models.Vec3{0.55, -1.23, -0.88},
		},
	},
	{
		Label:    "Electric Box",
		Position: models.Vec3{-0.66, -3.02, 0.33},
		Camera: models.CameraView{
			Position: models.Vec3{-0.54, -3.04, 2.00},
			Target:   models.Vec3{-0.26, -2.92, -0.09},
		},
	},
	{
		Label:    "Water Tank",
		Position: models.Vec3{-0.16, 0.06, -0.21},
		Camera: models.CameraView{
			Position: models.Vec3{1.63, -0.29, 0.08},
			Target:   models.Vec3{-1.03, -0.23, -0.04},
		},
	},
	{
		Label:    "Fire Extinguisher",
		Position: models.Vec3{-1.08, -1.17, 0.05},
		Camera: models.CameraView{
			Position: models.Vec3{-3.43, -1.59, -0.03},
			Target:   models.Vec3{-1.44, -1.69, 0.01},
		},
	},
}

// Hotspots returns the built-in hotspots of the building model.
func Hotspots() []models.Hotspot {
	out := make([]models.Hotspot, len(hotspots))
	copy(out, hotspots)
	return out
}

// FindHotspot looks up a hotspot by its exact label.
func FindHotspot(label string) (models.Hotspot, bool) {
	for _, h := range hotspots {
		if h.Label == label {
			return h, true
		}
	}
	return models.Hotspot{}, false
}

// InitialCapture is the capture page state for a new session.
func InitialCapture() models.CaptureState {
	return models.CaptureState{
		Tab:    models.CaptureTabClick,
		Camera: models.DefaultCameraView(),
	}
}

// SelectTab switches the capture tab. The camera is left where it is.
func SelectTab(current models.CaptureState, tab models.CaptureTab) (models.CaptureState, error) {
	if _, err := models.ParseCaptureTab(string(tab)); err != nil {
		return current, fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}
	next := current
	next.Tab = tab
	return next, nil
}

// ResetView puts the camera back to the default placement.
func ResetView(current models.CaptureState) models.CaptureState {
	next := current
	next.Camera = models.DefaultCameraView()
	return next
}

// JumpToHotspot moves the camera to the preset of the labelled hotspot.
func JumpToHotspot(current models.CaptureState, label string) (models.CaptureState, error) {
	h, ok := FindHotspot(label)
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrHotspotNotFound, label)
	}
	next := current
	next.Camera = h.Camera
	return next, nil
}

// CaptureCamera records the reported camera placement and formats it for
// pasting into a hotspot preset. Only available on the camera tab.
func CaptureCamera(current models.CaptureState, view models.CameraView) (models.CaptureState, models.CaptureMessage, error) {
	if current.Tab != models.CaptureTabCamera {
		return current, models.CaptureMessage{}, fmt.Errorf("%w: camera capture requires %s", ErrWrongTab, models.CaptureTabCamera)
	}
	next := current
	next.Camera = view
	return next, models.CaptureMessage{
		Title:         "Camera View Captured",
		Message:       "Copy these coordinates to quickly jump to this view later:",
		ContentToCopy: FormatCameraView(view),
	}, nil
}

// CapturePoint formats the model intersection point reported for a click.
// A nil point means the click did not hit the model. Only available on the click tab.
func CapturePoint(current models.CaptureState, point *models.Vec3) (models.CaptureMessage, error) {
	if current.Tab != models.CaptureTabClick {
		return models.CaptureMessage{}, fmt.Errorf("%w: point capture requires %s", ErrWrongTab, models.CaptureTabClick)
	}
	if point == nil {
		return models.CaptureMessage{
			Title:   "No 3D Point Captured",
			Message: "Could not determine 3D coordinates for the click. Please ensure you are clicking inside the canvas.",
		}, nil
	}
	return models.CaptureMessage{
		Title:         "Click Point Captured",
		Message:       "The 3D coordinates of your click on the model are:",
		ContentToCopy: FormatVec3(*point),
	}, nil
}

// FormatVec3 renders v as "[x, y, z]" with two decimals.
func FormatVec3(v models.Vec3) string {
	return fmt.Sprintf("[%.2f, %.2f, %.2f]", v[0], v[1], v[2])
}

// FormatCameraView renders a camera placement in the hotspot preset layout.
func FormatCameraView(view models.CameraView) string {
	return fmt.Sprintf("position: %s,\n    target: %s,", FormatVec3(view.Position), FormatVec3(view.Target))
}
