package models

import "fmt"

// CaptureTab selects what the coordinate capture page records.
type CaptureTab string

const (
	CaptureTabClick  CaptureTab = "captureClick"
	CaptureTabCamera CaptureTab = "captureCamera"
)

// ParseCaptureTab converts raw into a CaptureTab, rejecting unknown values.
func ParseCaptureTab(raw string) (CaptureTab, error) {
	switch tab := CaptureTab(raw); tab {
	case CaptureTabClick, CaptureTabCamera:
		return tab, nil
	default:
		return "", fmt.Errorf("unknown capture tab %q", raw)
	}
}

// CameraView is a camera placement: where it sits and what it looks at.
type CameraView struct {
	Position Vec3 `json:"position"`
	Target   Vec3 `json:"target"`
}

// DefaultCameraView is the placement the capture page starts from and resets to.
func DefaultCameraView() CameraView {
	return CameraView{
		Position: Vec3{5.99, -1.91, -0.18},
		Target:   Vec3{-0.16, -1.86, 0.07},
	}
}

// Hotspot is a labelled point on the building model with a camera preset.
type Hotspot struct {
	Label    string     `json:"label"`
	Position Vec3       `json:"position"`
	Camera   CameraView `json:"camera"`
}

// CaptureState is the per-session state of the capture page.
type CaptureState struct {
	Tab    CaptureTab `json:"tab"`
	Camera CameraView `json:"camera"`
}

// OrbitControlsEnabled reports whether the visitor may move the camera freely.
func (s CaptureState) OrbitControlsEnabled() bool {
	return s.Tab == CaptureTabCamera
}

// CaptureMessage is the dialog shown after a capture action.
type CaptureMessage struct {
	Title         string `json:"title"`
	Message       string `json:"message"`
	ContentToCopy string `json:"contentToCopy,omitempty"`
}

// MediaKind tells the carousel how to render a media reference.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaItem is one entry of a flat or gallery media list.
type MediaItem struct {
	Ref   string    `json:"ref"`
	Kind  MediaKind `json:"kind"`
	Index int       `json:"index"`
}
