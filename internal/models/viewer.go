package models

import (
	"encoding/json"
	"fmt"
)

// Vec3 is an x, y, z triple in model space.
type Vec3 [3]float64

// ThreeDModel references a GLTF asset and the viewer settings used to display it.
type ThreeDModel struct {
	Path         string       `json:"path"`
	ViewerConfig ViewerConfig `json:"viewerConfig"`
}

// ViewerConfig mirrors the settings the browser viewer accepts.
type ViewerConfig struct {
	Camera            CameraConfig      `json:"camera"`
	Lights            LightsConfig      `json:"lights"`
	Controls          ControlsConfig    `json:"controls"`
	ModelTransform    ModelTransform    `json:"modelTransform"`
	AnimationSettings AnimationSettings `json:"animationSettings"`
}

// CameraConfig is the initial camera placement and field of view.
type CameraConfig struct {
	Position Vec3    `json:"position"`
	FOV      float64 `json:"fov"`
}

// LightsConfig lists the scene lights. Spot and point lights are optional.
type LightsConfig struct {
	AmbientLight      AmbientLight       `json:"ambientLight"`
	SpotLight         *SpotLight         `json:"spotLight,omitempty"`
	PointLight        *PointLight        `json:"pointLight,omitempty"`
	DirectionalLights []DirectionalLight `json:"directionalLights"`
}

// AmbientLight lights the whole scene evenly.
type AmbientLight struct {
	Intensity float64 `json:"intensity"`
}

// SpotLight is a cone light aimed at the model.
type SpotLight struct {
	Position  Vec3    `json:"position"`
	Angle     float64 `json:"angle"`
	Penumbra  float64 `json:"penumbra"`
	Intensity float64 `json:"intensity,omitempty"`
}

// PointLight radiates from a single position.
type PointLight struct {
	Position  Vec3    `json:"position"`
	Intensity float64 `json:"intensity,omitempty"`
}

// DirectionalLight is a parallel light such as sunlight.
type DirectionalLight struct {
	Position   Vec3    `json:"position"`
	Intensity  float64 `json:"intensity"`
	Color      string  `json:"color,omitempty"`
	CastShadow bool    `json:"castShadow,omitempty"`
}

// ControlsConfig sets which orbit controls the visitor may use.
type ControlsConfig struct {
	EnableZoom      bool    `json:"enableZoom"`
	EnablePan       bool    `json:"enablePan"`
	EnableRotate    bool    `json:"enableRotate"`
	AutoRotate      bool    `json:"autoRotate"`
	AutoRotateSpeed float64 `json:"autoRotateSpeed"`
	Target          Vec3    `json:"target"`
}

// ModelTransform places and scales the model in the scene.
type ModelTransform struct {
	Position Vec3    `json:"position"`
	Scale    float64 `json:"scale"`
}

// AnimationSettings toggles model animation and optionally names the clip.
type AnimationSettings struct {
	Play bool    `json:"play"`
	Name *string `json:"name"`
}

// DefaultViewerConfig returns the settings used when a catalog entry omits them.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Camera: CameraConfig{Position: Vec3{8, -1, 1}, FOV: 50},
		Lights: LightsConfig{
			AmbientLight:      AmbientLight{Intensity: 0.5},
			SpotLight:         &SpotLight{Position: Vec3{10, 10, 10}, Angle: 0.15, Penumbra: 1},
			PointLight:        &PointLight{Position: Vec3{-10, -10, -10}},
			DirectionalLights: []DirectionalLight{},
		},
		Controls: ControlsConfig{
			EnableZoom:      true,
			EnablePan:       true,
			EnableRotate:    true,
			AutoRotate:      false,
			AutoRotateSpeed: 0.5,
			Target:          Vec3{0, 0, 0},
		},
		ModelTransform:    ModelTransform{Position: Vec3{0, 0, 0}, Scale: 1},
		AnimationSettings: AnimationSettings{Play: true},
	}
}

// UnmarshalJSON decodes a model reference on top of the default viewer
// settings, so any field the document leaves out keeps its default.
func (m *ThreeDModel) UnmarshalJSON(data []byte) error {
	type plain ThreeDModel
	decoded := plain{ViewerConfig: DefaultViewerConfig()}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("invalid threeDModel: %w", err)
	}
	if decoded.ViewerConfig.Lights.DirectionalLights == nil {
		decoded.ViewerConfig.Lights.DirectionalLights = []DirectionalLight{}
	}
	*m = ThreeDModel(decoded)
	return nil
}
