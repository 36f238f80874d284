package usecase

import (
	"math"
	"strconv"

	"github.com/unipro/glassfinder/internal/domain"
)

// UnknownDevice is the single candidate returned when a resolution is not in the table
const UnknownDevice = "unknown"

// IOSDevices maps physical iPhone screen resolutions (short side first) to the
// models that ship with them. Several models share one resolution.
var IOSDevices = []domain.DeviceProfile{
	{GPU: "a11", Resolution: "1125x2436", Models: []string{"iPhone X", "iPhone Xs", "iPhone 11 Pro"}},
	{GPU: "a12", Resolution: "828x1792", Models: []string{"iPhone Xr", "iPhone 11"}},
	{GPU: "a12", Resolution: "1242x2688", Models: []string{"iPhone Xs Max", "iPhone 11 Pro Max"}},
	{GPU: "a13", Resolution: "750x1334", Models: []string{"iPhone SE 2", "iPhone SE 3"}},
	{GPU: "a14", Resolution: "1080x2340", Models: []string{"iPhone 12 mini", "iPhone 13 mini"}},
	{GPU: "a14", Resolution: "1170x2532", Models: []string{"iPhone 12", "iPhone 12 Pro", "iPhone 13", "iPhone 13 Pro", "iPhone 14"}},
	{GPU: "a14", Resolution: "1284x2778", Models: []string{"iPhone 12 Pro Max", "iPhone 13 Pro Max", "iPhone 14 Plus"}},
	{GPU: "a16", Resolution: "1179x2556", Models: []string{"iPhone 14 Pro", "iPhone 15", "iPhone 15 Pro", "iPhone 16"}},
	{GPU: "a16", Resolution: "1290x2796", Models: []string{"iPhone 14 Pro Max", "iPhone 15 Plus", "iPhone 15 Pro Max", "iPhone 16 Plus"}},
	{GPU: "a17", Resolution: "1206x2622", Models: []string{"iPhone 16 Pro"}},
	{GPU: "a17", Resolution: "1320x2868", Models: []string{"iPhone 16 Pro Max"}},
}

// DeviceResolver looks device models up by physical screen resolution
type DeviceResolver struct {
	devices []domain.DeviceProfile
}

// NewDeviceResolver creates a resolver over the given table; nil uses IOSDevices
func NewDeviceResolver(devices []domain.DeviceProfile) *DeviceResolver {
	if devices == nil {
		devices = IOSDevices
	}
	return &DeviceResolver{devices: devices}
}

// ResolveDevice returns the candidate models for an exact "WxH" resolution,
// or a single UnknownDevice entry when the resolution is not listed.
func (r *DeviceResolver) ResolveDevice(resolution string) []string {
	for _, device := range r.devices {
		if device.Resolution == resolution {
			models := make([]string, len(device.Models))
			copy(models, device.Models)
			return models
		}
	}
	return []string{UnknownDevice}
}

// Devices returns the resolution table
func (r *DeviceResolver) Devices() []domain.DeviceProfile {
	return r.devices
}

// ScreenResolution builds the physical resolution key from logical screen
// dimensions and the device pixel ratio. A ratio <= 0 counts as 1.
func ScreenResolution(width, height, pixelRatio float64) string {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	short := math.Min(width, height) * pixelRatio
	long := math.Max(width, height) * pixelRatio
	return formatDimension(short) + "x" + formatDimension(long)
}

// formatDimension prints a number in its shortest form ("1170", "1080.5")
func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
