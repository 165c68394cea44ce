package analytics

import (
	"os"
	"runtime"

	"explorar/internal/domain"
)

// CollectDeviceInfo builds the static per-session device snapshot.
func CollectDeviceInfo(appVersion string) domain.DeviceInfo {
	if appVersion == "" {
		appVersion = "1.0.0"
	}

	model := "Unknown"
	if host, err := os.Hostname(); err == nil && host != "" {
		model = host
	}

	return domain.DeviceInfo{
		"platform":    runtime.GOOS,
		"arch":        runtime.GOARCH,
		"deviceModel": model,
		"appVersion":  appVersion,
	}
}
