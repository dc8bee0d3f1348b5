package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"sphere-raytracer/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame   int             `json:"frame"`
	Image   string          `json:"image"`
	Spheres []mathutil.Vec3 `json:"spheres"`
}

// WriteManifest writes manifest.json listing every successfully rendered frame.
// Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		entries = append(entries, ManifestEntry{
			Frame:   r.Frame,
			Image:   filepath.ToSlash(rel),
			Spheres: r.Spheres,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
