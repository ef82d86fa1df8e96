package lithophane

import (
	"github.com/hschendel/stl"
	"go.uber.org/zap"

	"github.com/rneatherway/lithophane/internal/logger"
)

// Build generates the mesh for hm like Generate and logs what it made:
// planned size, floor height, a negative base and any zero-area triangles.
func Build(hm *Heightmap, baseHeight float32) []stl.Triangle {
	if baseHeight < 0 {
		logger.Warn("negative base height, the floor will cut through the surface",
			zap.Float32("base_height", baseHeight))
	}

	logger.Info("generating mesh",
		zap.Uint("width", hm.Width()),
		zap.Uint("height", hm.Height()),
		zap.Int("triangles", TriangleCount(hm.Width(), hm.Height())),
		zap.Float32("model_min_height", hm.FloorHeight(baseHeight)))
	mesh := Generate(hm, baseHeight)

	if stats := Measure(mesh); stats.Degenerate > 0 {
		logger.Warn("mesh has zero-area triangles",
			zap.Int("degenerate", stats.Degenerate),
			zap.Int("triangles", stats.Triangles))
	}
	return mesh
}
