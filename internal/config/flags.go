package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagChunk      = flag.Uint("chunk", 0, "Tile chunk size in cells")
	flagLOD        = flag.Int("lod", -1, "Tile level of detail")
	flagTiles      = flag.Int("tiles", 0, "Generate an NxN block of tiles")
	flagKernel     = flag.String("kernel", "", "Noise kernel (perlin, simplex)")
	flagSeed       = flag.Int64("seed", 0, "Noise seed")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWireframe  = flag.Bool("wireframe", false, "Render the mesh as wireframe")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagChunk > 0 {
		cfg.Terrain.ChunkSize = uint32(*flagChunk)
	}
	if *flagLOD >= 0 {
		cfg.Terrain.LOD = uint32(*flagLOD)
	}
	if *flagTiles > 0 {
		cfg.Terrain.TilesX = *flagTiles
		cfg.Terrain.TilesZ = *flagTiles
	}
	if *flagKernel != "" {
		cfg.Noise.Kernel = *flagKernel
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWireframe {
		cfg.Graphics.Wireframe = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
