// Package main is the headless terrain generator. It builds a block of tiles
// from the configuration and logs per-tile statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

var flagDumpConfig = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagDumpConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	opts, err := cfg.TileOptions()
	if err != nil {
		return err
	}

	tc := cfg.Terrain
	logger.Info("generating terrain",
		zap.Uint32("chunkSize", tc.ChunkSize),
		zap.Uint32("lod", tc.LOD),
		zap.Int("tilesX", tc.TilesX),
		zap.Int("tilesZ", tc.TilesZ),
		zap.String("kernel", cfg.Noise.Kernel),
		zap.Int64("seed", cfg.Noise.Seed),
		zap.Int("octaves", cfg.Noise.Octaves),
	)

	start := time.Now()
	tiles, err := terrain.GenerateBlock(tc.ChunkSize, tc.LOD, tc.GridOffsetX, tc.GridOffsetZ, tc.TilesX, tc.TilesZ, opts...)
	if err != nil {
		return err
	}

	totals := make(map[string]int)
	var vertices, indices int
	for _, t := range tiles {
		st := t.Stats()
		x, z := t.WorldOffset()
		mesh := t.Mesh()

		logger.Info("tile",
			zap.Float64("worldX", x),
			zap.Float64("worldZ", z),
			zap.Uint32("scaledSize", t.ScaledSize()),
			zap.Float32("min", st.Min),
			zap.Float32("max", st.Max),
			zap.Float32("mean", st.Mean),
			zap.Int("vertices", mesh.VertexCount),
			zap.Int("indices", mesh.IndexCount),
		)

		for name, n := range st.BandCells {
			totals[name] += n
		}
		vertices += mesh.VertexCount
		indices += mesh.IndexCount
	}

	logBands(tiles[0].Bands(), totals)
	logger.Info("terrain generated",
		zap.Int("tiles", len(tiles)),
		zap.Int("vertices", vertices),
		zap.Int("indices", indices),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// logBands logs the share of cells per band, lowest band first.
func logBands(bands terrain.BandTable, counts map[string]int) {
	var total int
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return
	}

	ordered := make(terrain.BandTable, len(bands))
	copy(ordered, bands)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Floor < ordered[j].Floor })

	for _, b := range ordered {
		n := counts[b.Name]
		logger.Sugar.Infof("band %-8s %5.1f%% (%d cells)", b.Name, 100*float64(n)/float64(total), n)
	}
}
