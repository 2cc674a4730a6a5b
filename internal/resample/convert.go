package resample

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Convert resamples the export at inputPath onto a one-minute grid and writes it to
// outputPath.
func Convert(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	log.Info().Str("path", inputPath).Msg("Reading export")

	d, err := Ingest(f)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}

	log.Info().
		Int("entities", len(d.Entities())).
		Int("attributes", len(d.Attributes())).
		Int("readings", d.Readings()).
		Msg("Ingested export")

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	d.Sort()

	g, err := Span(d)
	if err != nil {
		return Stats{}, err
	}

	log.Info().
		Time("start", g.Start).
		Time("end", g.End).
		Int("rows", g.Len()).
		Msg("Resampling onto minute grid")

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	stats, err := WriteFile(outputPath, d, g)
	if err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Info().
		Str("path", outputPath).
		Int("rows", stats.Rows).
		Int("columns", stats.Columns).
		Msg("Wrote resampled output")

	return stats, nil
}
