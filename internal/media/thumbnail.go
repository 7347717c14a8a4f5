package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Generator captures a single preview frame from a media file. Callers fall
// back to FallbackURL when generation fails; a thumbnail problem must never
// fail the upload.
type Generator struct {
	ffmpegPath  string
	tempDir     string
	fallbackURL string
	logger      Logger
}

// NewGenerator creates a new thumbnail generator
func NewGenerator(ffmpegPath, tempDir, fallbackURL string, logger Logger) *Generator {
	return &Generator{
		ffmpegPath:  ffmpegPath,
		tempDir:     tempDir,
		fallbackURL: fallbackURL,
		logger:      logger,
	}
}

// seekOffset returns the capture offset in seconds: 5s, or the midpoint for
// media shorter than 10s
func seekOffset(durationSeconds int) float64 {
	half := float64(durationSeconds) / 2
	if half < 5 {
		return half
	}
	return 5
}

// Generate renders one frame at the deterministic offset into a temporary
// JPEG and returns its path. The caller owns the file.
func (g *Generator) Generate(ctx context.Context, videoPath string, durationSeconds int) (string, error) {
	if durationSeconds <= 0 {
		return "", fmt.Errorf("cannot capture a frame from zero-duration media")
	}

	outputPath := filepath.Join(g.tempDir, fmt.Sprintf("thumb_%s.jpg", uuid.New().String()))

	cmd := exec.CommandContext(ctx, g.ffmpegPath,
		"-ss", fmt.Sprintf("%.2f", seekOffset(durationSeconds)),
		"-i", videoPath,
		"-vframes", "1",
		"-q:v", "2",
		outputPath,
	)

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg thumbnail capture failed: %v", err)
	}

	if info, err := os.Stat(outputPath); err != nil || info.Size() == 0 {
		os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg produced no thumbnail frame")
	}

	return outputPath, nil
}

// FallbackURL returns the stock image substituted when generation fails
func (g *Generator) FallbackURL() string {
	return g.fallbackURL
}
