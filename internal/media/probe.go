package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/edulearn/platform/internal/errors"
)

// Metadata holds the properties derived from a media file
type Metadata struct {
	DurationSeconds int
	Width           int
	Height          int
}

// Resolution formats the metadata as "WxH"
func (m *Metadata) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Prober extracts duration and resolution from a media file via ffprobe.
// The wait is bounded: if the probe does not complete within the configured
// timeout, a MetadataError is returned instead of blocking the attempt.
type Prober struct {
	probePath string
	timeout   time.Duration
	logger    Logger
}

// NewProber creates a new metadata prober
func NewProber(probePath string, timeout time.Duration, logger Logger) *Prober {
	return &Prober{
		probePath: probePath,
		timeout:   timeout,
		logger:    logger,
	}
}

// probeOutput mirrors the subset of ffprobe's JSON output we consume
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Probe runs ffprobe against the file at path
func (p *Prober) Probe(ctx context.Context, path string) (*Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.probePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	output, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, errors.NewMetadataError(errors.ErrMsgMetadataWait, ctx.Err())
	}
	if err != nil {
		return nil, errors.NewMetadataError("ffprobe failed", err)
	}

	return parseProbeOutput(output)
}

// parseProbeOutput decodes ffprobe JSON into Metadata
func parseProbeOutput(output []byte) (*Metadata, error) {
	var probed probeOutput
	if err := json.Unmarshal(output, &probed); err != nil {
		return nil, errors.NewMetadataError("failed to parse ffprobe output", err)
	}

	duration, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return nil, errors.NewMetadataError("media has no readable duration", err)
	}

	meta := &Metadata{
		DurationSeconds: int(duration + 0.5),
	}

	for _, stream := range probed.Streams {
		if stream.CodecType == "video" {
			meta.Width = stream.Width
			meta.Height = stream.Height
			break
		}
	}

	if meta.Width == 0 || meta.Height == 0 {
		return nil, errors.NewMetadataError("media has no video stream", nil)
	}

	return meta, nil
}
