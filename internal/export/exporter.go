// Package export writes the finished site descriptor where the static site
// generator picks it up: site.json and/or site.yaml plus a manifest.json
// that records what was written.
package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/identity"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// ManifestFile records the last export.
const ManifestFile = "manifest.json"

const manifestVersion = 1

var (
	ErrUnknownFormat   = errors.New("export: unknown format")
	ErrNoWriter        = errors.New("export: no artifact writer configured")
	ErrManifestCorrupt = errors.New("export: manifest is not valid json")
)

// Manifest describes an export.
type Manifest struct {
	Version     int               `json:"version"`
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Lang        string            `json:"lang"`
	Checksum    string            `json:"checksum"`
	Formats     []Format          `json:"formats"`
	Files       map[string]string `json:"files"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Request selects what to export.
type Request struct {
	Formats []Format
	// Force writes even when the manifest says nothing changed.
	Force bool
	// DryRun computes the result without writing anything.
	DryRun bool
}

// Result reports an export.
type Result struct {
	ID       uuid.UUID
	Checksum string
	Files    []string
	// Removed lists outputs of the previous export that this one no longer
	// produces. On a dry run they are reported but kept.
	Removed []string
	Skipped bool
	DryRun  bool
}

// Exporter writes descriptors through an ArtifactWriter.
type Exporter struct {
	writer ArtifactWriter
	logger interfaces.Logger
	now    func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the exporter logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source stamped into the manifest.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExporter returns an exporter writing through writer.
func NewExporter(writer ArtifactWriter, opts ...Option) *Exporter {
	e := &Exporter{
		writer: writer,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Checksum is the sha256 of the descriptor's JSON encoding. It changes
// exactly when site.json would change.
func Checksum(d descriptor.Descriptor) (string, error) {
	data, err := Encode(d, FormatJSON)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Export writes d in every requested format followed by the manifest. When
// the stored manifest already carries the same checksum and formats the
// write is skipped unless req.Force is set.
func (e *Exporter) Export(ctx context.Context, d descriptor.Descriptor, req Request) (*Result, error) {
	if e.writer == nil {
		return nil, ErrNoWriter
	}
	if ctx == nil {
		ctx = context.Background()
	}
	formats := req.Formats
	if len(formats) == 0 {
		formats = []Format{FormatJSON}
	}

	checksum, err := Checksum(d)
	if err != nil {
		return nil, err
	}
	result := &Result{
		ID:       identity.SiteUUID(d.Lang, d.Title),
		Checksum: checksum,
		DryRun:   req.DryRun,
	}

	files := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := Encode(d, format)
		if err != nil {
			return nil, err
		}
		files[format.FileName()] = data
		result.Files = append(result.Files, format.FileName())
	}

	logger := logging.WithFields(e.logger.WithContext(ctx), map[string]any{
		"checksum": checksum,
		"files":    len(files),
	})

	previous, err := e.readManifest(ctx)
	if err != nil {
		if !req.Force || !errors.Is(err, ErrManifestCorrupt) {
			return nil, err
		}
		logger.Warn("export.manifest.ignored", "error", err)
		previous = nil
	}
	if !req.Force && e.upToDate(ctx, previous, checksum, formats, files) {
		result.Skipped = true
		logger.Info("export.skipped")
		return result, nil
	}
	result.Removed = staleFiles(previous, files)

	if req.DryRun {
		logger.Info("export.dry_run", "stale", len(result.Removed))
		return result, nil
	}

	manifest := Manifest{
		Version:     manifestVersion,
		ID:          result.ID.String(),
		Title:       d.Title,
		Lang:        d.Lang,
		Checksum:    checksum,
		Formats:     formats,
		Files:       make(map[string]string, len(files)),
		GeneratedAt: e.now().UTC(),
	}
	for _, name := range result.Files {
		data := files[name]
		if err := e.writer.WriteFile(ctx, name, data); err != nil {
			logger.Error("export.write.failed", "file", name, "error", err)
			return nil, err
		}
		sum := sha256.Sum256(data)
		manifest.Files[name] = hex.EncodeToString(sum[:])
	}

	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode manifest: %w", err)
	}
	if err := e.writer.WriteFile(ctx, ManifestFile, append(encoded, '\n')); err != nil {
		logger.Error("export.write.failed", "file", ManifestFile, "error", err)
		return nil, err
	}

	for _, name := range result.Removed {
		if err := e.writer.RemoveFile(ctx, name); err != nil {
			logger.Error("export.remove.failed", "file", name, "error", err)
			return nil, err
		}
	}

	logger.Info("export.written", "removed", len(result.Removed))
	return result, nil
}

// staleFiles returns the descriptor files listed by previous that are not
// part of files. Only names an export can produce are considered, whatever
// else the manifest claims.
func staleFiles(previous *Manifest, files map[string][]byte) []string {
	if previous == nil {
		return nil
	}
	var stale []string
	for _, format := range []Format{FormatJSON, FormatYAML} {
		name := format.FileName()
		if _, listed := previous.Files[name]; !listed {
			continue
		}
		if _, kept := files[name]; kept {
			continue
		}
		stale = append(stale, name)
	}
	return stale
}

// upToDate reports whether previous describes exactly the files about to be
// written and those files are still on disk unchanged.
func (e *Exporter) upToDate(ctx context.Context, previous *Manifest, checksum string, formats []Format, files map[string][]byte) bool {
	if previous == nil || previous.Checksum != checksum || !slices.Equal(previous.Formats, formats) {
		return false
	}
	for name, data := range files {
		stored, err := e.writer.ReadFile(ctx, name)
		if err != nil || !bytes.Equal(stored, data) {
			return false
		}
	}
	return true
}

// ReadManifest returns the stored manifest, or nil when none exists.
func (e *Exporter) ReadManifest(ctx context.Context) (*Manifest, error) {
	if e.writer == nil {
		return nil, ErrNoWriter
	}
	return e.readManifest(ctx)
}

func (e *Exporter) readManifest(ctx context.Context) (*Manifest, error) {
	data, err := e.writer.ReadFile(ctx, ManifestFile)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("export: read manifest: %w", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestCorrupt, err)
	}
	return &manifest, nil
}
