// File path: internal/export/pipeline.go
package export

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
	"github.com/nicodishanthj/mopgen/internal/render"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
	"github.com/nicodishanthj/mopgen/internal/storage"
	"github.com/nicodishanthj/mopgen/internal/synth"
)

// presignExpiry is how long an export download link stays valid.
const presignExpiry = 24 * time.Hour

// Result describes a completed export: where the rendered artifact lives and
// how a client should present it.
type Result struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Format      string `json:"format"`
	ObjectKey   string `json:"objectKey"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Pipeline renders a MOP into a requested format, uploads the artifact, and
// hands back a presigned download link. Rendering happens in a temp file
// which is removed on every exit path.
type Pipeline struct {
	store   *sqlite.Store
	objects storage.ObjectStore
}

func NewPipeline(store *sqlite.Store, objects storage.ObjectStore) *Pipeline {
	return &Pipeline{store: store, objects: objects}
}

// Export runs the full pipeline for one MOP. The format is validated before
// any other work; a MOP or document that cannot be resolved yields
// ErrNotFound untouched.
func (p *Pipeline) Export(ctx context.Context, mopID, rawFormat string) (Result, error) {
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		return Result{}, err
	}
	if p.objects == nil {
		return Result{}, fmt.Errorf("%w: object storage not configured", common.ErrStorage)
	}

	mop, err := p.store.MOPByID(ctx, mopID)
	if err != nil {
		return Result{}, err
	}
	doc, err := p.store.DocumentByID(ctx, mop.DocumentID)
	if err != nil {
		return Result{}, err
	}
	reviews, err := p.store.ReviewsForMOP(ctx, mop.ID)
	if err != nil {
		return Result{}, err
	}
	steps := synth.Synthesize(synth.ParseExtraction(doc.ExtractedJSON))

	tmp, err := os.CreateTemp("", "mopgen-export-*."+format.Extension())
	if err != nil {
		return Result{}, fmt.Errorf("create export temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	renderErr := render.Render(tmp, render.Document{MOP: mop, Steps: steps, Reviews: reviews}, format)
	closeErr := tmp.Close()
	if renderErr != nil {
		return Result{}, renderErr
	}
	if closeErr != nil {
		return Result{}, fmt.Errorf("close export temp file: %w", closeErr)
	}

	key := fmt.Sprintf("%s-%d.%s", mop.ID, time.Now().Unix(), format.Extension())
	if err := p.objects.Upload(ctx, key, tmp.Name()); err != nil {
		return Result{}, err
	}
	url, err := p.objects.PresignedURL(ctx, key, int64(presignExpiry/time.Second))
	if err != nil {
		return Result{}, err
	}

	common.Logger().Info("export complete", "mop", mop.ID, "format", format, "key", key)
	return Result{
		URL:         url,
		Filename:    exportFilename(mop, format),
		ContentType: format.ContentType(),
		Format:      string(format),
		ObjectKey:   key,
		ExpiresIn:   int64(presignExpiry / time.Second),
	}, nil
}

var unsafeFilenameRunes = regexp.MustCompile(`[^a-zA-Z0-9]`)

// exportFilename derives a download name from the MOP title, replacing every
// rune outside [a-zA-Z0-9] with an underscore.
func exportFilename(mop model.MOP, format render.Format) string {
	base := unsafeFilenameRunes.ReplaceAllString(mop.Title, "_")
	if base == "" {
		base = "mop"
	}
	return base + "." + format.Extension()
}
