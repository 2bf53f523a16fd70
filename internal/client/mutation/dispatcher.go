// Package mutation performs the three remote writes of the CLI: create
// project, create document and upload file.
//
// Each kind keeps an immutable form value, a pending flag and the error of
// its last attempt. A submit with an invalid form or while the same kind is
// pending does nothing. A successful write resets the form, unless it was
// edited while the write was pending, and invalidates the cached list of
// exactly that kind.
package mutation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/logging"
)

// Writer is the part of the remote client used for mutations.
type Writer interface {
	Insert(ctx context.Context, table string, row models.Row) error
	Upload(ctx context.Context, bucket, key string, file *models.FileHandle) error
}

// Invalidator is satisfied by *query.Cache.
type Invalidator interface {
	Invalidate(kind models.Kind)
}

// Dispatcher runs the create-project, create-document and upload-file
// mutations and tracks their pending flags and last errors.
type Dispatcher struct {
	writer Writer
	cache  Invalidator
	bucket string
	logger logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	project  models.ProjectForm
	document models.DocumentForm
	upload   models.UploadForm
	pending  map[models.Kind]bool
	errs     map[models.Kind]error
}

func NewDispatcher(w Writer, cache Invalidator, bucket string, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		writer:  w,
		cache:   cache,
		bucket:  bucket,
		logger:  logger.With("module", "mutation"),
		now:     time.Now,
		pending: make(map[models.Kind]bool),
		errs:    make(map[models.Kind]error),
	}
}

// UploadKey names a blob "<unix-millis>_<name>". Uniqueness is best effort:
// two uploads of one name within the same millisecond collide.
func UploadKey(at time.Time, name string) string {
	return fmt.Sprintf("%d_%s", at.UnixMilli(), name)
}

func (d *Dispatcher) SetProjectName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.project = models.ProjectForm{Name: name, Description: d.project.Description}
}

func (d *Dispatcher) SetProjectDescription(desc string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.project = models.ProjectForm{Name: d.project.Name, Description: desc}
}

func (d *Dispatcher) SetDocumentName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.document = models.DocumentForm{Name: name}
}

func (d *Dispatcher) SetUploadFile(f *models.FileHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.upload = models.UploadForm{File: f}
}

func (d *Dispatcher) ProjectForm() models.ProjectForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.project
}

func (d *Dispatcher) DocumentForm() models.DocumentForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.document
}

func (d *Dispatcher) UploadForm() models.UploadForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload
}

func (d *Dispatcher) IsPending(kind models.Kind) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending[kind]
}

// LastError returns the *models.MutationError of the kind's last attempt,
// or nil if it succeeded or never ran.
func (d *Dispatcher) LastError(kind models.Kind) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errs[kind]
}

// SubmitProject creates a project from the current form. submitted is false
// when the form is invalid or a project creation is already pending.
func (d *Dispatcher) SubmitProject(ctx context.Context) (submitted bool, err error) {
	d.mu.Lock()
	form := d.project
	d.mu.Unlock()

	return d.submit(ctx, models.KindProject, form.Validate, func(ctx context.Context) error {
		return d.writer.Insert(ctx, models.KindProject.Table(), form.Row())
	}, func() {
		if d.project == form {
			d.project = models.ProjectForm{}
		}
	})
}

func (d *Dispatcher) SubmitDocument(ctx context.Context) (submitted bool, err error) {
	d.mu.Lock()
	form := d.document
	d.mu.Unlock()

	return d.submit(ctx, models.KindDocument, form.Validate, func(ctx context.Context) error {
		return d.writer.Insert(ctx, models.KindDocument.Table(), form.Row())
	}, func() {
		if d.document == form {
			d.document = models.DocumentForm{}
		}
	})
}

// SubmitUpload stores the selected file under a timestamped key in the
// configured bucket.
func (d *Dispatcher) SubmitUpload(ctx context.Context) (submitted bool, err error) {
	d.mu.Lock()
	form := d.upload
	d.mu.Unlock()

	return d.submit(ctx, models.KindFile, form.Validate, func(ctx context.Context) error {
		key := UploadKey(d.now(), form.File.Name)
		d.logger.Debug(ctx, "uploading", "bucket", d.bucket, "key", key, "bytes", len(form.File.Data))
		return d.writer.Upload(ctx, d.bucket, key, form.File)
	}, func() {
		if d.upload == form {
			d.upload = models.UploadForm{}
		}
	})
}

func (d *Dispatcher) submit(ctx context.Context, kind models.Kind, validate func() error, exec func(context.Context) error, reset func()) (bool, error) {
	d.mu.Lock()
	if d.pending[kind] {
		d.mu.Unlock()
		return false, nil
	}
	if err := validate(); err != nil {
		d.mu.Unlock()
		d.logger.Debug(ctx, "submit skipped", "kind", kind.String(), "reason", err)
		return false, nil
	}
	d.pending[kind] = true
	delete(d.errs, kind)
	d.mu.Unlock()

	err := exec(ctx)

	d.mu.Lock()
	d.pending[kind] = false
	if err != nil {
		merr := &models.MutationError{Kind: kind, Err: err}
		d.errs[kind] = merr
		d.mu.Unlock()
		d.logger.Warn(ctx, "mutation failed", "kind", kind.String(), "error", err)
		return true, merr
	}
	reset()
	d.mu.Unlock()

	d.logger.Info(ctx, "mutation succeeded", "op", kind.Op())
	d.cache.Invalidate(kind)
	return true, nil
}
