package gateway

import (
	"context"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/uniuri"
)

const (
	// DefaultFolder receives uploads that name no folder.
	DefaultFolder = "uploads"

	// MediaRoute is the public path prefix media objects are served from.
	MediaRoute = "/media/"
)

// MediaStore handles media uploads: raw bytes go to the blob store, the
// describing record to the media_files table.
type MediaStore struct {
	backend *backend.Client
	records *Store[models.MediaFile]
	baseURL string
}

// NewMediaStore creates the media gateway. baseURL is the public address
// of the web service, used to build object URLs.
func NewMediaStore(b *backend.Client, records *Store[models.MediaFile], baseURL string) *MediaStore {
	return &MediaStore{
		backend: b,
		records: records,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Records exposes the underlying record store for listing and mirroring.
func (m *MediaStore) Records() *Store[models.MediaFile] {
	return m.records
}

// objectSuffixLength disambiguates objects uploaded within the same
// millisecond.
const objectSuffixLength = 6

// Upload stores the blob and creates its metadata record. Two phases:
// the object is stored under "{folder}/{epoch-millis}-{rand}{ext}" first,
// then the record referencing its public URL is created. When the record
// creation fails the stored object is orphaned; there is no compensating
// delete.
func (m *MediaStore) Upload(
	ctx context.Context,
	originalName string,
	blob []byte,
	folder string,
) (*models.MediaFile, error) {
	if folder == "" {
		folder = DefaultFolder
	}

	ext := path.Ext(originalName)
	objectPath := folder + "/" + strconv.FormatInt(time.Now().UnixMilli(), 10) +
		"-" + uniuri.NewLen(objectSuffixLength) + ext

	if err := m.backend.Files.Set(objectPath, blob, 0); err != nil {
		return nil, errors.Wrap(err, "failed to store media object")
	}

	record := &models.MediaFile{
		Filename:     path.Base(objectPath),
		OriginalName: originalName,
		MimeType:     detectMimeType(ext, blob),
		Size:         int64(len(blob)),
		Path:         objectPath,
		URL:          m.baseURL + MediaRoute + objectPath,
		Folder:       folder,
	}

	if err := m.records.Create(ctx, record); err != nil {
		log.Error().Err(err).Str("path", objectPath).
			Msg("media record creation failed, stored object is orphaned")

		return nil, err
	}

	return record, nil
}

// Open returns the raw bytes of the object stored under the given path.
func (m *MediaStore) Open(objectPath string) ([]byte, error) {
	blob, err := m.backend.Files.Get(objectPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read media object")
	}

	if blob == nil {
		return nil, errors.Wrapf(ErrNotFound, "no media object at %s", objectPath)
	}

	return blob, nil
}

// Delete removes the stored object, then the record. The object removal
// is best-effort: its failure is logged and does not block the record
// deletion, whose error is authoritative.
func (m *MediaStore) Delete(ctx context.Context, id uint64) error {
	record, ok := m.records.Get(ctx, id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "failed to delete media record %d", id)
	}

	if err := m.backend.Files.Delete(record.Path); err != nil {
		log.Warn().Err(err).Str("path", record.Path).
			Msg("failed to remove media object, record will be deleted anyway")
	}

	return m.records.Delete(ctx, id)
}

// detectMimeType prefers the extension mapping and falls back to content
// sniffing for unknown extensions.
func detectMimeType(ext string, blob []byte) string {
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}

	return http.DetectContentType(blob)
}
