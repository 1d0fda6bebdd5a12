//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-delivery-board/models"
)

// DeliveryRepository persists delivery records. Every method is a single
// statement or a single transaction; no transaction spans two calls.
type DeliveryRepository interface {
	// CreateSchemaIfAbsent applies the embedded migrations.
	CreateSchemaIfAbsent(ctx context.Context) error

	// AppendRecords inserts all records atomically.
	AppendRecords(ctx context.Context, records ...models.DeliveryRecord) error

	// DeleteByMonth removes every record of the reference month and returns
	// the number of removed rows.
	DeleteByMonth(ctx context.Context, month string) (int64, error)

	// DeleteAll removes every record and returns the number of removed rows.
	DeleteAll(ctx context.Context) (int64, error)

	// DistinctMonths lists the stored reference months, newest first.
	DistinctMonths(ctx context.Context) ([]string, error)

	// DistinctCollaborators lists the stored collaborators in ascending
	// order, without ignored.
	DistinctCollaborators(ctx context.Context, ignored string) ([]string, error)

	// QueryByMonths returns the records of the given months in insertion
	// order, or every record when no month is given.
	QueryByMonths(ctx context.Context, months ...string) ([]models.DeliveryRecord, error)
}

// ProfileRepository persists profile password digests.
type ProfileRepository interface {
	// GetPasswordHash returns the stored digest or [ErrCredentialNotFound].
	GetPasswordHash(ctx context.Context, profile models.Profile) (string, error)

	// UpsertPasswordHash creates or replaces the digest of profile.
	UpsertPasswordHash(ctx context.Context, profile models.Profile, hash string) error
}
