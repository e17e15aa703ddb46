package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// entryDoc is the Firestore document representation of one device entry
type entryDoc struct {
	Value     []byte    `firestore:"Value"`
	UpdatedAt time.Time `firestore:"UpdatedAt"`
}

// Firestore stores device entries under devices/{deviceID}/entries/{key}
type Firestore struct {
	client           *firestore.Client
	deviceID         types.DeviceID
	collectionPrefix string
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes the root collection name, used to isolate test runs
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, deviceID types.DeviceID, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:   client,
		deviceID: deviceID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Firestore) entry(key types.StorageKey) *firestore.DocumentRef {
	return f.client.Collection(f.collectionPrefix+"devices").Doc(f.deviceID.String()).
		Collection("entries").Doc(key.String())
}

func (f *Firestore) Get(ctx context.Context, key types.StorageKey) ([]byte, error) {
	doc, err := f.entry(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get entry", goerr.V("key", key))
	}

	var d entryDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal entry", goerr.V("key", key))
	}
	if d.Value == nil {
		return []byte{}, nil
	}
	return d.Value, nil
}

func (f *Firestore) Put(ctx context.Context, key types.StorageKey, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	doc := &entryDoc{Value: value, UpdatedAt: time.Now().UTC()}
	if _, err := f.entry(key).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put entry", goerr.V("key", key))
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, key types.StorageKey) error {
	if _, err := f.entry(key).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete entry", goerr.V("key", key))
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
