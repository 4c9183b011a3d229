package storage

import "motiongfx/internal/ports"

// Provider is the archiving storage contract. It is an alias to
// ports.StorageProvider to keep call-sites simple.
type Provider = ports.StorageProvider

type (
	PutObjectInput  = ports.PutObjectInput
	PutObjectOutput = ports.PutObjectOutput
)
