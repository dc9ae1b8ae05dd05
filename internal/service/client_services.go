package service

import (
	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/models"
)

type ClientServices struct {
	VersionGuard            VersionGuard
	BatchFetcher            BatchFetcher
	IncrementalSynchronizer IncrementalSynchronizer
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo) *ClientServices {
	return &ClientServices{
		VersionGuard:            NewVersionGuard(storages.Records, storages.Snapshots, buildInfo.SchemaVersion(cfg.App.SchemaVersion)),
		BatchFetcher:            NewBatchFetcher(storages.Records, storages.Snapshots, serverAdapter, cfg.Cache.BatchMaxAge),
		IncrementalSynchronizer: NewIncrementalSynchronizer(storages.Records, storages.Snapshots, serverAdapter),
	}
}
