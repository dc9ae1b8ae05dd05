// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/mock"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/models"
)

func newTestSynchronizer(t *testing.T) (
	IncrementalSynchronizer,
	store.RecordStore,
	*mock.MockServerAdapter,
	*mock.MockSnapshotStorage,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	records := store.NewRecordStore()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSnapshots := mock.NewMockSnapshotStorage(ctrl)

	return NewIncrementalSynchronizer(records, mockSnapshots, mockAdapter), records, mockAdapter, mockSnapshots
}

func updatedStatusResponse() models.IncrementalResponse {
	return models.IncrementalResponse{
		Token: "t2",
		Changes: map[models.DictType]models.TypeDiff{
			projectStatus: {
				Added:        []models.DictEntry{},
				Updated:      []models.DictEntry{{Code: "A", Label: "已完成", SortOrder: 1}},
				RemovedCodes: []string{},
			},
		},
	}
}

// ─────────────────────────────────────────────
// FetchIncremental: applying changes
// ─────────────────────────────────────────────

func TestFetchIncremental_AppliesDiffAfterBatch(t *testing.T) {
	s, records, mockAdapter, mockSnapshots := newTestSynchronizer(t)
	require.NoError(t, records.ApplyFull(projectStatus, []models.DictEntry{{Code: "A", Label: "进行中", SortOrder: 1}}))

	mockAdapter.EXPECT().
		FetchIncremental(gomock.Any(), models.SyncToken("")).
		Return(updatedStatusResponse(), nil)
	mockSnapshots.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap models.Snapshot) error {
			assert.Equal(t, models.SyncToken("t2"), snap.Meta.SyncToken)
			return nil
		})

	require.NoError(t, s.FetchIncremental(context.Background()))

	got := records.Get(projectStatus)
	require.Len(t, got, 1)
	assert.Equal(t, "已完成", got[0].Label)
	assert.Equal(t, models.SyncToken("t2"), records.Meta().SyncToken)
}

func TestFetchIncremental_SendsHeldToken(t *testing.T) {
	s, records, mockAdapter, mockSnapshots := newTestSynchronizer(t)
	records.AdvanceToken("7")

	mockAdapter.EXPECT().
		FetchIncremental(gomock.Any(), models.SyncToken("7")).
		Return(models.IncrementalResponse{Token: "9"}, nil)
	mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.FetchIncremental(context.Background()))
	assert.Equal(t, models.SyncToken("9"), records.Meta().SyncToken)
}

func TestFetchIncremental_KeepsUnrelatedTypes(t *testing.T) {
	s, records, mockAdapter, mockSnapshots := newTestSynchronizer(t)
	require.NoError(t, records.ApplyFull("currency", []models.DictEntry{{Code: "USD"}}))

	mockAdapter.EXPECT().FetchIncremental(gomock.Any(), gomock.Any()).Return(updatedStatusResponse(), nil)
	mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.FetchIncremental(context.Background()))

	assert.Len(t, records.Get("currency"), 1)
	assert.Len(t, records.Get(projectStatus), 1)
}

// ─────────────────────────────────────────────
// FetchIncremental: token monotonicity
// ─────────────────────────────────────────────

func TestFetchIncremental_StaleTokenIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		held  models.SyncToken
		reply models.SyncToken
	}{
		{"equal token", "5", "5"},
		{"older token", "10", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, records, mockAdapter, _ := newTestSynchronizer(t)
			require.NoError(t, records.ApplyFull(projectStatus, []models.DictEntry{{Code: "A", Label: "进行中"}}))
			records.AdvanceToken(tt.held)

			resp := updatedStatusResponse()
			resp.Token = tt.reply
			mockAdapter.EXPECT().FetchIncremental(gomock.Any(), tt.held).Return(resp, nil)

			require.NoError(t, s.FetchIncremental(context.Background()))

			assert.Equal(t, "进行中", records.Get(projectStatus)[0].Label)
			assert.Equal(t, tt.held, records.Meta().SyncToken)
		})
	}
}

// ─────────────────────────────────────────────
// FetchIncremental: failures
// ─────────────────────────────────────────────

func TestFetchIncremental_MalformedResponseIsDiscarded(t *testing.T) {
	s, records, mockAdapter, _ := newTestSynchronizer(t)
	records.AdvanceToken("3")

	resp := updatedStatusResponse()
	resp.Token = ""
	mockAdapter.EXPECT().FetchIncremental(gomock.Any(), gomock.Any()).Return(resp, nil)

	err := s.FetchIncremental(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.False(t, records.Has(projectStatus))
	assert.Equal(t, models.SyncToken("3"), records.Meta().SyncToken)
}

func TestFetchIncremental_AdapterErrorKeepsState(t *testing.T) {
	s, records, mockAdapter, _ := newTestSynchronizer(t)
	records.AdvanceToken("3")

	mockAdapter.EXPECT().
		FetchIncremental(gomock.Any(), gomock.Any()).
		Return(models.IncrementalResponse{}, adapter.ErrRequestFailed)

	err := s.FetchIncremental(context.Background())

	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.ErrorIs(t, err, adapter.ErrRequestFailed)
	assert.Equal(t, models.SyncToken("3"), records.Meta().SyncToken)
}

func TestFetchIncremental_PartialApplyDoesNotAdvanceToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecords := mock.NewMockRecordStore(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSnapshots := mock.NewMockSnapshotStorage(ctrl)
	s := NewIncrementalSynchronizer(mockRecords, mockSnapshots, mockAdapter)

	resp := models.IncrementalResponse{
		Token: "t2",
		Changes: map[models.DictType]models.TypeDiff{
			"b": {Added: []models.DictEntry{{Code: "2"}}},
			"a": {Added: []models.DictEntry{{Code: "1"}}},
			"c": {Added: []models.DictEntry{{Code: "3"}}},
		},
	}

	mockRecords.EXPECT().Meta().Return(models.CacheMeta{SyncToken: "t1"})
	mockAdapter.EXPECT().FetchIncremental(gomock.Any(), models.SyncToken("t1")).Return(resp, nil)
	gomock.InOrder(
		mockRecords.EXPECT().ApplyDiff(models.DictType("a"), resp.Changes["a"]).Return(nil),
		mockRecords.EXPECT().ApplyDiff(models.DictType("b"), resp.Changes["b"]).Return(errors.New("boom")),
	)
	// no AdvanceToken, no ApplyDiff("c"), no Save: gomock fails on any unexpected call

	err := s.FetchIncremental(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestFetchIncremental_CallerCancellation(t *testing.T) {
	s, _, mockAdapter, mockSnapshots := newTestSynchronizer(t)

	release := make(chan struct{})
	done := make(chan struct{})
	mockAdapter.EXPECT().
		FetchIncremental(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.SyncToken) (models.IncrementalResponse, error) {
			defer close(done)
			<-release
			assert.NoError(t, ctx.Err())
			return models.IncrementalResponse{Token: "1"}, nil
		})
	mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.FetchIncremental(ctx), context.Canceled)

	close(release)
	waitSignal(t, done)
}

// ─────────────────────────────────────────────
// FetchIncremental: coalescing
// ─────────────────────────────────────────────

func TestFetchIncremental_ConcurrentCallsShareRequest(t *testing.T) {
	s, records, mockAdapter, mockSnapshots := newTestSynchronizer(t)

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().
		FetchIncremental(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncToken) (models.IncrementalResponse, error) {
			close(started)
			<-release
			return updatedStatusResponse(), nil
		}).
		Times(1)
	mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = s.FetchIncremental(context.Background())
	}()
	waitSignal(t, started)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = s.FetchIncremental(context.Background())
	}()
	// give the second caller time to join the pending request
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, models.SyncToken("t2"), records.Meta().SyncToken)
}
