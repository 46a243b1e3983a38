package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/minio"
	"mindmap-srv/pkg/paginator"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeRepo keeps rows per video and assigns sequential row ids.
type fakeRepo struct {
	rows       map[string][]model.MindMapNode
	seq        int
	replaceErr error
	listCalls  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string][]model.MindMapNode{}}
}

func (f *fakeRepo) ReplaceNodes(_ context.Context, opt repository.ReplaceNodesOptions) ([]model.MindMapNode, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	ids := make(map[string]string, len(opt.Nodes))
	rows := make([]model.MindMapNode, 0, len(opt.Nodes))
	for _, n := range opt.Nodes {
		f.seq++
		id := fmt.Sprintf("row-%d", f.seq)
		ids[n.ID] = id
		rows = append(rows, model.MindMapNode{
			ID: id, VideoID: opt.VideoID, NodeKey: n.ID, Content: n.Content, Summary: n.Summary,
			TimestampStart: n.TimestampStart, TimestampEnd: n.TimestampEnd, NodeType: string(n.NodeType),
			Depth: n.Depth, Keywords: n.Keywords, PositionX: n.PositionX, PositionY: n.PositionY,
			Confidence: n.Confidence, Importance: n.Importance, WordCount: n.WordCount,
			AnalysisMetadata: opt.Metadata, CreatedAt: fixedNow, UpdatedAt: fixedNow,
		})
	}
	for i, n := range opt.Nodes {
		if n.ParentNodeID == nil {
			continue
		}
		p, ok := ids[*n.ParentNodeID]
		if !ok {
			return nil, repository.ErrUnknownParent
		}
		rows[i].ParentID = &p
	}
	f.rows[opt.VideoID] = rows
	return rows, nil
}

func (f *fakeRepo) ListNodes(_ context.Context, videoID string) ([]model.MindMapNode, error) {
	f.listCalls++
	return f.rows[videoID], nil
}

func (f *fakeRepo) DeleteNodes(_ context.Context, videoID string) (int64, error) {
	n := len(f.rows[videoID])
	delete(f.rows, videoID)
	return int64(n), nil
}

func (f *fakeRepo) GetSummaries(_ context.Context, opt repository.GetSummariesOptions) ([]model.MindMapSummary, paginator.Paginator, error) {
	ids := make([]string, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []model.MindMapSummary
	for i, id := range ids {
		if int64(i) < opt.Offset || int64(len(out)) >= opt.Limit {
			continue
		}
		rows := f.rows[id]
		out = append(out, model.MindMapSummary{
			VideoID:         id,
			NodesCount:      len(rows),
			ConfidenceScore: rows[0].AnalysisMetadata.ConfidenceScore,
			ContentType:     rows[0].AnalysisMetadata.ContentType,
			UpdatedAt:       fixedNow,
		})
	}
	return out, paginator.Paginator{Total: int64(len(ids)), Count: int64(len(out)), PerPage: opt.Limit, CurrentPage: opt.Page}, nil
}

type fakeCache struct {
	data map[string][]model.MindMapNode
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]model.MindMapNode{}}
}

func (f *fakeCache) GetNodes(_ context.Context, videoID string) ([]model.MindMapNode, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows, ok := f.data[videoID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return rows, nil
}

func (f *fakeCache) SetNodes(_ context.Context, videoID string, nodes []model.MindMapNode) error {
	f.data[videoID] = nodes
	return nil
}

func (f *fakeCache) DeleteNodes(_ context.Context, videoID string) error {
	delete(f.data, videoID)
	return nil
}

type fakeVector struct {
	indexed   map[string][]model.MindMapNode
	lastQuery repository.SearchOptions
	hits      []repository.SearchHit
	err       error
}

func newFakeVector() *fakeVector {
	return &fakeVector{indexed: map[string][]model.MindMapNode{}}
}

func (f *fakeVector) UpsertNodes(_ context.Context, nodes []model.MindMapNode) error {
	if f.err != nil {
		return f.err
	}
	for _, n := range nodes {
		f.indexed[n.VideoID] = append(f.indexed[n.VideoID], n)
	}
	return nil
}

func (f *fakeVector) DeleteByVideo(_ context.Context, videoID string) error {
	delete(f.indexed, videoID)
	return f.err
}

func (f *fakeVector) Search(_ context.Context, opt repository.SearchOptions) ([]repository.SearchHit, error) {
	f.lastQuery = opt
	return f.hits, f.err
}

// fakeMinIO stores objects in memory keyed by bucket/object.
type fakeMinIO struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeMinIO() *fakeMinIO {
	return &fakeMinIO{objects: map[string][]byte{}}
}

func objectKey(bucket, object string) string { return bucket + "/" + object }

func (f *fakeMinIO) Connect(context.Context) error                      { return nil }
func (f *fakeMinIO) ConnectWithRetry(context.Context, int) error        { return nil }
func (f *fakeMinIO) HealthCheck(context.Context) error                  { return nil }
func (f *fakeMinIO) Close() error                                       { return nil }
func (f *fakeMinIO) EnsureBucket(context.Context, string) error         { return nil }
func (f *fakeMinIO) BucketExists(context.Context, string) (bool, error) { return true, nil }

func (f *fakeMinIO) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.objects[objectKey(req.BucketName, req.ObjectName)] = data
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(data)), ContentType: req.ContentType}, nil
}

func (f *fakeMinIO) DownloadFile(_ context.Context, req *minio.DownloadRequest) (io.ReadCloser, *minio.DownloadHeaders, error) {
	data, ok := f.objects[objectKey(req.BucketName, req.ObjectName)]
	if !ok {
		return nil, nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), &minio.DownloadHeaders{ContentLength: int64(len(data))}, nil
}

func (f *fakeMinIO) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "http://minio.local/" + objectKey(req.BucketName, req.ObjectName),
		ExpiresAt: fixedNow.Add(req.Expiry),
		Method:    req.Method,
	}, nil
}

func (f *fakeMinIO) DeleteFile(_ context.Context, bucket, object string) error {
	delete(f.objects, objectKey(bucket, object))
	return nil
}

func (f *fakeMinIO) FileExists(_ context.Context, bucket, object string) (bool, error) {
	_, ok := f.objects[objectKey(bucket, object)]
	return ok, nil
}

type fakeEvents struct {
	published []mindmap.GeneratedEvent
	notified  []mindmap.GeneratedEvent
	err       error
}

func (f *fakeEvents) PublishGenerated(_ context.Context, evt mindmap.GeneratedEvent) error {
	f.published = append(f.published, evt)
	return f.err
}

func (f *fakeEvents) NotifyGenerated(_ context.Context, evt mindmap.GeneratedEvent) error {
	f.notified = append(f.notified, evt)
	return f.err
}

type fixture struct {
	uc     *implUseCase
	repo   *fakeRepo
	cache  *fakeCache
	vector *fakeVector
	minio  *fakeMinIO
	events *fakeEvents
}

func newFixture(opts Options) fixture {
	f := fixture{
		repo:   newFakeRepo(),
		cache:  newFakeCache(),
		vector: newFakeVector(),
		minio:  newFakeMinIO(),
		events: &fakeEvents{},
	}
	f.uc = New(log.NewNop(), f.repo, f.cache, f.vector, f.minio, f.events, f.events, opts).(*implUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}
