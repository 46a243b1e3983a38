package qdrant

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (c *qdrantImpl) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *qdrantImpl) Ping(ctx context.Context) error {
	if _, err := c.collectionsClient.List(ctx, &pb.ListCollectionsRequest{}); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func (c *qdrantImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.defaultTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.defaultTimeout)
}

func (c *qdrantImpl) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	if name == "" {
		return ErrEmptyCollection
	}
	if vectorSize == 0 {
		return ErrInvalidVectorSize
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Create(ctx, &pb.CreateCollection{
		CollectionName: name,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{Size: vectorSize, Distance: distance},
			},
		},
	})
	return WrapError(err, "failed to create collection")
}

func (c *qdrantImpl) EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = c.CreateCollection(ctx, name, vectorSize, distance)
	// Lost a creation race with another replica.
	if status.Code(errors.Unwrap(err)) == codes.AlreadyExists {
		return nil
	}
	return err
}

func (c *qdrantImpl) DeleteCollection(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Delete(ctx, &pb.DeleteCollection{CollectionName: name})
	return WrapError(err, "failed to delete collection")
}

func (c *qdrantImpl) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.CollectionExists(ctx, &pb.CollectionExistsRequest{CollectionName: name})
	if err != nil {
		return false, WrapError(err, "failed to check collection")
	}
	return resp.GetResult().GetExists(), nil
}

func (c *qdrantImpl) GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	if name == "" {
		return nil, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: name})
	if err != nil {
		return nil, WrapError(err, "failed to get collection info")
	}
	if resp.Result == nil {
		return nil, ErrCollectionNotFound
	}
	info := &CollectionInfo{
		Name:        name,
		Status:      resp.Result.Status.String(),
		PointsCount: resp.Result.GetPointsCount(),
	}
	if params := resp.Result.GetConfig().GetParams().GetVectorsConfig().GetParams(); params != nil {
		info.VectorSize = params.Size
		info.Distance = params.Distance.String()
	}
	return info, nil
}

func (c *qdrantImpl) UpsertPoints(ctx context.Context, colName string, points []Point) error {
	if colName == "" {
		return ErrEmptyCollection
	}
	if len(points) == 0 {
		return nil
	}
	structs := make([]*pb.PointStruct, 0, len(points))
	for _, point := range points {
		ps, err := toPointStruct(point)
		if err != nil {
			return err
		}
		structs = append(structs, ps)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	wait := true
	_, err := c.pointsClient.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: colName,
		Wait:           &wait,
		Points:         structs,
	})
	return WrapError(err, "failed to upsert points")
}

func (c *qdrantImpl) DeletePoint(ctx context.Context, colName string, pointID string) error {
	if colName == "" {
		return ErrEmptyCollection
	}
	if pointID == "" {
		return ErrInvalidPointID
	}
	return c.deletePoints(ctx, colName, &pb.PointsSelector{
		PointsSelectorOneOf: &pb.PointsSelector_Points{
			Points: &pb.PointsIdsList{Ids: []*pb.PointId{uuidPointID(pointID)}},
		},
	})
}

func (c *qdrantImpl) DeleteByFilter(ctx context.Context, colName string, filter *pb.Filter) error {
	if colName == "" {
		return ErrEmptyCollection
	}
	if filter == nil || len(filter.Must)+len(filter.Should)+len(filter.MustNot) == 0 {
		return ErrEmptyFilter
	}
	return c.deletePoints(ctx, colName, &pb.PointsSelector{
		PointsSelectorOneOf: &pb.PointsSelector_Filter{Filter: filter},
	})
}

func (c *qdrantImpl) deletePoints(ctx context.Context, colName string, selector *pb.PointsSelector) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	wait := true
	_, err := c.pointsClient.Delete(ctx, &pb.DeletePoints{
		CollectionName: colName,
		Wait:           &wait,
		Points:         selector,
	})
	return WrapError(err, "failed to delete points")
}

func (c *qdrantImpl) CountPoints(ctx context.Context, colName string, filter *pb.Filter) (uint64, error) {
	if colName == "" {
		return 0, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	exact := true
	resp, err := c.pointsClient.Count(ctx, &pb.CountPoints{
		CollectionName: colName,
		Filter:         filter,
		Exact:          &exact,
	})
	if err != nil {
		return 0, WrapError(err, "failed to count points")
	}
	return resp.GetResult().GetCount(), nil
}

func (c *qdrantImpl) Search(ctx context.Context, colName string, vector []float32, limit uint64) ([]SearchResult, error) {
	return c.SearchWithFilter(ctx, colName, vector, limit, nil)
}

func (c *qdrantImpl) SearchWithFilter(ctx context.Context, colName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error) {
	if colName == "" {
		return nil, ErrEmptyCollection
	}
	if len(vector) == 0 {
		return nil, ErrInvalidVector
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Search(ctx, &pb.SearchPoints{
		CollectionName: colName,
		Vector:         vector,
		Limit:          limit,
		Filter:         filter,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, WrapError(err, "failed to search")
	}
	return searchResultsFromHits(resp.Result), nil
}
