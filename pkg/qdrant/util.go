package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

func (cfg Config) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// GetDistanceMetric maps a config name to a distance, defaulting to cosine.
func GetDistanceMetric(metric string) pb.Distance {
	switch metric {
	case DistanceEuclidean:
		return pb.Distance_Euclid
	case DistanceDot:
		return pb.Distance_Dot
	case DistanceManhattan:
		return pb.Distance_Manhattan
	default:
		return pb.Distance_Cosine
	}
}

func ValidateVector(vector []float32, expectedSize uint64) error {
	if len(vector) == 0 {
		return ErrInvalidVector
	}
	if uint64(len(vector)) != expectedSize {
		return fmt.Errorf("%w: expected size %d, got %d", ErrInvalidVector, expectedSize, len(vector))
	}
	return nil
}

// MatchKeyword builds a filter requiring every key to equal its value.
func MatchKeyword(fields map[string]string) *pb.Filter {
	must := make([]*pb.Condition, 0, len(fields))
	for key, value := range fields {
		must = append(must, &pb.Condition{
			ConditionOneOf: &pb.Condition_Field{
				Field: &pb.FieldCondition{
					Key:   key,
					Match: &pb.Match{MatchValue: &pb.Match_Keyword{Keyword: value}},
				},
			},
		})
	}
	return &pb.Filter{Must: must}
}

func uuidPointID(id string) *pb.PointId {
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}
}

func toPointStruct(point Point) (*pb.PointStruct, error) {
	if point.ID == "" {
		return nil, ErrInvalidPointID
	}
	if len(point.Vector) == 0 {
		return nil, ErrInvalidVector
	}
	payload, err := pb.TryValueMap(point.Payload)
	if err != nil {
		return nil, WrapError(err, "failed to convert payload")
	}
	return &pb.PointStruct{
		Id:      uuidPointID(point.ID),
		Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: point.Vector}}},
		Payload: payload,
	}, nil
}

func searchResultsFromHits(hits []*pb.ScoredPoint) []SearchResult {
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		payload := make(map[string]any, len(hit.Payload))
		for key, value := range hit.Payload {
			payload[key] = valueToInterface(value)
		}
		results = append(results, SearchResult{ID: hit.GetId().GetUuid(), Score: hit.Score, Payload: payload})
	}
	return results
}

func valueToInterface(v *pb.Value) any {
	if v == nil {
		return nil
	}
	switch kind := v.Kind.(type) {
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_ListValue:
		values := kind.ListValue.GetValues()
		out := make([]any, 0, len(values))
		for _, item := range values {
			out = append(out, valueToInterface(item))
		}
		return out
	case *pb.Value_StructValue:
		fields := kind.StructValue.GetFields()
		out := make(map[string]any, len(fields))
		for key, item := range fields {
			out[key] = valueToInterface(item)
		}
		return out
	default:
		return nil
	}
}
