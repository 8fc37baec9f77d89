package qdrant

import (
	"context"
	"fmt"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// VectorSize matches the embedding model's output dimension.
const VectorSize = 768

// NewClient establishes a gRPC connection to Qdrant and returns the clients.
func NewClient(ctx context.Context, host, port string) (qdrant.PointsClient, qdrant.CollectionsClient, *grpc.ClientConn, error) {
	if host == "" || port == "" {
		return nil, nil, nil, fmt.Errorf("QDRANT_SERVICE_HOST or QDRANT_SERVICE_PORT is not set")
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	logrus.WithField("address", addr).Info("connecting to Qdrant gRPC service")

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logrus.WithError(err).Error("failed to connect to Qdrant")
		return nil, nil, nil, fmt.Errorf("did not connect: %w", err)
	}

	pointsClient := qdrant.NewPointsClient(conn)
	collectionsClient := qdrant.NewCollectionsClient(conn)

	// Simple health check
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err = collectionsClient.List(ctx, &qdrant.ListCollectionsRequest{})
	if err != nil {
		logrus.WithError(err).Error("qdrant health check failed")
		conn.Close()
		return nil, nil, nil, fmt.Errorf("qdrant health check failed: %w", err)
	}

	logrus.Info("successfully connected to Qdrant")
	return pointsClient, collectionsClient, conn, nil
}

// EnsureCollectionExists checks if a collection exists and creates it with payload indexes if it doesn't.
func EnsureCollectionExists(ctx context.Context, collectionsClient qdrant.CollectionsClient, pointsClient qdrant.PointsClient, collectionName string) error {
	log := logrus.WithField("collection_name", collectionName)

	_, err := collectionsClient.Get(ctx, &qdrant.GetCollectionInfoRequest{
		CollectionName: collectionName,
	})

	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
			log.Info("collection not found, creating it now...")
			wait := true

			_, err := collectionsClient.Create(ctx, &qdrant.CreateCollection{
				CollectionName: collectionName,
				VectorsConfig: &qdrant.VectorsConfig{
					Config: &qdrant.VectorsConfig_Params{
						Params: &qdrant.VectorParams{
							Size:     VectorSize,
							Distance: qdrant.Distance_Cosine,
						},
					},
				},
			})
			if err != nil {
				return fmt.Errorf("could not create collection: %w", err)
			}
			log.Info("collection created successfully, now creating payload indexes...")

			// Retrieval is always scoped to one material, so material_id is
			// the index that matters; user_id and chunk_id support audits.
			_, err = pointsClient.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: collectionName,
				FieldName:      "material_id",
				FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
				Wait:           &wait,
			})
			if err != nil {
				return fmt.Errorf("could not create 'material_id' payload index: %w", err)
			}
			_, err = pointsClient.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: collectionName,
				FieldName:      "chunk_id",
				FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
				Wait:           &wait,
			})
			if err != nil {
				return fmt.Errorf("could not create 'chunk_id' payload index: %w", err)
			}
			_, err = pointsClient.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: collectionName,
				FieldName:      "user_id",
				FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
				Wait:           &wait,
			})
			if err != nil {
				return fmt.Errorf("could not create 'user_id' payload index: %w", err)
			}

			log.Info("all payload indexes created successfully")
			return nil
		}
		return fmt.Errorf("could not get collection info: %w", err)
	}

	log.Info("collection already exists")
	return nil
}

// Index wraps the points client for one collection and carries the tunables
// every search shares.
type Index struct {
	Points     qdrant.PointsClient
	Collection string

	// ScoreThreshold filters low-relevance matches server-side; callers
	// never re-filter.
	ScoreThreshold float32
	Timeout        time.Duration
}

// ChunkVector is one embedded chunk to be indexed for similarity search.
// The chunk text rides along as payload so retrieval can return snippets
// without a database round trip.
type ChunkVector struct {
	ChunkID    int
	MaterialID int
	UserID     string
	Text       string
	Vector     []float32
}

// Upsert writes the given vectors into the collection, keyed by chunk ID so
// re-running a backfill overwrites rather than duplicates.
func (ix *Index) Upsert(ctx context.Context, vectors []ChunkVector) error {
	if len(vectors) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(vectors))
	for _, v := range vectors {
		points = append(points, &qdrant.PointStruct{
			Id: &qdrant.PointId{
				PointIdOptions: &qdrant.PointId_Num{Num: uint64(v.ChunkID)},
			},
			Vectors: &qdrant.Vectors{
				VectorsOptions: &qdrant.Vectors_Vector{Vector: &qdrant.Vector{Data: v.Vector}},
			},
			Payload: map[string]*qdrant.Value{
				"material_id": {Kind: &qdrant.Value_IntegerValue{IntegerValue: int64(v.MaterialID)}},
				"chunk_id":    {Kind: &qdrant.Value_IntegerValue{IntegerValue: int64(v.ChunkID)}},
				"user_id":     {Kind: &qdrant.Value_StringValue{StringValue: v.UserID}},
				"chunk_text":  {Kind: &qdrant.Value_StringValue{StringValue: v.Text}},
			},
		})
	}

	ctx, cancel := context.WithTimeout(ctx, ix.Timeout)
	defer cancel()

	wait := true
	_, err := ix.Points.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ix.Collection,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// Search returns the chunk texts most similar to the query vector within one
// material's scope, best match first, truncated to topK. An empty result
// means nothing cleared the score threshold; that is a legitimate outcome,
// not an error, and callers must distinguish it from a transport failure.
func (ix *Index) Search(ctx context.Context, vector []float32, materialID, topK int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, ix.Timeout)
	defer cancel()

	threshold := ix.ScoreThreshold
	resp, err := ix.Points.Search(ctx, &qdrant.SearchPoints{
		CollectionName: ix.Collection,
		Vector:         vector,
		Limit:          uint64(topK),
		ScoreThreshold: &threshold,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{{
				ConditionOneOf: &qdrant.Condition_Field{
					Field: &qdrant.FieldCondition{
						Key: "material_id",
						Match: &qdrant.Match{
							MatchValue: &qdrant.Match_Integer{Integer: int64(materialID)},
						},
					},
				},
			}},
		},
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Include{
				Include: &qdrant.PayloadIncludeSelector{Fields: []string{"chunk_text"}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search in Qdrant: %w", err)
	}

	snippets := make([]string, 0, len(resp.Result))
	for _, point := range resp.Result {
		if v, ok := point.Payload["chunk_text"]; ok {
			if text := v.GetStringValue(); text != "" {
				snippets = append(snippets, text)
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"material_id": materialID,
		"matches":     len(snippets),
	}).Debug("vector search completed")
	return snippets, nil
}
