package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"posts-api/models"
)

// PostStore is the data access layer for posts. It holds no per-request
// state and may be shared by concurrent handlers.
type PostStore struct {
	coll   *mongo.Collection
	cache  *PostCache
	logger zerolog.Logger
	now    func() time.Time
}

// NewPostStore returns a store over coll. cache may be nil.
func NewPostStore(coll *mongo.Collection, cache *PostCache, logger zerolog.Logger) *PostStore {
	return &PostStore{
		coll:   coll,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// FetchPosts returns one page of posts in natural storage order.
func (s *PostStore) FetchPosts(ctx context.Context, opts models.FilterOptions) (*models.PostListResponse, error) {
	findOpts := options.Find().
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit)

	cursor, err := s.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, models.QueryError(err, "find posts")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("error closing posts cursor")
		}
	}()

	var posts []models.Post
	for cursor.Next(ctx) {
		var doc models.PostModel
		if err := cursor.Decode(&doc); err != nil {
			return nil, models.DataAccessError(err)
		}
		posts = append(posts, doc.ToPost())
	}
	if err := cursor.Err(); err != nil {
		return nil, models.QueryError(err, "iterate posts")
	}

	return models.NewPostListResponse(posts), nil
}

// CreatePost inserts a new post and returns it as stored.
func (s *PostStore) CreatePost(ctx context.Context, input models.CreatePostSchema) (*models.SinglePostResponse, error) {
	if err := ensureTitleIndex(ctx, s.coll); err != nil {
		return nil, models.QueryError(err, "ensure title index")
	}

	doc, err := bson.Marshal(models.NewPostRecord(input, s.now()))
	if err != nil {
		return nil, models.SerializationError(err)
	}

	res, err := s.coll.InsertOne(ctx, bson.Raw(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.DuplicateKeyError(err)
		}
		return nil, models.QueryError(err, "insert post")
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, models.QueryError(errors.Errorf("unexpected inserted id type %T", res.InsertedID), "insert post")
	}

	stored, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, models.QueryError(errors.Errorf("post %s missing after insert", id.Hex()), "refetch post")
	}

	post := stored.ToPost()
	s.cachePost(ctx, post)
	return models.NewSinglePostResponse(post), nil
}

// GetPost looks a post up by its hex identifier. A post that does not exist
// is reported as (nil, nil).
func (s *PostStore) GetPost(ctx context.Context, id string) (*models.SinglePostResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.InvalidIDError(id)
	}

	cached, err := s.cache.Get(ctx, oid.Hex())
	if err != nil {
		s.logger.Warn().Err(err).Str("post_id", oid.Hex()).Msg("post cache read failed")
	}
	if cached != nil {
		return models.NewSinglePostResponse(*cached), nil
	}

	stored, err := s.findByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	post := stored.ToPost()
	s.cachePost(ctx, post)
	return models.NewSinglePostResponse(post), nil
}

func (s *PostStore) findByID(ctx context.Context, id primitive.ObjectID) (*models.PostModel, error) {
	res := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.QueryError(err, "find post")
	}

	var doc models.PostModel
	if err := res.Decode(&doc); err != nil {
		return nil, models.DataAccessError(err)
	}
	return &doc, nil
}

func (s *PostStore) cachePost(ctx context.Context, post models.Post) {
	if err := s.cache.Set(ctx, post); err != nil {
		s.logger.Warn().Err(err).Str("post_id", post.ID).Msg("post cache write failed")
	}
}
