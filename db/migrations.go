package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// codeIndexOptionsConflict is returned when an index on the same keys already
// exists under a different name or with different options.
const codeIndexOptionsConflict = 85

// titleIndex is left unnamed so the server assigns its default, title_1.
func titleIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

// ensureTitleIndex creates the unique title index. Creating an index that
// already exists with the same definition is a no-op on the server, and an
// existing unique title index under another name is accepted as is.
func ensureTitleIndex(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, titleIndex())
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeIndexOptionsConflict {
		found, listErr := hasUniqueTitleIndex(ctx, coll)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list indexes")
		}
		if found {
			return nil
		}
	}
	return errors.Wrap(err, "failed to create title index")
}

type indexSpec struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique bool   `bson:"unique"`
}

func hasUniqueTitleIndex(ctx context.Context, coll *mongo.Collection) (bool, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return false, err
	}

	var specs []indexSpec
	if err := cursor.All(ctx, &specs); err != nil {
		return false, err
	}

	for _, spec := range specs {
		if spec.Unique && len(spec.Key) == 1 && spec.Key[0].Key == "title" {
			return true, nil
		}
	}
	return false, nil
}

// Migrate brings the indexes of the posts collection up to date.
func Migrate(coll *mongo.Collection, logger zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureTitleIndex(ctx, coll); err != nil {
		return err
	}

	logger.Info().Str("collection", coll.Name()).Msg("database index check complete, all indexes are up to date")
	return nil
}
