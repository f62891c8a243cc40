package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

const collectionPosts = "posts"

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

type mongoPost struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Author    primitive.ObjectID   `bson:"author"`
	Content   string               `bson:"content"`
	Likes     []primitive.ObjectID `bson:"likes"`
	LikeCount int                  `bson:"like_count"`
	CreatedAt time.Time            `bson:"created_at"`
}

func (mp *mongoPost) toDomain() *domain.Post {
	likes := make([]string, 0, len(mp.Likes))
	for _, l := range mp.Likes {
		likes = append(likes, l.Hex())
	}
	return &domain.Post{
		ID:        mp.ID.Hex(),
		AuthorID:  mp.Author.Hex(),
		Content:   mp.Content,
		Likes:     likes,
		LikeCount: mp.LikeCount,
		CreatedAt: mp.CreatedAt.UTC(),
	}
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	author, err := objectID(post.AuthorID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Author:    author,
		Content:   post.Content,
		Likes:     []primitive.ObjectID{},
		LikeCount: 0,
		CreatedAt: post.CreatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert post: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns posts newest first. A malformed authorID is a user-not-found
// error; a well-formed one that matches nothing yields an empty slice.
func (r *PostRepository) List(ctx context.Context, authorID string) ([]*domain.Post, error) {
	filter := bson.M{}
	if authorID != "" {
		oid, err := objectID(authorID, domain.ErrUserNotFound)
		if err != nil {
			return nil, err
		}
		filter["author"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoPost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	posts := make([]*domain.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toDomain())
	}
	return posts, nil
}

// likesOrEmpty guards documents written before the likes field existed.
var likesOrEmpty = bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}

// withoutLiker is an aggregation expression for the liker set minus uid.
func withoutLiker(uid primitive.ObjectID) bson.D {
	return bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: likesOrEmpty},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", uid}}}},
	}}}
}

// countFromLikes recomputes like_count from the set in the same update.
var countFromLikes = bson.D{{Key: "$set", Value: bson.D{
	{Key: "like_count", Value: bson.D{{Key: "$size", Value: "$likes"}}},
}}}

// ToggleLike runs one pipeline update on the post document: the membership
// flip and the count derivation happen inside a single atomic write, so
// concurrent toggles on the same post serialize on the server.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	pid, err := objectID(postID, domain.ErrPostNotFound)
	if err != nil {
		return nil, err
	}
	uid, err := objectID(userID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	toggle := bson.D{{Key: "$set", Value: bson.D{
		{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{uid, likesOrEmpty}}}},
			{Key: "then", Value: withoutLiker(uid)},
			{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likesOrEmpty, bson.A{uid}}}}},
		}}}},
	}}}
	pipeline := mongo.Pipeline{toggle, countFromLikes}

	var mp mongoPost
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": pid}, pipeline, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	oid, err := objectID(authorID, domain.ErrUserNotFound)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"author": oid})
	if err != nil {
		return 0, fmt.Errorf("delete posts by author: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *PostRepository) RemoveLiker(ctx context.Context, userID string) (int64, error) {
	uid, err := objectID(userID, domain.ErrUserNotFound)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "likes", Value: withoutLiker(uid)}}}},
		countFromLikes,
	}
	res, err := r.col.UpdateMany(ctx, bson.M{"likes": uid}, pipeline)
	if err != nil {
		return 0, fmt.Errorf("remove liker: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *PostRepository) Count(ctx context.Context, f ports.PostCountFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !f.CreatedSince.IsZero() {
		filter["created_at"] = bson.M{"$gte": f.CreatedSince.UTC()}
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes behind listing, per-author queries and
// liker cleanup.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "likes", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
