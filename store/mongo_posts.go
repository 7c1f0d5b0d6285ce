// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/wavelength/models"
)

// MongoPostStore implements PostStore over a mongo collection.
type MongoPostStore struct {
	col *mongo.Collection
}

func NewMongoPostStore(col *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{col: col}
}

func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []string{}
	}

	_, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

func (s *MongoPostStore) FindByID(ctx context.Context, id string) (models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

func (s *MongoPostStore) FindByUser(ctx context.Context, userID string) ([]models.Post, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find posts by user: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (s *MongoPostStore) List(ctx context.Context, newestFirst bool) ([]models.Post, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (s *MongoPostStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Post{}, err
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id string) (models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	err = s.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to delete post: %w", err)
	}
	return post, nil
}

func (s *MongoPostStore) AddLike(ctx context.Context, id, userID string) error {
	return s.mutateLikes(ctx, id, "$push", userID)
}

func (s *MongoPostStore) RemoveLike(ctx context.Context, id, userID string) error {
	return s.mutateLikes(ctx, id, "$pull", userID)
}

func (s *MongoPostStore) mutateLikes(ctx context.Context, id, op, userID string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.col.UpdateByID(ctx, oid, bson.M{
		op:     bson.M{"likes": userID},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update likes: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
