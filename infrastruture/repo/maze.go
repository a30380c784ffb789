package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of generated maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record in the repository.
func (m *MazeRepo) Save(maze *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":    maze.OwnerID,
			"width":      maze.Width,
			"height":     maze.Height,
			"cellSize":   maze.CellSize,
			"seed":       maze.Seed,
			"walls":      maze.Walls,
			"entrance":   maze.Entrance,
			"exit":       maze.Exit,
			"solution":   maze.Solution,
			"difficulty": maze.Difficulty,
			"createdAt":  maze.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns an error if the maze is not found or if an unexpected error occurs.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var maze dmn.Maze
	if err := m.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maze not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &maze, nil
}

// ByIDs retrieves the mazes for the given IDs, preserving the input
// order and skipping IDs that no longer exist.
func (m *MazeRepo) ByIDs(ids []uuid.UUID) ([]*dmn.Maze, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$in": ids}}
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var fetched []*dmn.Maze
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	byID := make(map[uuid.UUID]*dmn.Maze, len(fetched))
	for _, maze := range fetched {
		byID[maze.ID] = maze
	}

	ordered := make([]*dmn.Maze, 0, len(ids))
	for _, id := range ids {
		if maze, ok := byID[id]; ok {
			ordered = append(ordered, maze)
		}
	}
	return ordered, nil
}

// Recent retrieves up to limit mazes, newest first.
func (m *MazeRepo) Recent(limit int) ([]*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var mazes []*dmn.Maze
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return mazes, nil
}
