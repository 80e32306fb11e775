package database

import (
	"context"
	"log"
	"time"

	"studio-admin/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names shared by the mongoose documents of the old dashboard
const (
	ColMembers        = "members"
	ColBugReports     = "bugreports"
	ColAuditLogs      = "audit_logs"
	ColLogs           = "logs"
	ColStatsSnapshots = "stats_snapshots"
)

// MongodbDB wraps the application database handle
type MongodbDB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase creates a new MongoDB database connection with lifecycle management
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*MongodbDB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hooks
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Disconnecting from MongoDB...")
			return db.Client.Disconnect(ctx)
		},
	})

	return db, nil
}

// Connect dials MongoDB and verifies the connection
func Connect(cfg *config.Config) (*MongodbDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB!")

	return &MongodbDB{Client: client, DB: client.Database(cfg.DBName)}, nil
}

// Ping reports whether the primary is reachable
func (m *MongodbDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}
