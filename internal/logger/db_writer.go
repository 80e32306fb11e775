package logger

import (
	"context"
	"fmt"
	"sync"
	"time"

	common_models "studio-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	IpAddress string
	Caller    string // Function name
}

// LogInserter is the slice of *mongo.Collection the writer needs
type LogInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	coll    LogInserter
	logChan chan LogEntry
	appId   string

	closeOnce sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(coll LogInserter, appId string) *DBLogWriter {
	writer := &DBLogWriter{
		coll:    coll,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   appId,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case <-w.done:
		return
	default:
	}

	select {
	case w.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log to prevent blocking the API
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

// Close stops accepting entries and waits for the buffered ones to be written
func (w *DBLogWriter) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	<-w.stopped
}

func (w *DBLogWriter) processLogs() {
	defer close(w.stopped)
	for {
		select {
		case entry := <-w.logChan:
			w.write(entry)
		case <-w.done:
			// drain what is already buffered
			for {
				select {
				case entry := <-w.logChan:
					w.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (w *DBLogWriter) write(entry LogEntry) {
	logRecord := common_models.Log{
		AppId:        w.appId,
		Message:      entry.Message,
		IpAddress:    entry.IpAddress,
		Caller:       entry.Caller,
		LogLevelId:   mapLevelToInt(entry.Level),
		CreatedOnUtc: time.Now().UTC(),
	}

	// Insert into DB (safely ignore errors to keep app running)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_, _ = w.coll.InsertOne(ctx, logRecord)
	cancel()
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
