// Package redisstore persists quiz answer-sets in redis, one JSON-encoded
// record per lesson. Values are arrays of (integer|null), positionally
// matched to the quiz questions.
package redisstore

import (
	"FlowAcademy/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	client *redis.Client
}

func New(ctx context.Context, addr, password string, db int) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{client: client}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func quizKey(lessonID string) string {
	return "quiz-" + lessonID
}

// LoadAnswers returns the saved answer-set for a lesson, or nil when there
// is no record. A record that fails to decode is reported as an error so
// the caller can fall back to defaults.
func (s *Storage) LoadAnswers(ctx context.Context, lessonID string) (models.AnswerSet, error) {
	data, err := s.client.Get(ctx, quizKey(lessonID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read quiz answers: %w", err)
	}

	var answers models.AnswerSet
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("decode quiz answers: %w", err)
	}
	return answers, nil
}

// SaveAnswers overwrites the full answer-set for a lesson. Last write wins;
// concurrent writers for the same lesson are not coordinated.
func (s *Storage) SaveAnswers(ctx context.Context, lessonID string, answers models.AnswerSet) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode quiz answers: %w", err)
	}
	if err := s.client.Set(ctx, quizKey(lessonID), data, 0).Err(); err != nil {
		return fmt.Errorf("write quiz answers: %w", err)
	}
	return nil
}
