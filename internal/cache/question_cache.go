package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionCache stores the generated question set for a user+day so the
// same set is served for every fetch until the assessment is completed.
type QuestionCache interface {
	Get(ctx context.Context, userID, day string) ([]string, error)
	Set(ctx context.Context, userID, day string, questions []string) error
}

type questionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuestionCache creates a new question cache.
func NewQuestionCache(client *redis.Client) QuestionCache {
	return &questionCache{
		client: client,
		ttl:    48 * time.Hour, // outlives the calendar day everywhere on earth
	}
}

func (c *questionCache) key(userID, day string) string {
	return fmt.Sprintf("questions:%s:%s", userID, day)
}

func (c *questionCache) Get(ctx context.Context, userID, day string) ([]string, error) {
	data, err := c.client.Get(ctx, c.key(userID, day)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var questions []string
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *questionCache) Set(ctx context.Context, userID, day string, questions []string) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, day), data, c.ttl).Err()
}
