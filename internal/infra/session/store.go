package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store серверное хранилище эфемерного состояния (redis)
// Хранит состояние мастера бронирования и админские auth-сессии как JSON с TTL
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище сессий
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Set сохраняет значение по ключу с TTL хранилища
func (s *Store) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal value: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrStorage, err)
	}

	return nil
}

// Get читает значение по ключу в dest
// Возвращает ErrSessionNotFound, если ключ отсутствует или истек
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Get - redis get: %v", ErrStorage, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: Get - unmarshal value: %v", ErrDecode, err)
	}

	return nil
}

// Delete удаляет значение по ключу
// Удаление отсутствующего ключа не является ошибкой
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStorage, err)
	}
	return nil
}
