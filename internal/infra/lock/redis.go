package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker распределенная блокировка для критических секций
// Используется вокруг последовательности "прочитать-проверить-записать"
// при создании расписания: ключ строится из аудитории, дня недели и семестра
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// RedisLock реализация Locker поверх Redis SETNX
type RedisLock struct {
	client *redis.Client
}

// NewRedisLock подключается к Redis и проверяет соединение
func NewRedisLock(addr string) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("lock: ping redis: %w", err)
	}

	return &RedisLock{client: client}, nil
}

// Lock пытается захватить блокировку с ограничением по времени жизни
// Возвращает false, если блокировка уже захвачена другим процессом
func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := r.client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock: acquire %q: %w", key, err)
	}
	return acquired, nil
}

// Unlock снимает блокировку
func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("lock: release %q: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (r *RedisLock) Close() error {
	return r.client.Close()
}
