package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hey-watchme/api-vibe-aggregator/config"
)

// Client Redis 客户端封装
// 当前用于观测对象者信息缓存；后续可扩展其他只读联表结果的缓存
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 观测对象者信息缓存 ──

const subjectPrefix = "subject:device:"

// GetSubject 按设备 ID 读取缓存的观测对象者信息（JSON 字节）
// 缓存未命中返回 (nil, nil)
func (c *Client) GetSubject(ctx context.Context, deviceID string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, subjectPrefix+deviceID).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SetSubject 写入观测对象者信息缓存
func (c *Client) SetSubject(ctx context.Context, deviceID string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, subjectPrefix+deviceID, data, ttl).Err()
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口计数器：窗口内第 limit+1 次请求起拒绝
// 首次命中时设置窗口过期时间
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
