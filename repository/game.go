package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"go-splendor/entities"
)

var (
	ErrGameNotFound = errors.New("对局不存在")
	// ErrVersionConflict 乐观锁冲突：对局在处理期间被别的请求改过了
	ErrVersionConflict = errors.New("对局已被其他请求更新")
)

func gameKey(id string) string {
	return fmt.Sprintf("game:%s", id)
}

func gameVersionKey(id string) string {
	return fmt.Sprintf("game:%s:version", id)
}

// GetGame 读取对局聚合
func GetGame(id string) (*entities.Game, error) {
	result, err := Rdb.Get(Ctx, gameKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("读取对局失败: %w", err)
	}
	var g entities.Game
	if err := json.Unmarshal([]byte(result), &g); err != nil {
		return nil, fmt.Errorf("对局解析失败: %w", err)
	}
	return &g, nil
}

// GetGameWithVersion 读取对局和它的版本号，供乐观写回使用
func GetGameWithVersion(id string) (*entities.Game, int64, error) {
	g, err := GetGame(id)
	if err != nil {
		return nil, 0, err
	}
	version, err := Rdb.Get(Ctx, gameVersionKey(id)).Int64()
	if err != nil && err != redis.Nil {
		return nil, 0, fmt.Errorf("读取对局版本失败: %w", err)
	}
	return g, version, nil
}

// SetGame 无条件写回并递增版本（创建、大厅加入用）
func SetGame(g *entities.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("对局序列化失败: %w", err)
	}
	_, err = Rdb.TxPipelined(Ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(Ctx, gameKey(g.ID), data, 0)
		pipe.Incr(Ctx, gameVersionKey(g.ID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("保存对局失败: %w", err)
	}
	return nil
}

// SetGameVersioned 带版本检查的写回：版本不符返回 ErrVersionConflict，由调用方重读重试
func SetGameVersioned(g *entities.Game, expected int64) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("对局序列化失败: %w", err)
	}
	versionKey := gameVersionKey(g.ID)
	err = Rdb.Watch(Ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(Ctx, versionKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != expected {
			return ErrVersionConflict
		}
		_, err = tx.TxPipelined(Ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(Ctx, gameKey(g.ID), data, 0)
			pipe.Incr(Ctx, versionKey)
			return nil
		})
		return err
	}, versionKey)
	if err == redis.TxFailedErr {
		return ErrVersionConflict
	}
	return err
}
