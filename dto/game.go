package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"go-splendor/entities"
	"go-splendor/game"
)

type LoginRequest struct {
	Login     string `json:"login" binding:"required"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         entities.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// GameResponse 对局快照加上分析结果，推送和查询共用一个形状
type GameResponse struct {
	Game  *entities.Game `json:"game"`
	State game.GameState `json:"state"`
}

type pickPayload struct {
	Tokens []entities.GemStone `mapstructure:"tokens"`
}

type cardPayload struct {
	Card entities.Card `mapstructure:"card"`
}

func decodePayload(payload map[string]interface{}, out interface{}) error {
	// 数字经 JSON 解析都是 float64，弱类型解码转回 int
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(payload)
}

// ActionFromPayload 把松散的 JSON 消息体解码成引擎动作
func ActionFromPayload(payload map[string]interface{}) (game.Action, error) {
	actionType, _ := payload["type"].(string)
	switch actionType {
	case "pick":
		var p pickPayload
		if err := decodePayload(payload, &p); err != nil {
			return nil, fmt.Errorf("pick 消息解析失败: %w", err)
		}
		return game.PickAction{Tokens: p.Tokens}, nil
	case "buy":
		var p cardPayload
		if err := decodePayload(payload, &p); err != nil {
			return nil, fmt.Errorf("buy 消息解析失败: %w", err)
		}
		return game.BuyAction{Card: p.Card}, nil
	case "reserve":
		var p cardPayload
		if err := decodePayload(payload, &p); err != nil {
			return nil, fmt.Errorf("reserve 消息解析失败: %w", err)
		}
		return game.ReserveAction{Card: p.Card}, nil
	default:
		return nil, fmt.Errorf("未知的动作类型: %q", actionType)
	}
}
