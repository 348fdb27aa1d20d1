package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"go-splendor/dto"
	"go-splendor/entities"
	"go-splendor/game"
	"go-splendor/repository"
	"go-splendor/utils"
	"go-splendor/ws"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// CreateGame 开一个大厅，创建者自动成为第一个玩家（也就是管理员）
func CreateGame(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := repository.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
		return
	}

	g := &entities.Game{
		ID:     uuid.New().String(),
		Status: entities.GameStatusLobby,
		Players: []entities.Player{{
			User:   *user,
			Tokens: entities.Price{},
			Cards:  []entities.Card{},
			Nobles: []entities.Noble{},
		}},
	}
	if err := repository.SetGame(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         "对局创建成功",
		"data":        g,
	})
}

// JoinGame 加入大厅，重复加入不报错
func JoinGame(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := repository.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
		return
	}

	g, err := loadGame(c)
	if err != nil {
		return
	}
	if g.Status != entities.GameStatusLobby {
		c.JSON(http.StatusBadRequest, gin.H{"error": "对局已经开始，无法加入"})
		return
	}
	for _, player := range g.Players {
		if player.User.ID == userID {
			c.JSON(http.StatusOK, g)
			return
		}
	}

	g.Players = append(g.Players, entities.Player{
		User:   *user,
		Tokens: entities.Price{},
		Cards:  []entities.Card{},
		Nobles: []entities.Noble{},
	})
	if err := repository.SetGame(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ws.BroadcastGame(g, game.Analyze(g))
	c.JSON(http.StatusOK, g)
}

// StartGame 大厅管理员（第一个加入者）开局
func StartGame(c *gin.Context) {
	userID := c.GetString("userID")
	g, err := loadGame(c)
	if err != nil {
		return
	}
	if g.Status != entities.GameStatusLobby {
		c.JSON(http.StatusBadRequest, gin.H{"error": "对局已经开始"})
		return
	}
	if len(g.Players) == 0 || g.Players[0].User.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "只有房主可以开始游戏"})
		return
	}

	started, err := game.StartLobby(g, newRng())
	if err != nil {
		if game.IsConfigError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := repository.SetGame(started); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ws.BroadcastGame(started, game.Analyze(started))
	c.JSON(http.StatusOK, started)
}

// GetGame 查询对局快照和分析结果
func GetGame(c *gin.Context) {
	g, err := loadGame(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, dto.GameResponse{Game: g, State: game.Analyze(g)})
}

// PostAction 当前玩家提交一个动作：
// 读状态和版本 -> 校验回合 -> 引擎计算 -> 乐观写回 -> 推送
func PostAction(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	g, version, err := repository.GetGameWithVersion(id)
	if errors.Is(err, repository.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "对局不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if g.Board == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "对局尚未开始"})
		return
	}
	if state := game.Analyze(g); state.State == game.StateEnded {
		c.JSON(http.StatusBadRequest, gin.H{"error": "对局已经结束"})
		return
	}
	if g.Board.Turn != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "还没轮到你"})
		return
	}

	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "消息解析失败"})
		return
	}
	action, err := dto.ActionFromPayload(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := game.Apply(g, action)
	if err != nil {
		if game.IsRuleViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// 状态已坏或被篡改，不做任何恢复
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := repository.SetGameVersioned(updated, version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "对局已被其他请求更新，请重新加载"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	state := game.Analyze(updated)
	ws.BroadcastGame(updated, state)
	c.JSON(http.StatusOK, dto.GameResponse{Game: updated, State: state})
}

// JoinQRCode 生成加入链接的二维码，方便扫码进对局
func JoinQRCode(c *gin.Context) {
	id := c.Param("id")
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	joinURL := fmt.Sprintf("%s://%s/game/%s", scheme, c.Request.Host, id)
	png, err := utils.QRCodePNG(joinURL, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "二维码生成失败"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// loadGame 公共的取对局逻辑，出错时直接写响应
func loadGame(c *gin.Context) (*entities.Game, error) {
	id := c.Param("id")
	g, err := repository.GetGame(id)
	if errors.Is(err, repository.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "对局不存在"})
		return nil, err
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}
	return g, nil
}
