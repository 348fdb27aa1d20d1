package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-splendor/entities"
	"go-splendor/game"
	"go-splendor/repository"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// 每局对局的订阅连接（简化版）
var games = make(map[string][]playerConn)
var gamesLock sync.Mutex

// 玩家连接对象结构体
type playerConn struct {
	UserID string
	Conn   *websocket.Conn
}

// buildSyncMessage 组装统一格式的推送消息（type + game + state）
func buildSyncMessage(g *entities.Game, state game.GameState) []byte {
	msg, _ := json.Marshal(map[string]interface{}{
		"type":  "sync",
		"game":  g,
		"state": state,
	})
	return msg
}

// BroadcastGame 把最新对局状态推给该局的所有订阅者，推不动的连接直接移除
func BroadcastGame(g *entities.Game, state game.GameState) {
	gamesLock.Lock()
	defer gamesLock.Unlock()

	message := buildSyncMessage(g, state)
	alive := []playerConn{}
	for _, pc := range games[g.ID] {
		if err := pc.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.S().Infof("广播失败，移除连接: %s", pc.UserID)
			pc.Conn.Close()
		} else {
			alive = append(alive, pc)
		}
	}
	games[g.ID] = alive
}

func register(gameID, userID string, conn *websocket.Conn) {
	gamesLock.Lock()
	defer gamesLock.Unlock()
	games[gameID] = append(games[gameID], playerConn{UserID: userID, Conn: conn})
}

func unregister(gameID string, conn *websocket.Conn) {
	gamesLock.Lock()
	defer gamesLock.Unlock()
	remaining := []playerConn{}
	for _, pc := range games[gameID] {
		if pc.Conn != conn {
			remaining = append(remaining, pc)
		}
	}
	games[gameID] = remaining
}

// HandleWebSocket 订阅一局对局的状态推送，连上先发一次当前快照
func HandleWebSocket(c *gin.Context) {
	gameID := c.Query("gameID")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 gameID"})
		return
	}
	userID := c.Query("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.S().Infof("WebSocket 升级失败: %v", err)
		return
	}
	defer conn.Close()

	register(gameID, userID, conn)
	defer unregister(gameID, conn)

	if g, err := repository.GetGame(gameID); err == nil {
		snapshot := buildSyncMessage(g, game.Analyze(g))
		if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			return
		}
	}

	// 订阅方向是单向的，读循环只等对端断开
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
