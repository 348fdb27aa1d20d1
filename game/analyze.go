package game

import (
	"sort"

	"go-splendor/entities"
)

// WinningPoints 有玩家达到该分数时，本轮打完即结束
const WinningPoints = 15

const (
	StateInProgress = "in_progress"
	StateEnded      = "ended"
)

// LeaderboardEntry 排行榜条目，player 为 user id
type LeaderboardEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type Leaderboard []LeaderboardEntry

// GameState 对局分析结果：进行中带当前回合，结束带排行榜
type GameState struct {
	State       string      `json:"state"`
	Turn        string      `json:"turn,omitempty"`
	Leaderboard Leaderboard `json:"leaderboard,omitempty"`
}

// PlayerPoints 玩家得分 = 持卡分 + 贵族分
func PlayerPoints(player entities.Player) int {
	points := 0
	for _, card := range player.Cards {
		points += card.Points
	}
	for _, noble := range player.Nobles {
		points += noble.Points
	}
	return points
}

// Analyze 纯函数推导对局状态
// 结束条件只在回合回到首位玩家（一整轮打完）时判定：
// 此刻最高分达到 15 则结束，排行榜按分数降序，同分保持座位顺序
func Analyze(g *entities.Game) GameState {
	if g.Board == nil || len(g.Players) == 0 {
		return GameState{State: StateInProgress}
	}
	if g.Board.Turn != g.Players[0].User.ID {
		return GameState{State: StateInProgress, Turn: g.Board.Turn}
	}

	leaderboard := make(Leaderboard, len(g.Players))
	highest := 0
	for i, player := range g.Players {
		score := PlayerPoints(player)
		leaderboard[i] = LeaderboardEntry{Player: player.User.ID, Score: score}
		if score > highest {
			highest = score
		}
	}
	if highest < WinningPoints {
		return GameState{State: StateInProgress, Turn: g.Board.Turn}
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Score > leaderboard[j].Score
	})
	return GameState{State: StateEnded, Leaderboard: leaderboard}
}
