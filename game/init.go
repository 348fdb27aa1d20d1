package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"go-splendor/const_data"
	"go-splendor/entities"
	"go-splendor/utils"
)

// 宝石池大小按人数查表：2 人 4 个、3 人 5 个、4 人 7 个
var numberOfTokensByPlayers = map[int]int{
	2: 4,
	3: 5,
	4: 7,
}

// PrepareTokens 生成公共宝石池，五种颜色数量相同
func PrepareTokens(numberOfPlayers int) (entities.Price, error) {
	count, ok := numberOfTokensByPlayers[numberOfPlayers]
	if !ok {
		return nil, ErrInvalidPlayerCount
	}
	tokens := make(entities.Price, len(entities.AllGemStones))
	for _, gem := range entities.AllGemStones {
		tokens[gem] = count
	}
	return tokens, nil
}

// InitializeGame 组装一局新游戏：洗牌、发桌面、抽贵族、随机座位
// 座位顺序即行动顺序，首位玩家先手
func InitializeGame(users []entities.User, rng *rand.Rand) (*entities.Game, error) {
	numberOfPlayers := len(users)
	tokens, err := PrepareTokens(numberOfPlayers)
	if err != nil {
		return nil, err
	}
	nobles, err := PrepareNobles(const_data.NobleTilesList, numberOfPlayers, rng)
	if err != nil {
		return nil, err
	}

	decks := PrepareCards(const_data.SplendorCards, rng)
	visibleCards := make(map[int][]*entities.Card, entities.CardLevelCount)
	for _, level := range entities.CardLevels {
		slots := make([]*entities.Card, entities.VisibleSlots)
		for i := 0; i < entities.VisibleSlots && len(decks[level]) > 0; i++ {
			card := decks[level][0].Clone()
			decks[level] = decks[level][1:]
			slots[i] = &card
		}
		visibleCards[level] = slots
	}

	shuffledUsers := utils.Shuffle(users, rng)
	players := make([]entities.Player, len(shuffledUsers))
	for i, user := range shuffledUsers {
		players[i] = entities.Player{
			User:   user,
			Tokens: entities.Price{},
			Cards:  []entities.Card{},
			Nobles: []entities.Noble{},
		}
	}

	return &entities.Game{
		ID:      uuid.New().String(),
		Status:  entities.GameStatusRunning,
		Players: players,
		Board: &entities.Board{
			VisibleCards: visibleCards,
			Decks:        decks,
			Nobles:       nobles,
			Tokens:       tokens,
			Turn:         players[0].User.ID,
		},
	}, nil
}

// StartLobby 大厅开局：沿用大厅的对局 ID，玩家重新随机排座
func StartLobby(lobby *entities.Game, rng *rand.Rand) (*entities.Game, error) {
	users := make([]entities.User, len(lobby.Players))
	for i, player := range lobby.Players {
		users[i] = player.User
	}
	started, err := InitializeGame(users, rng)
	if err != nil {
		return nil, err
	}
	started.ID = lobby.ID
	return started, nil
}
