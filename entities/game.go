package entities

// User 外部账号信息，核心逻辑只用 ID 做回合/归属判断
type User struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Player 对局中的玩家，开局时持有清空，只有行动引擎会修改
type Player struct {
	User   User    `json:"user"`
	Tokens Price   `json:"tokens"`
	Cards  []Card  `json:"cards"`  // 购买顺序
	Nobles []Noble `json:"nobles"` // 获得顺序
}

func (p Player) Clone() Player {
	p.Tokens = p.Tokens.Clone()
	cards := make([]Card, len(p.Cards))
	for i, c := range p.Cards {
		cards[i] = c.Clone()
	}
	p.Cards = cards
	nobles := make([]Noble, len(p.Nobles))
	for i, n := range p.Nobles {
		nobles[i] = n.Clone()
	}
	p.Nobles = nobles
	return p
}

const (
	// CardLevelCount 三个等级的发展卡
	CardLevelCount = 3
	// VisibleSlots 每个等级桌面翻开 4 张
	VisibleSlots = 4
)

// CardLevels 发展卡等级，低到高
var CardLevels = []int{1, 2, 3}

// Board 运行中对局的桌面，开局生成一次，之后只被行动引擎消耗/补充
type Board struct {
	VisibleCards map[int][]*Card `json:"visibleCards"` // 等级 -> 4 个槽位，nil 表示空槽
	Decks        map[int][]Card  `json:"decks"`        // 等级 -> 洗好的牌堆
	Nobles       []Noble         `json:"nobles"`       // 尚未被分配的贵族
	Tokens       Price           `json:"tokens"`       // 公共宝石池
	Turn         string          `json:"turn"`         // 当前行动玩家的 user id
}

func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cloned := &Board{
		VisibleCards: make(map[int][]*Card, len(b.VisibleCards)),
		Decks:        make(map[int][]Card, len(b.Decks)),
		Nobles:       make([]Noble, len(b.Nobles)),
		Tokens:       b.Tokens.Clone(),
		Turn:         b.Turn,
	}
	for level, slots := range b.VisibleCards {
		clonedSlots := make([]*Card, len(slots))
		for i, card := range slots {
			if card != nil {
				c := card.Clone()
				clonedSlots[i] = &c
			}
		}
		cloned.VisibleCards[level] = clonedSlots
	}
	for level, deck := range b.Decks {
		clonedDeck := make([]Card, len(deck))
		for i, c := range deck {
			clonedDeck[i] = c.Clone()
		}
		cloned.Decks[level] = clonedDeck
	}
	for i, n := range b.Nobles {
		cloned.Nobles[i] = n.Clone()
	}
	return cloned
}

// GameStatus 对局生命周期：大厅 -> 进行中（结束由分析函数推导，不落库）
type GameStatus string

const (
	GameStatusLobby   GameStatus = "lobby"
	GameStatusRunning GameStatus = "running"
)

// Game 对局聚合根，持久化与推送都以它整体为单位
type Game struct {
	ID      string     `json:"id"`
	Status  GameStatus `json:"status"`
	Players []Player   `json:"players"` // 大厅阶段为加入顺序，开局后为座位顺序
	Board   *Board     `json:"board,omitempty"`
}

// Clone 深拷贝整个聚合，行动引擎靠它保证不改调用方的状态
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	cloned := &Game{
		ID:      g.ID,
		Status:  g.Status,
		Players: make([]Player, len(g.Players)),
		Board:   g.Board.Clone(),
	}
	for i, p := range g.Players {
		cloned.Players[i] = p.Clone()
	}
	return cloned
}
