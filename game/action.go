package game

import (
	"fmt"

	"go-splendor/entities"
)

// Action 玩家一回合的动作，封闭的三选一
type Action interface {
	isAction()
}

// PickAction 从宝石池拿宝石
type PickAction struct {
	Tokens []entities.GemStone
}

// BuyAction 购买桌面上的一张发展卡，卡牌按内容匹配
type BuyAction struct {
	Card entities.Card
}

// ReserveAction 预留卡牌：动作已在协议里声明，规则尚未定稿，目前不改变持有
type ReserveAction struct {
	Card entities.Card
}

func (PickAction) isAction()    {}
func (BuyAction) isAction()     {}
func (ReserveAction) isAction() {}

// Apply 校验并执行一个动作，返回新状态，绝不修改传入的状态
// 动作执行后统一做贵族分配和回合推进
func Apply(g *entities.Game, action Action) (*entities.Game, error) {
	if g.Board == nil {
		return nil, ErrGameNotRunning
	}
	updated := g.Clone()

	var err error
	switch a := action.(type) {
	case PickAction:
		err = pick(updated, a.Tokens)
	case BuyAction:
		err = buy(updated, a.Card)
	case ReserveAction:
		// 保持原状，贵族分配和回合推进照常进行
	default:
		err = fmt.Errorf("未知的动作类型 %T", action)
	}
	if err != nil {
		return nil, err
	}

	if err := awardNoble(updated); err != nil {
		return nil, err
	}
	if err := advanceTurn(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// currentPlayerFrom 定位当前回合玩家，找不到说明状态已坏
func currentPlayerFrom(g *entities.Game) (*entities.Player, error) {
	for i := range g.Players {
		if g.Players[i].User.ID == g.Board.Turn {
			return &g.Players[i], nil
		}
	}
	return nil, ErrCurrentPlayerNotFound
}

// assertPicking 拿宝石的合法性整体校验，任何一条不满足都不发生转移
func assertPicking(bank entities.Price, tokens []entities.GemStone) error {
	if len(tokens) > 3 {
		return ErrTooManyTokens
	}

	occurrences := map[entities.GemStone]int{}
	for _, gem := range tokens {
		occurrences[gem]++
	}
	for gem, count := range occurrences {
		if bank.Get(gem) < count {
			return fmt.Errorf("%w: %s", ErrNotEnoughTokens, gem)
		}
	}

	allSingle := true
	for _, count := range occurrences {
		if count != 1 {
			allSingle = false
			break
		}
	}
	if allSingle {
		return nil
	}

	for _, count := range occurrences {
		if count == 2 {
			if len(occurrences) > 1 {
				return ErrMixedDoublePick
			}
			// 拿同色两个要求池里至少 4 个，保证拿完后还剩 2 个
			if bank.Get(tokens[0]) < 4 {
				return fmt.Errorf("%w: %s", ErrDoublePickSupply, tokens[0])
			}
			return nil
		}
	}

	return ErrInvalidPick
}

func pick(g *entities.Game, tokens []entities.GemStone) error {
	if err := assertPicking(g.Board.Tokens, tokens); err != nil {
		return err
	}
	player, err := currentPlayerFrom(g)
	if err != nil {
		return err
	}
	for _, gem := range tokens {
		g.Board.Tokens.Add(gem, -1)
		player.Tokens.Add(gem, 1)
	}
	return nil
}

// visibleSlotIndex 在该等级的槽位里找第一个结构相等的卡牌
// 同价同级的重复卡靠槽位位置消除歧义
func visibleSlotIndex(board *entities.Board, card entities.Card) (int, error) {
	slots, ok := board.VisibleCards[card.Level]
	if !ok {
		return 0, ErrCardNotVisible
	}
	for i, visible := range slots {
		if visible != nil && visible.Equals(card) {
			return i, nil
		}
	}
	return 0, ErrCardNotVisible
}

// cardCountsFrom 统计玩家各颜色已持有的卡牌数，持卡即永久折扣
func cardCountsFrom(player *entities.Player) entities.Price {
	counts := entities.Price{}
	for _, card := range player.Cards {
		counts.Add(card.Symbol, 1)
	}
	return counts
}

func buy(g *entities.Game, card entities.Card) error {
	slot, err := visibleSlotIndex(g.Board, card)
	if err != nil {
		return err
	}
	player, err := currentPlayerFrom(g)
	if err != nil {
		return err
	}

	owned := cardCountsFrom(player)
	for _, gem := range entities.AllGemStones {
		required := card.Price.Get(gem)
		total := player.Tokens.Get(gem) + owned.Get(gem)
		if total < required {
			return fmt.Errorf("%w: %s 需要 %d 只有 %d", ErrCannotAfford, gem, required, total)
		}
	}

	// 实付 = max(0, 费用 - 持卡折扣)，折扣够多时该色分文不付
	for _, gem := range entities.AllGemStones {
		paid := card.Price.Get(gem) - owned.Get(gem)
		if paid <= 0 {
			continue
		}
		player.Tokens.Add(gem, -paid)
		g.Board.Tokens.Add(gem, paid)
	}

	// 空出的槽位从同级牌堆顶补充，牌堆抽完就留空
	if deck := g.Board.Decks[card.Level]; len(deck) > 0 {
		replacement := deck[0]
		g.Board.Decks[card.Level] = deck[1:]
		g.Board.VisibleCards[card.Level][slot] = &replacement
	} else {
		g.Board.VisibleCards[card.Level][slot] = nil
	}
	player.Cards = append(player.Cards, card.Clone())
	return nil
}

// awardNoble 扫描未分配贵族，把第一个条件满足的分给当前玩家
// 每回合最多分配一个，多个同时满足也只分第一个
func awardNoble(g *entities.Game) error {
	player, err := currentPlayerFrom(g)
	if err != nil {
		return err
	}
	counts := cardCountsFrom(player)
	for i, noble := range g.Board.Nobles {
		satisfied := true
		for _, gem := range entities.AllGemStones {
			if counts.Get(gem) < noble.Requirements.Get(gem) {
				satisfied = false
				break
			}
		}
		if satisfied {
			g.Board.Nobles = append(g.Board.Nobles[:i], g.Board.Nobles[i+1:]...)
			player.Nobles = append(player.Nobles, noble)
			return nil
		}
	}
	return nil
}

// advanceTurn 回合移交给座位顺序上的下一位，末位回绕到首位
func advanceTurn(g *entities.Game) error {
	currentIndex := -1
	for i, player := range g.Players {
		if player.User.ID == g.Board.Turn {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return ErrCurrentPlayerNotFound
	}
	g.Board.Turn = g.Players[(currentIndex+1)%len(g.Players)].User.ID
	return nil
}
