package game

import (
	"golang.org/x/exp/rand"

	"go-splendor/entities"
	"go-splendor/utils"
)

// SeparateCards 把平铺目录按等级分堆，不改变堆内顺序
func SeparateCards(cards []entities.Card) map[int][]entities.Card {
	separated := make(map[int][]entities.Card, entities.CardLevelCount)
	for _, level := range entities.CardLevels {
		separated[level] = []entities.Card{}
	}
	for _, card := range cards {
		separated[card.Level] = append(separated[card.Level], card.Clone())
	}
	return separated
}

// PrepareCards 按等级分堆后各自独立洗牌，三个等级互不混洗
func PrepareCards(cards []entities.Card, rng *rand.Rand) map[int][]entities.Card {
	separated := SeparateCards(cards)
	for _, level := range entities.CardLevels {
		separated[level] = utils.Shuffle(separated[level], rng)
	}
	return separated
}

// PrepareNobles 洗牌后抽取 玩家数+1 张贵族
func PrepareNobles(catalog []entities.Noble, numberOfPlayers int, rng *rand.Rand) ([]entities.Noble, error) {
	numberToPick := numberOfPlayers + 1
	if numberToPick > len(catalog) {
		return nil, ErrNotEnoughNobles
	}
	cloned := make([]entities.Noble, len(catalog))
	for i, noble := range catalog {
		cloned[i] = noble.Clone()
	}
	return utils.SafeSlice(utils.Shuffle(cloned, rng), numberToPick), nil
}
