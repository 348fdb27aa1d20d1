package entities

// GemStone 宝石颜色，同时作为货币和卡牌产出标记
type GemStone string

const (
	GemEmerald  GemStone = "EMERALD"
	GemDiamond  GemStone = "DIAMOND"
	GemSapphire GemStone = "SAPPHIRE"
	GemOnyx     GemStone = "ONYX"
	GemRuby     GemStone = "RUBY"
	// GemGold GemStone = "GOLD" // 万能宝石，规则里暂未启用
)

// AllGemStones 固定的五种宝石
var AllGemStones = []GemStone{
	GemEmerald,
	GemDiamond,
	GemSapphire,
	GemOnyx,
	GemRuby,
}

// Price 宝石颜色到数量的映射，用于 token 池、玩家持有、卡牌费用、贵族条件
// 缺失的 key 视为 0，数量永远不允许为负
type Price map[GemStone]int

func (p Price) Get(gem GemStone) int {
	return p[gem]
}

func (p Price) Add(gem GemStone, n int) {
	p[gem] += n
}

// Equals 按五种宝石逐个比较，缺失 key 与 0 等价
func (p Price) Equals(other Price) bool {
	for _, gem := range AllGemStones {
		if p.Get(gem) != other.Get(gem) {
			return false
		}
	}
	return true
}

func (p Price) Clone() Price {
	if p == nil {
		return nil
	}
	cloned := make(Price, len(p))
	for gem, count := range p {
		cloned[gem] = count
	}
	return cloned
}
