package entities

// Card 发展卡，不可变值，无 ID，按内容整体比较
type Card struct {
	Symbol GemStone `json:"symbol"` // 折扣颜色
	Points int      `json:"points"` // 荣誉分
	Level  int      `json:"level"`  // 1/2/3
	Price  Price    `json:"price"`  // 五色费用
}

// Equals 卡牌没有 ID，按全部字段结构化比较
func (c Card) Equals(other Card) bool {
	return c.Symbol == other.Symbol &&
		c.Points == other.Points &&
		c.Level == other.Level &&
		c.Price.Equals(other.Price)
}

func (c Card) Clone() Card {
	c.Price = c.Price.Clone()
	return c
}

// Noble 贵族卡，玩家卡牌满足条件时自动分配
type Noble struct {
	Points       int   `json:"points"`
	Requirements Price `json:"requirements"` // 颜色 -> 需要持有的该色卡牌数
}

// Equals 贵族同样按内容比较
func (n Noble) Equals(other Noble) bool {
	return n.Points == other.Points && n.Requirements.Equals(other.Requirements)
}

func (n Noble) Clone() Noble {
	n.Requirements = n.Requirements.Clone()
	return n
}
