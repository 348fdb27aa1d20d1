package const_data

import "go-splendor/entities"

// NobleTilesList 贵族目录，固定 10 张，每张 3 分
// 分配时按此目录顺序做首个匹配
var NobleTilesList = []entities.Noble{
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  4,
			entities.GemRuby:     4,
			entities.GemOnyx:     0,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  3,
			entities.GemSapphire: 0,
			entities.GemEmerald:  0,
			entities.GemRuby:     3,
			entities.GemOnyx:     3,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  4,
			entities.GemSapphire: 4,
			entities.GemEmerald:  0,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  4,
			entities.GemSapphire: 0,
			entities.GemEmerald:  0,
			entities.GemRuby:     0,
			entities.GemOnyx:     4,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 4,
			entities.GemEmerald:  4,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 3,
			entities.GemEmerald:  3,
			entities.GemRuby:     3,
			entities.GemOnyx:     0,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  3,
			entities.GemSapphire: 3,
			entities.GemEmerald:  3,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  0,
			entities.GemRuby:     4,
			entities.GemOnyx:     4,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  3,
			entities.GemSapphire: 3,
			entities.GemEmerald:  0,
			entities.GemRuby:     0,
			entities.GemOnyx:     3,
		},
	},
	{
		Points: 3,
		Requirements: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  3,
			entities.GemRuby:     3,
			entities.GemOnyx:     3,
		},
	},
}
