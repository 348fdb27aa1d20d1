package const_data

import "go-splendor/entities"

// SplendorCards 发展卡目录，平铺，不做去重
// 同一等级可能出现同价的不同卡，引擎按槽位处理
var SplendorCards = []entities.Card{
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  1,
			entities.GemSapphire: 1,
			entities.GemEmerald:  1,
			entities.GemRuby:     1,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  1,
			entities.GemSapphire: 2,
			entities.GemEmerald:  1,
			entities.GemRuby:     1,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  2,
			entities.GemSapphire: 2,
			entities.GemEmerald:  0,
			entities.GemRuby:     1,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  1,
			entities.GemRuby:     3,
			entities.GemOnyx:     1,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  2,
			entities.GemRuby:     1,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  2,
			entities.GemSapphire: 0,
			entities.GemEmerald:  2,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 0,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 0,
			entities.GemEmerald:  3,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
	{
		Symbol: entities.GemOnyx,
		Points: 1,
		Level:  1,
		Price: entities.Price{
			entities.GemDiamond:  0,
			entities.GemSapphire: 4,
			entities.GemEmerald:  0,
			entities.GemRuby:     0,
			entities.GemOnyx:     0,
		},
	},
}
