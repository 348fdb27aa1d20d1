package game

import "errors"

// 配置错误：开局参数不合法，整个初始化失败
var (
	ErrInvalidPlayerCount = errors.New("玩家数量必须是 2-4 人")
	ErrNotEnoughNobles    = errors.New("贵族目录数量不足，无法抽取")
)

// 规则违例：动作不合法，状态保持不变，调用方提示玩家重试
var (
	ErrTooManyTokens    = errors.New("一次最多只能拿 3 个宝石")
	ErrNotEnoughTokens  = errors.New("宝石池里该颜色的宝石不够")
	ErrMixedDoublePick  = errors.New("拿同色两个宝石时不能再拿其他颜色")
	ErrDoublePickSupply = errors.New("该颜色宝石剩余不足 4 个，不能一次拿两个")
	ErrInvalidPick      = errors.New("只能拿至多 3 个不同色宝石各一个，或在剩余充足时拿同色两个")
	ErrCardNotVisible   = errors.New("该卡牌不在桌面上")
	ErrCannotAfford     = errors.New("宝石不足，无法购买该卡牌")
)

// 内部一致性错误：喂进来的状态已经坏了，不可恢复，直接向上抛
var (
	ErrGameNotRunning        = errors.New("对局不在进行中")
	ErrCurrentPlayerNotFound = errors.New("找不到当前回合的玩家")
)

// IsRuleViolation 判断是否属于可重试的规则违例
func IsRuleViolation(err error) bool {
	for _, target := range []error{
		ErrTooManyTokens,
		ErrNotEnoughTokens,
		ErrMixedDoublePick,
		ErrDoublePickSupply,
		ErrInvalidPick,
		ErrCardNotVisible,
		ErrCannotAfford,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConfigError 判断是否属于开局配置错误
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidPlayerCount) || errors.Is(err, ErrNotEnoughNobles)
}
