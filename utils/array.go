package utils

import "golang.org/x/exp/rand"

// Shuffle 均匀洗牌，返回新切片不动原切片
// 随机源由调用方传入，方便用固定种子做测试
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func SafeSlice[T any](slice []T, max int) []T {
	if len(slice) < max {
		return slice
	}
	return slice[:max]
}
