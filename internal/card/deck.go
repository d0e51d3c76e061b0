package card

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrInsufficientCards 表示牌组剩余的牌不足以完成发牌
var ErrInsufficientCards = errors.New("not enough cards in deck")

// NewStandardDeck 创建一副标准52张牌（每个花色点数组合各一张）
func NewStandardDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

// Shuffle 洗牌（Fisher-Yates 算法）
// 不修改输入，返回一个新的排列
func Shuffle(deck []Card, r *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal 从牌组顶部发 n 张牌，返回发出的牌和剩余的牌
// n 超过牌组长度时返回 ErrInsufficientCards
func Deal(deck []Card, n int) (dealt []Card, remaining []Card, err error) {
	if n > len(deck) {
		return nil, nil, ErrInsufficientCards
	}
	dealt = make([]Card, n)
	copy(dealt, deck[:n])
	remaining = make([]Card, len(deck)-n)
	copy(remaining, deck[n:])
	return dealt, remaining, nil
}

// SortByRank 按顺子数值升序排序（稳定排序，不修改输入）
func SortByRank(cards []Card, aceHigh bool) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StraightValue(aceHigh) < sorted[j].StraightValue(aceHigh)
	})
	return sorted
}

// SortByRankDesc 按顺子数值降序排序（稳定排序，不修改输入）
func SortByRankDesc(cards []Card, aceHigh bool) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StraightValue(aceHigh) > sorted[j].StraightValue(aceHigh)
	})
	return sorted
}

// GroupByRank 按点数分组，组内保持原有相对顺序
func GroupByRank(cards []Card) map[Rank][]Card {
	groups := make(map[Rank][]Card)
	for _, c := range cards {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

// GroupBySuit 按花色分组，组内保持原有相对顺序
func GroupBySuit(cards []Card) map[Suit][]Card {
	groups := make(map[Suit][]Card)
	for _, c := range cards {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// IsFlush 判断是否全部同花色（空输入按约定返回 false）
func IsFlush(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	first := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit != first {
			return false
		}
	}
	return true
}

// IsStraight 判断恰好5张牌是否构成顺子
// A 可以作低位（A,2,3,4,5）或高位（10,J,Q,K,A），两种解释都要检查
func IsStraight(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	return isConsecutive(straightValues(cards, false)) ||
		isConsecutive(straightValues(cards, true))
}

// straightValues 提取排序后的顺子数值序列
func straightValues(cards []Card, aceHigh bool) []int {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.StraightValue(aceHigh)
	}
	sort.Ints(values)
	return values
}

// isConsecutive 判断升序数值序列是否连续（重复点数即不连续）
func isConsecutive(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// HandBaseScore 计算一组牌的基础筹码分总和
func HandBaseScore(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.BaseScore()
	}
	return total
}
