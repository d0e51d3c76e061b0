package evaluator

import (
	"errors"
	"sort"

	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
)

// HandType 表示牌型类别
type HandType string

const (
	HighCard      HandType = "high_card"       // 高牌
	Pair          HandType = "pair"            // 对子
	TwoPair       HandType = "two_pair"        // 两对
	ThreeOfAKind  HandType = "three_of_a_kind" // 三条
	Straight      HandType = "straight"        // 顺子
	Flush         HandType = "flush"           // 同花
	FullHouse     HandType = "full_house"      // 葫芦
	FourOfAKind   HandType = "four_of_a_kind"  // 四条
	StraightFlush HandType = "straight_flush"  // 同花顺
	RoyalFlush    HandType = "royal_flush"     // 皇家同花顺
)

// 牌型等级（1=高牌 … 10=皇家同花顺）
var handTiers = map[HandType]int{
	HighCard:      1,
	Pair:          2,
	TwoPair:       3,
	ThreeOfAKind:  4,
	Straight:      5,
	Flush:         6,
	FullHouse:     7,
	FourOfAKind:   8,
	StraightFlush: 9,
	RoyalFlush:    10,
}

// 牌型中文名称
var handNames = map[HandType]string{
	HighCard:      "高牌",
	Pair:          "对子",
	TwoPair:       "两对",
	ThreeOfAKind:  "三条",
	Straight:      "顺子",
	Flush:         "同花",
	FullHouse:     "葫芦",
	FourOfAKind:   "四条",
	StraightFlush: "同花顺",
	RoyalFlush:    "皇家同花顺",
}

// AllHandTypes 按等级从低到高返回全部十种牌型
func AllHandTypes() []HandType {
	return []HandType{
		HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
	}
}

// Tier 返回牌型等级（1-10）
func (h HandType) Tier() int {
	return handTiers[h]
}

// Name 返回牌型中文名称
func (h HandType) Name() string {
	if name, ok := handNames[h]; ok {
		return name
	}
	return "未知牌型"
}

// ErrEmptyHand 表示对空手牌进行了评估
var ErrEmptyHand = errors.New("cannot evaluate empty hand")

// Result 表示牌型识别结果
type Result struct {
	HandType HandType    `json:"hand_type"` // 牌型类别
	Cards    []card.Card `json:"cards"`     // 构成牌型的牌
	Kickers  []card.Card `json:"kickers"`   // 踢脚牌（降序，用于同牌型比较）
	Rank     int         `json:"rank"`      // 牌型强度 = 等级×100 + 同级区分值
}

// Evaluate 评估1-5张牌的牌型
// 按优先级从高到低检查各分类器，返回第一个命中的结果；
// 高牌永远命中，作为兜底。空输入返回 ErrEmptyHand。
func Evaluate(cards []card.Card) (Result, error) {
	if len(cards) == 0 {
		return Result{}, ErrEmptyHand
	}

	checks := []func([]card.Card) (Result, bool){
		checkRoyalFlush,
		checkStraightFlush,
		checkFourOfAKind,
		checkFullHouse,
		checkFlush,
		checkStraight,
		checkThreeOfAKind,
		checkTwoPair,
		checkPair,
	}

	for _, check := range checks {
		if result, ok := check(cards); ok {
			return result, nil
		}
	}

	return checkHighCard(cards), nil
}

// checkRoyalFlush 检查皇家同花顺（10、J、Q、K、A 同花）
func checkRoyalFlush(cards []card.Card) (Result, bool) {
	if len(cards) != 5 {
		return Result{}, false
	}
	if _, ok := checkStraightFlush(cards); !ok {
		return Result{}, false
	}

	sorted := card.SortByRank(cards, true)
	expected := []int{10, 11, 12, 13, 14}
	for i, c := range sorted {
		if c.StraightValue(true) != expected[i] {
			return Result{}, false
		}
	}

	return Result{
		HandType: RoyalFlush,
		Cards:    sorted,
		Kickers:  nil,
		Rank:     10*100 + 14,
	}, true
}

// checkStraightFlush 检查同花顺（含低位A顺子）
func checkStraightFlush(cards []card.Card) (Result, bool) {
	if len(cards) != 5 {
		return Result{}, false
	}
	if !card.IsFlush(cards) || !card.IsStraight(cards) {
		return Result{}, false
	}

	sorted := card.SortByRank(cards, true)
	return Result{
		HandType: StraightFlush,
		Cards:    sorted,
		Kickers:  nil,
		Rank:     9*100 + straightHighValue(cards),
	}, true
}

// checkFourOfAKind 检查四条
func checkFourOfAKind(cards []card.Card) (Result, bool) {
	groups := card.GroupByRank(cards)
	for rank, group := range groups {
		if len(group) == 4 {
			kickers := excludeRanks(cards, rank)
			return Result{
				HandType: FourOfAKind,
				Cards:    group,
				Kickers:  card.SortByRankDesc(kickers, true),
				Rank:     8*100 + int(rank),
			}, true
		}
	}
	return Result{}, false
}

// checkFullHouse 检查葫芦（恰好三条加一对）
func checkFullHouse(cards []card.Card) (Result, bool) {
	if len(cards) != 5 {
		return Result{}, false
	}

	groups := card.GroupByRank(cards)
	var threeRank, pairRank card.Rank
	for rank, group := range groups {
		switch len(group) {
		case 3:
			threeRank = rank
		case 2:
			pairRank = rank
		}
	}
	if threeRank == 0 || pairRank == 0 {
		return Result{}, false
	}

	combined := append(append([]card.Card{}, groups[threeRank]...), groups[pairRank]...)
	return Result{
		HandType: FullHouse,
		Cards:    combined,
		Kickers:  nil,
		Rank:     7*100 + int(threeRank),
	}, true
}

// checkFlush 检查同花
func checkFlush(cards []card.Card) (Result, bool) {
	if len(cards) != 5 || !card.IsFlush(cards) {
		return Result{}, false
	}

	sorted := card.SortByRank(cards, true)
	high := sorted[len(sorted)-1]
	return Result{
		HandType: Flush,
		Cards:    sorted,
		Kickers:  nil,
		Rank:     6*100 + high.StraightValue(true),
	}, true
}

// checkStraight 检查顺子（两种A解释都已在 IsStraight 中覆盖）
func checkStraight(cards []card.Card) (Result, bool) {
	if len(cards) != 5 || !card.IsStraight(cards) {
		return Result{}, false
	}

	return Result{
		HandType: Straight,
		Cards:    card.SortByRank(cards, true),
		Kickers:  nil,
		Rank:     5*100 + straightHighValue(cards),
	}, true
}

// checkThreeOfAKind 检查三条
func checkThreeOfAKind(cards []card.Card) (Result, bool) {
	groups := card.GroupByRank(cards)
	for rank, group := range groups {
		if len(group) == 3 {
			kickers := excludeRanks(cards, rank)
			return Result{
				HandType: ThreeOfAKind,
				Cards:    group,
				Kickers:  card.SortByRankDesc(kickers, true),
				Rank:     4*100 + int(rank),
			}, true
		}
	}
	return Result{}, false
}

// checkTwoPair 检查两对
// 超过两对时取点数最大的两对，其余作为踢脚牌
func checkTwoPair(cards []card.Card) (Result, bool) {
	groups := card.GroupByRank(cards)
	var pairs []card.Rank
	for rank, group := range groups {
		if len(group) == 2 {
			pairs = append(pairs, rank)
		}
	}
	if len(pairs) < 2 {
		return Result{}, false
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i] > pairs[j] })
	highPair, lowPair := pairs[0], pairs[1]

	combined := append(append([]card.Card{}, groups[highPair]...), groups[lowPair]...)
	kickers := excludeRanks(cards, highPair, lowPair)
	return Result{
		HandType: TwoPair,
		Cards:    combined,
		Kickers:  card.SortByRankDesc(kickers, true),
		Rank:     3*100 + int(highPair)*10 + int(lowPair),
	}, true
}

// checkPair 检查对子
func checkPair(cards []card.Card) (Result, bool) {
	groups := card.GroupByRank(cards)
	var pairRank card.Rank
	for rank, group := range groups {
		if len(group) == 2 && rank > pairRank {
			pairRank = rank
		}
	}
	if pairRank == 0 {
		return Result{}, false
	}

	kickers := excludeRanks(cards, pairRank)
	return Result{
		HandType: Pair,
		Cards:    groups[pairRank],
		Kickers:  card.SortByRankDesc(kickers, true),
		Rank:     2*100 + int(pairRank),
	}, true
}

// checkHighCard 检查高牌（永远命中的兜底分类器）
func checkHighCard(cards []card.Card) Result {
	sorted := card.SortByRankDesc(cards, true)
	return Result{
		HandType: HighCard,
		Cards:    sorted[:1],
		Kickers:  sorted[1:],
		Rank:     1*100 + sorted[0].StraightValue(true),
	}
}

// Compare 比较两手牌的强弱
// 先比较 Rank，相同时逐张比较踢脚牌（A按高位计），缺失的踢脚牌判负
// 返回正数表示 a 更强，负数表示 b 更强，0 表示相等
func Compare(a, b Result) int {
	if diff := a.Rank - b.Rank; diff != 0 {
		return diff
	}

	maxKickers := len(a.Kickers)
	if len(b.Kickers) > maxKickers {
		maxKickers = len(b.Kickers)
	}
	for i := 0; i < maxKickers; i++ {
		if i >= len(a.Kickers) {
			return -1
		}
		if i >= len(b.Kickers) {
			return 1
		}
		diff := a.Kickers[i].StraightValue(true) - b.Kickers[i].StraightValue(true)
		if diff != 0 {
			return diff
		}
	}
	return 0
}

// straightHighValue 返回顺子的最高数值（低位A顺子 A2345 的最高为5）
func straightHighValue(cards []card.Card) int {
	values := make([]int, len(cards))
	lowAce := true
	for i, c := range cards {
		values[i] = c.StraightValue(false)
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			lowAce = false
			break
		}
	}
	if lowAce {
		return values[len(values)-1]
	}

	high := 0
	for _, c := range cards {
		if v := c.StraightValue(true); v > high {
			high = v
		}
	}
	return high
}

// excludeRanks 过滤掉指定点数的牌
func excludeRanks(cards []card.Card, ranks ...card.Rank) []card.Card {
	excluded := make(map[card.Rank]bool, len(ranks))
	for _, r := range ranks {
		excluded[r] = true
	}
	var rest []card.Card
	for _, c := range cards {
		if !excluded[c.Rank] {
			rest = append(rest, c)
		}
	}
	return rest
}
