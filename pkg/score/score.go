package score

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/joker"
)

// HandTypeConfig 保存一种牌型的计分参数，随升级成长
type HandTypeConfig struct {
	HandType       evaluator.HandType `json:"hand_type"`       // 牌型
	Level          int                `json:"level"`           // 当前等级
	BaseChips      int                `json:"base_chips"`      // 基础筹码
	BaseMultiplier int                `json:"base_multiplier"` // 基础倍数
	UpgradeCost    int                `json:"upgrade_cost"`    // 下次升级费用
}

// DefaultHandTypeConfigs 返回各牌型的初始计分参数
func DefaultHandTypeConfigs() map[evaluator.HandType]*HandTypeConfig {
	base := []struct {
		handType evaluator.HandType
		chips    int
		mult     int
		cost     int
	}{
		{evaluator.HighCard, 5, 1, 3},
		{evaluator.Pair, 10, 2, 3},
		{evaluator.TwoPair, 20, 2, 3},
		{evaluator.ThreeOfAKind, 30, 3, 4},
		{evaluator.Straight, 30, 4, 4},
		{evaluator.Flush, 35, 4, 4},
		{evaluator.FullHouse, 40, 4, 5},
		{evaluator.FourOfAKind, 60, 7, 5},
		{evaluator.StraightFlush, 100, 8, 6},
		{evaluator.RoyalFlush, 100, 8, 6},
	}

	configs := make(map[evaluator.HandType]*HandTypeConfig, len(base))
	for _, b := range base {
		configs[b.handType] = &HandTypeConfig{
			HandType:       b.handType,
			Level:          1,
			BaseChips:      b.chips,
			BaseMultiplier: b.mult,
			UpgradeCost:    b.cost,
		}
	}
	return configs
}

// UpgradeConfig 将牌型计分参数升一级
// 基础筹码按成长系数向下取整增长，倍数加1，升级费用加1
func UpgradeConfig(cfg *HandTypeConfig, growth float64) {
	cfg.Level++
	cfg.BaseChips += int(math.Floor(float64(cfg.BaseChips) * growth))
	cfg.BaseMultiplier++
	cfg.UpgradeCost++
}

// JokerEffectResult 记录一张小丑牌在本次计分中的贡献
type JokerEffectResult struct {
	JokerID     string `json:"joker_id"`
	JokerName   string `json:"joker_name"`
	EffectType  string `json:"effect_type"`
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// Result 表示一次出牌的计分结果
type Result struct {
	HandType     evaluator.HandType  `json:"hand_type"`     // 牌型
	BaseScore    int                 `json:"base_score"`    // 所出牌的牌面分合计
	Chips        int                 `json:"chips"`         // 最终筹码
	Multiplier   int                 `json:"multiplier"`    // 最终倍数
	FinalScore   int                 `json:"final_score"`   // 最终得分
	JokerEffects []JokerEffectResult `json:"joker_effects"` // 各小丑牌的贡献
}

// Calculate 计算一次出牌的得分
// 先算筹码与倍数（基础值加小丑牌加成），相乘得出初始得分，
// 再按持有顺序执行特殊效果对最终得分的变换。
// 触发的小丑牌会累计触发次数。空输入返回 evaluator.ErrEmptyHand。
func Calculate(cards []card.Card, jokers []*joker.Joker, configs map[evaluator.HandType]*HandTypeConfig, r *rand.Rand) (Result, error) {
	return compute(cards, jokers, configs, r, true)
}

// Preview 计算与 Calculate 相同的得分但不产生任何副作用
// 不消耗随机源（随机倍率按下界计），不累计触发次数，可重复调用
func Preview(cards []card.Card, jokers []*joker.Joker, configs map[evaluator.HandType]*HandTypeConfig) (Result, error) {
	return compute(cards, jokers, configs, nil, false)
}

func compute(cards []card.Card, jokers []*joker.Joker, configs map[evaluator.HandType]*HandTypeConfig, r *rand.Rand, commit bool) (Result, error) {
	evalResult, err := evaluator.Evaluate(cards)
	if err != nil {
		return Result{}, err
	}

	cfg, ok := configs[evalResult.HandType]
	if !ok {
		return Result{}, fmt.Errorf("no scoring config for hand type %s", evalResult.HandType)
	}

	baseScore := card.HandBaseScore(cards)
	chips := baseScore + cfg.BaseChips
	multiplier := cfg.BaseMultiplier

	view := joker.StateView{
		SelectedCards: cards,
		HandTier:      evalResult.HandType.Tier(),
	}

	result := Result{
		HandType:  evalResult.HandType,
		BaseScore: baseScore,
	}

	// 第一阶段：筹码与倍数加成，按持有顺序
	var specials []*joker.Joker
	for _, j := range jokers {
		if !joker.CanTrigger(j, joker.OnScore, view) {
			continue
		}
		if j.Effect.Kind == joker.Special {
			specials = append(specials, j)
			continue
		}

		var effect JokerEffectResult
		switch j.Effect.Kind {
		case joker.Additive:
			chips += j.Effect.Value
			effect = jokerEffect(j, j.Effect.Value, fmt.Sprintf("+%d 筹码", j.Effect.Value))
		case joker.Multiplier:
			multiplier += j.Effect.Value
			effect = jokerEffect(j, j.Effect.Value, fmt.Sprintf("+%d 倍数", j.Effect.Value))
		case joker.Conditional:
			count := 1
			if j.Effect.PerCard {
				count = j.Effect.Condition.MatchCount(view)
			}
			contribution := j.Effect.Value * count
			if j.Effect.Target == joker.TargetMult {
				multiplier += contribution
			} else {
				chips += contribution
			}
			effect = jokerEffect(j, contribution, fmt.Sprintf("条件触发: +%d", contribution))
		default:
			continue
		}

		result.JokerEffects = append(result.JokerEffects, effect)
		if commit {
			j.TimesTriggered++
		}
	}

	finalScore := chips * multiplier

	// 第二阶段：特殊效果对最终得分的变换，按持有顺序
	for _, j := range specials {
		transformed, applied := joker.ApplySpecial(j.Effect, finalScore, r)
		finalScore = transformed

		var desc string
		switch j.Effect.Special {
		case joker.TimesScore, joker.RandomMult:
			desc = fmt.Sprintf("最终得分 ×%d", applied)
		default:
			desc = fmt.Sprintf("最终得分 +%d", applied)
		}
		result.JokerEffects = append(result.JokerEffects, jokerEffect(j, applied, desc))
		if commit {
			j.TimesTriggered++
		}
	}

	result.Chips = chips
	result.Multiplier = multiplier
	result.FinalScore = finalScore
	return result, nil
}

func jokerEffect(j *joker.Joker, value int, desc string) JokerEffectResult {
	return JokerEffectResult{
		JokerID:     j.ID,
		JokerName:   j.Name,
		EffectType:  string(j.Effect.Kind),
		Value:       value,
		Description: desc,
	}
}

// FindBestHand 在给定牌中枚举所有1到maxSelect张的组合，返回得分牌型最强的一组
// 强度相同的组合保留先枚举到的；输入为空返回 evaluator.ErrEmptyHand
func FindBestHand(cards []card.Card, maxSelect int) ([]card.Card, evaluator.Result, error) {
	if len(cards) == 0 {
		return nil, evaluator.Result{}, evaluator.ErrEmptyHand
	}
	if maxSelect > len(cards) {
		maxSelect = len(cards)
	}

	var bestCards []card.Card
	var best evaluator.Result
	found := false

	for k := 1; k <= maxSelect; k++ {
		forEachCombination(len(cards), k, func(indices []int) {
			combo := make([]card.Card, k)
			for i, idx := range indices {
				combo[i] = cards[idx]
			}
			result, err := evaluator.Evaluate(combo)
			if err != nil {
				return
			}
			if !found || evaluator.Compare(result, best) > 0 {
				found = true
				best = result
				bestCards = combo
			}
		})
	}

	return bestCards, best, nil
}

// forEachCombination 迭代枚举 C(n,k) 的所有下标组合
func forEachCombination(n, k int, fn func([]int)) {
	if k > n || k <= 0 {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		fn(indices)

		// 从右往左找到可以前进的位置
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
