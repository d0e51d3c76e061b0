package joker

import (
	"math"
	"math/rand"

	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
)

// defaultTemplates 返回内置小丑牌目录
func defaultTemplates() []Template {
	return []Template{
		{
			ID:          "joker_basic_mult",
			Name:        "基础倍数",
			Description: "+4 倍数",
			Rarity:      Common,
			Cost:        2,
			Effect: Effect{
				Kind:    Multiplier,
				Trigger: OnScore,
				Value:   4,
			},
		},
		{
			ID:          "joker_basic_chips",
			Name:        "基础筹码",
			Description: "+30 筹码",
			Rarity:      Common,
			Cost:        2,
			Effect: Effect{
				Kind:    Additive,
				Trigger: OnScore,
				Value:   30,
			},
		},
		{
			ID:          "joker_hearts_lover",
			Name:        "红桃爱好者",
			Description: "每张红桃 +3 倍数",
			Rarity:      Common,
			Cost:        3,
			Effect: Effect{
				Kind:      Conditional,
				Trigger:   OnScore,
				Target:    TargetMult,
				Value:     3,
				PerCard:   true,
				Condition: &Condition{Kind: HasSuit, Suit: card.Hearts},
			},
		},
		{
			ID:          "joker_pair_expert",
			Name:        "对子专家",
			Description: "牌型为对子或更高时 +50 筹码",
			Rarity:      Uncommon,
			Cost:        5,
			Effect: Effect{
				Kind:      Conditional,
				Trigger:   OnScore,
				Target:    TargetChips,
				Value:     50,
				Condition: &Condition{Kind: HandAtLeast, MinTier: 2},
			},
		},
		{
			ID:          "joker_face_card_bonus",
			Name:        "人头牌奖励",
			Description: "每张人头牌 +2 倍数",
			Rarity:      Uncommon,
			Cost:        4,
			Effect: Effect{
				Kind:      Conditional,
				Trigger:   OnScore,
				Target:    TargetMult,
				Value:     2,
				PerCard:   true,
				Condition: &Condition{Kind: HasFace},
			},
		},
		{
			ID:          "joker_lucky_seven",
			Name:        "幸运七",
			Description: "每张7 +77 筹码",
			Rarity:      Rare,
			Cost:        8,
			Effect: Effect{
				Kind:      Conditional,
				Trigger:   OnScore,
				Target:    TargetChips,
				Value:     77,
				PerCard:   true,
				Condition: &Condition{Kind: HasRank, Rank: card.Seven},
			},
		},
		{
			ID:          "joker_flush_master",
			Name:        "同花大师",
			Description: "出牌全部同花色时最终得分 ×3",
			Rarity:      Rare,
			Cost:        10,
			Effect: Effect{
				Kind:      Special,
				Trigger:   OnScore,
				Special:   TimesScore,
				Value:     3,
				Condition: &Condition{Kind: AllSameSuit},
			},
		},
		{
			ID:          "joker_golden_ticket",
			Name:        "黄金门票",
			Description: "最终得分 +10，每轮额外获得 1 金钱",
			Rarity:      Legendary,
			Cost:        20,
			Effect: Effect{
				Kind:          Special,
				Trigger:       Passive,
				Special:       FlatScore,
				Value:         10,
				MoneyPerRound: 1,
			},
		},
		{
			ID:          "joker_chaos_multiplier",
			Name:        "混沌倍数器",
			Description: "最终得分乘以随机倍率（×2 到 ×10）",
			Rarity:      Legendary,
			Cost:        25,
			Effect: Effect{
				Kind:     Special,
				Trigger:  OnScore,
				Special:  RandomMult,
				Value:    2,
				MaxValue: 10,
			},
		},
	}
}

// Eval 判定条件在给定局面下是否成立
// 空条件视为恒成立（调用方以 nil 表示无条件）
func (c *Condition) Eval(view StateView) bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case HasSuit:
		for _, cd := range view.SelectedCards {
			if cd.Suit == c.Suit {
				return true
			}
		}
		return false
	case HasRank:
		for _, cd := range view.SelectedCards {
			if cd.Rank == c.Rank {
				return true
			}
		}
		return false
	case HasFace:
		for _, cd := range view.SelectedCards {
			if cd.IsFace() {
				return true
			}
		}
		return false
	case HandAtLeast:
		return view.HandTier >= c.MinTier
	case AllSameSuit:
		return card.IsFlush(view.SelectedCards)
	default:
		return false
	}
}

// MatchCount 返回符合条件的牌数，供按牌叠加的效果使用
// 非逐牌条件（牌型等级、全同花）成立时按1计
func (c *Condition) MatchCount(view StateView) int {
	if c == nil {
		return len(view.SelectedCards)
	}
	switch c.Kind {
	case HasSuit:
		n := 0
		for _, cd := range view.SelectedCards {
			if cd.Suit == c.Suit {
				n++
			}
		}
		return n
	case HasRank:
		n := 0
		for _, cd := range view.SelectedCards {
			if cd.Rank == c.Rank {
				n++
			}
		}
		return n
	case HasFace:
		n := 0
		for _, cd := range view.SelectedCards {
			if cd.IsFace() {
				n++
			}
		}
		return n
	default:
		if c.Eval(view) {
			return 1
		}
		return 0
	}
}

// ApplySpecial 对最终得分执行特殊变换
// r 为空时随机倍率取下界，保证预览结果确定
// 返回变换后的得分和实际生效的数值（随机倍率返回掷出的值）
func ApplySpecial(effect Effect, finalScore int, r *rand.Rand) (int, int) {
	switch effect.Special {
	case TimesScore:
		return finalScore * effect.Value, effect.Value
	case FlatScore:
		return finalScore + effect.Value, effect.Value
	case RandomMult:
		factor := effect.Value
		if r != nil && effect.MaxValue > effect.Value {
			factor = effect.Value + r.Intn(effect.MaxValue-effect.Value+1)
		}
		return finalScore * factor, factor
	case PercentBonus:
		bonus := int(math.Floor(float64(finalScore) * float64(effect.Value) / 100))
		return finalScore + bonus, bonus
	default:
		return finalScore, 0
	}
}
