package joker

import (
	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
)

// Rarity 表示小丑牌稀有度
type Rarity string

const (
	Common    Rarity = "common"    // 普通
	Uncommon  Rarity = "uncommon"  // 罕见
	Rare      Rarity = "rare"      // 稀有
	Legendary Rarity = "legendary" // 传说
)

// 稀有度中文名称
var rarityNames = map[Rarity]string{
	Common:    "普通",
	Uncommon:  "罕见",
	Rare:      "稀有",
	Legendary: "传说",
}

// Name 返回稀有度中文名称
func (r Rarity) Name() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return string(r)
}

// 各稀有度默认的出售折算系数（模板未自带系数时使用）
var sellValueMultipliers = map[Rarity]float64{
	Common:    0.5,
	Uncommon:  0.6,
	Rare:      0.7,
	Legendary: 0.8,
}

// SellMultiplier 返回模板的出售折算系数
// 模板自带的系数优先，否则取稀有度默认值
func (t Template) SellMultiplier() float64 {
	if t.SellValueMultiplier > 0 {
		return t.SellValueMultiplier
	}
	return sellValueMultipliers[t.Rarity]
}

// EffectKind 表示效果类别
type EffectKind string

const (
	Additive    EffectKind = "additive"    // 固定加筹码
	Multiplier  EffectKind = "multiplier"  // 固定加倍数
	Conditional EffectKind = "conditional" // 条件触发的加成
	Special     EffectKind = "special"     // 在最终得分上做变换
)

// Trigger 表示效果的触发时机
type Trigger string

const (
	OnScore   Trigger = "on_score"   // 出牌计分时
	OnDiscard Trigger = "on_discard" // 弃牌时
	OnDraw    Trigger = "on_draw"    // 抽牌时
	Passive   Trigger = "passive"    // 始终生效
)

// Target 表示加成落在筹码还是倍数上
type Target string

const (
	TargetChips Target = "chips" // 加到筹码
	TargetMult  Target = "mult"  // 加到倍数
)

// ConditionKind 表示条件类别
type ConditionKind string

const (
	HasSuit     ConditionKind = "has_suit"      // 所选牌中含指定花色
	HasRank     ConditionKind = "has_rank"      // 所选牌中含指定点数
	HasFace     ConditionKind = "has_face"      // 所选牌中含人头牌
	HandAtLeast ConditionKind = "hand_at_least" // 牌型等级不低于指定值
	AllSameSuit ConditionKind = "all_same_suit" // 所选牌全部同花色
)

// SpecialKind 表示特殊效果对最终得分的变换方式
type SpecialKind string

const (
	TimesScore   SpecialKind = "times_score"   // 最终得分乘以固定倍率
	FlatScore    SpecialKind = "flat_score"    // 最终得分加固定值
	RandomMult   SpecialKind = "random_mult"   // 最终得分乘以随机倍率
	PercentBonus SpecialKind = "percent_bonus" // 最终得分按百分比加成
)

// Condition 描述效果的触发条件
type Condition struct {
	Kind    ConditionKind `json:"kind"`
	Suit    card.Suit     `json:"suit,omitempty"`     // has_suit 用
	Rank    card.Rank     `json:"rank,omitempty"`     // has_rank 用
	MinTier int           `json:"min_tier,omitempty"` // hand_at_least 用
}

// Effect 描述小丑牌的效果
// 纯数据描述，由计分器统一解释执行，可直接序列化进存档
type Effect struct {
	Kind          EffectKind  `json:"kind"`
	Trigger       Trigger     `json:"trigger"`
	Target        Target      `json:"target,omitempty"`          // conditional 用
	Value         int         `json:"value"`                     // 加成数值或倍率
	PerCard       bool        `json:"per_card,omitempty"`        // 按符合条件的牌数叠加
	Condition     *Condition  `json:"condition,omitempty"`       // 为空表示无条件
	Special       SpecialKind `json:"special,omitempty"`         // special 用
	MaxValue      int         `json:"max_value,omitempty"`       // random_mult 的上界
	MoneyPerRound int         `json:"money_per_round,omitempty"` // 每轮结算的金钱收入
}

// Template 表示小丑牌模板（注册到 Registry 的原型）
type Template struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Rarity              Rarity  `json:"rarity"`
	Cost                int     `json:"cost"`
	SellValueMultiplier float64 `json:"sell_value_multiplier,omitempty"` // 0表示按稀有度默认
	Effect              Effect  `json:"effect"`
}

// Joker 表示玩家持有的小丑牌实例
type Joker struct {
	ID             string `json:"id"`              // 实例唯一标识
	TemplateID     string `json:"template_id"`     // 来源模板
	Name           string `json:"name"`            // 名称
	Description    string `json:"description"`     // 效果描述
	Rarity         Rarity `json:"rarity"`          // 稀有度
	Cost           int    `json:"cost"`            // 购买价格
	SellValue      int    `json:"sell_value"`      // 出售价格
	Effect         Effect `json:"effect"`          // 效果描述符
	TimesTriggered int    `json:"times_triggered"` // 已触发次数
}

// StateView 提供条件判定所需的局面信息
type StateView struct {
	SelectedCards []card.Card // 本次出牌的牌
	HandTier      int         // 本次牌型等级（1-10）
}
