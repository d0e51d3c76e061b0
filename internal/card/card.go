package card

import "fmt"

// Suit 表示扑克牌的花色
type Suit int

const (
	Clubs    Suit = iota // 梅花
	Diamonds             // 方块
	Hearts               // 红心
	Spades               // 黑桃
)

// 花色符号（用于显示）
var suitSymbols = []string{"♣", "♦", "♥", "♠"}
var suitFullNames = []string{"梅花", "方块", "红心", "黑桃"}
var suitKeys = []string{"clubs", "diamonds", "hearts", "spades"}

// Suits 返回全部四种花色
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// String 返回花色的符号表示
func (s Suit) String() string {
	if s >= 0 && int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// FullName 返回花色的中文全称
func (s Suit) FullName() string {
	if s >= 0 && int(s) < len(suitFullNames) {
		return suitFullNames[s]
	}
	return "未知"
}

// Key 返回花色的英文标识（用于卡牌ID）
func (s Suit) Key() string {
	if s >= 0 && int(s) < len(suitKeys) {
		return suitKeys[s]
	}
	return "unknown"
}

// Rank 表示扑克牌的点数（A=1，J=11，Q=12，K=13）
type Rank int

const (
	Ace   Rank = iota + 1 // A
	Two                   // 2
	Three                 // 3
	Four                  // 4
	Five                  // 5
	Six                   // 6
	Seven                 // 7
	Eight                 // 8
	Nine                  // 9
	Ten                   // 10
	Jack                  // J
	Queen                 // Q
	King                  // K
)

// 点数名称（用于显示）
var rankNames = []string{
	"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

// String 返回点数的符号表示
func (r Rank) String() string {
	if r >= Ace && int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "?"
}

// StraightValue 返回点数在顺子中的数值（A 可以作 1 或 14）
func (r Rank) StraightValue(aceHigh bool) int {
	if r == Ace && aceHigh {
		return 14
	}
	return int(r)
}

// BaseScore 返回点数的基础筹码分（A=11，2-10=面值，J/Q/K=10）
// 注意与 StraightValue 区分：前者用于计分，后者仅用于排序和顺子判断
func (r Rank) BaseScore() int {
	switch {
	case r == Ace:
		return 11
	case r >= Two && r <= Ten:
		return int(r)
	default:
		return 10
	}
}

// IsFace 判断是否为人头牌（J、Q、K）
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// EnhancementType 表示卡牌增强类型
type EnhancementType string

const (
	EnhanceBonus EnhancementType = "bonus" // 额外筹码
	EnhanceMult  EnhancementType = "mult"  // 额外倍数
	EnhanceWild  EnhancementType = "wild"  // 万能花色
	EnhanceGlass EnhancementType = "glass" // 玻璃牌
	EnhanceSteel EnhancementType = "steel" // 钢铁牌
)

// Enhancement 表示卡牌增强效果
type Enhancement struct {
	Type  EnhancementType `json:"type"`  // 增强类型
	Value int             `json:"value"` // 增强数值
}

// Card 表示一张扑克牌
// 花色和点数不可变；Selected 和增强标记是可变的游戏状态
type Card struct {
	ID          string       `json:"id"`                    // 卡牌ID
	Suit        Suit         `json:"suit"`                  // 花色
	Rank        Rank         `json:"rank"`                  // 点数
	Selected    bool         `json:"is_selected"`           // 是否被选中
	Enhanced    bool         `json:"is_enhanced"`           // 是否已增强
	Enhancement *Enhancement `json:"enhancement,omitempty"` // 增强效果
	Stone       bool         `json:"is_stone,omitempty"`    // 石头牌
	Steel       bool         `json:"is_steel,omitempty"`    // 钢铁牌
	Glass       bool         `json:"is_glass,omitempty"`    // 玻璃牌
	Gold        bool         `json:"is_gold,omitempty"`     // 黄金牌
}

// NewCard 创建一张新扑克牌
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		ID:   fmt.Sprintf("%s-%d", suit.Key(), rank),
		Suit: suit,
		Rank: rank,
	}
}

// String 返回扑克牌的字符串表示（如 "A♠"）
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// StraightValue 返回卡牌在顺子中的数值
func (c Card) StraightValue(aceHigh bool) int {
	return c.Rank.StraightValue(aceHigh)
}

// BaseScore 返回卡牌的基础筹码分
func (c Card) BaseScore() int {
	return c.Rank.BaseScore()
}

// Compare 按顺子数值比较两张牌的大小
// 返回正数表示 c > other，负数表示 c < other，0 表示相等
func (c Card) Compare(other Card, aceHigh bool) int {
	return c.StraightValue(aceHigh) - other.StraightValue(aceHigh)
}

// IsBlack 判断是否为黑牌（梅花或黑桃）
func (c Card) IsBlack() bool {
	return c.Suit == Spades || c.Suit == Clubs
}

// IsRed 判断是否为红牌（方块或红心）
func (c Card) IsRed() bool {
	return c.Suit == Diamonds || c.Suit == Hearts
}

// IsFace 判断是否为人头牌
func (c Card) IsFace() bool {
	return c.Rank.IsFace()
}

// FormatCard 返回格式化的牌字符串（用于显示）
func (c Card) FormatCard() string {
	return fmt.Sprintf("[%s]", c.String())
}
