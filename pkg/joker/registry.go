package joker

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// DefaultRarityWeights 返回默认的稀有度抽取权重
func DefaultRarityWeights() map[Rarity]int {
	return map[Rarity]int{
		Common:    50,
		Uncommon:  30,
		Rare:      15,
		Legendary: 5,
	}
}

// Registry 管理小丑牌模板并负责商店抽取
type Registry struct {
	r         *rand.Rand
	templates map[string]Template
	order     []string // 注册顺序，保证遍历确定
}

// NewRegistry 创建注册表并载入内置目录
// r 为空时使用不可预测的默认随机源
func NewRegistry(r *rand.Rand) *Registry {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	reg := &Registry{
		r:         r,
		templates: make(map[string]Template),
	}
	for _, t := range defaultTemplates() {
		reg.Register(t)
	}
	return reg
}

// Register 注册模板，重复id时覆盖原模板但不重复记录顺序
func (reg *Registry) Register(t Template) {
	if _, exists := reg.templates[t.ID]; !exists {
		reg.order = append(reg.order, t.ID)
	}
	reg.templates[t.ID] = t
}

// Get 按id查找模板
func (reg *Registry) Get(id string) (Template, bool) {
	t, ok := reg.templates[id]
	return t, ok
}

// Templates 按注册顺序返回全部模板
func (reg *Registry) Templates() []Template {
	out := make([]Template, 0, len(reg.order))
	for _, id := range reg.order {
		out = append(out, reg.templates[id])
	}
	return out
}

// Create 从模板创建一个实例，未知id返回nil
// 出售价格按模板的折算系数从购买价格向下取整
func (reg *Registry) Create(templateID string) *Joker {
	t, ok := reg.templates[templateID]
	if !ok {
		return nil
	}
	return &Joker{
		ID:          uuid.NewString(),
		TemplateID:  t.ID,
		Name:        t.Name,
		Description: t.Description,
		Rarity:      t.Rarity,
		Cost:        t.Cost,
		SellValue:   int(math.Floor(float64(t.Cost) * t.SellMultiplier())),
		Effect:      t.Effect,
	}
}

// RandomTemplate 按权重抽取一个模板
// 每个模板按其稀有度权重计入抽取池（累计权重扫描），
// 因此一个稀有度被抽中的概率随该稀有度的模板数量成比例增长
func (reg *Registry) RandomTemplate(weights map[Rarity]int) *Template {
	if len(reg.order) == 0 {
		return nil
	}
	if weights == nil {
		weights = DefaultRarityWeights()
	}

	total := 0
	for _, id := range reg.order {
		total += weights[reg.templates[id].Rarity]
	}
	if total <= 0 {
		// 权重全为0时退化为全池均匀抽取
		id := reg.order[reg.r.Intn(len(reg.order))]
		t := reg.templates[id]
		return &t
	}

	roll := reg.r.Intn(total)
	for _, id := range reg.order {
		roll -= weights[reg.templates[id].Rarity]
		if roll < 0 {
			t := reg.templates[id]
			return &t
		}
	}
	return nil
}

// GenerateShopJokers 为商店生成n个实例（有放回抽取，可能重复）
func (reg *Registry) GenerateShopJokers(n int) []*Joker {
	jokers := make([]*Joker, 0, n)
	for i := 0; i < n; i++ {
		t := reg.RandomTemplate(nil)
		if t == nil {
			break
		}
		jokers = append(jokers, reg.Create(t.ID))
	}
	return jokers
}

// CanTrigger 判断小丑牌在给定时机与局面下是否触发
// passive 效果在任何时机都参与判定
func CanTrigger(j *Joker, trigger Trigger, view StateView) bool {
	if j == nil {
		return false
	}
	if j.Effect.Trigger != trigger && j.Effect.Trigger != Passive {
		return false
	}
	return j.Effect.Condition.Eval(view)
}
