package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance 保存所有玩法平衡参数
type Balance struct {
	// 手牌与回合
	HandSize        int `yaml:"hand_size"`        // 手牌上限
	MaxSelected     int `yaml:"max_selected"`     // 单次最多选择的牌数
	InitialHands    int `yaml:"initial_hands"`    // 每轮出牌次数
	InitialDiscards int `yaml:"initial_discards"` // 每轮弃牌次数

	// 经济
	InitialMoney    int `yaml:"initial_money"`     // 初始金钱
	RoundReward     int `yaml:"round_reward"`      // 过关奖励金钱
	MaxJokers       int `yaml:"max_jokers"`        // 小丑牌槽位上限
	ShopSize        int `yaml:"shop_size"`         // 商店槽位数
	ShopRefreshCost int `yaml:"shop_refresh_cost"` // 商店刷新费用

	// 关卡分数
	BaseAnteScore  int `yaml:"base_ante_score"` // 第一关目标分数
	ScoreIncrement int `yaml:"score_increment"` // 每关分数增量
	MaxLevels      int `yaml:"max_levels"`      // 最大关卡数

	// 牌型升级
	UpgradeGrowth float64 `yaml:"upgrade_growth"` // 升级时基础筹码的增长系数
}

// Default 返回默认平衡参数
func Default() Balance {
	return Balance{
		HandSize:        8,
		MaxSelected:     5,
		InitialHands:    4,
		InitialDiscards: 3,
		InitialMoney:    4,
		RoundReward:     4,
		MaxJokers:       5,
		ShopSize:        2,
		ShopRefreshCost: 2,
		BaseAnteScore:   300,
		ScoreIncrement:  150,
		MaxLevels:       8,
		UpgradeGrowth:   0.3,
	}
}

// Load 从 YAML 文件加载平衡参数，未设置的字段保留默认值
func Load(path string) (Balance, error) {
	bal := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return bal, fmt.Errorf("reading balance config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &bal); err != nil {
		return bal, fmt.Errorf("parsing balance config %q: %w", path, err)
	}
	if err := bal.Validate(); err != nil {
		return bal, err
	}
	return bal, nil
}

// Validate 检查平衡参数是否自洽
func (b Balance) Validate() error {
	if b.HandSize < b.MaxSelected {
		return fmt.Errorf("hand_size %d must be >= max_selected %d", b.HandSize, b.MaxSelected)
	}
	if b.MaxSelected < 1 || b.MaxSelected > 5 {
		return fmt.Errorf("max_selected %d must be in [1,5]", b.MaxSelected)
	}
	if b.InitialHands < 1 {
		return fmt.Errorf("initial_hands %d must be >= 1", b.InitialHands)
	}
	if b.MaxLevels < 1 {
		return fmt.Errorf("max_levels %d must be >= 1", b.MaxLevels)
	}
	if b.UpgradeGrowth < 0 {
		return fmt.Errorf("upgrade_growth %f must be >= 0", b.UpgradeGrowth)
	}
	return nil
}
