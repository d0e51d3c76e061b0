package game

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// SaveGame 把当前状态序列化为JSON快照
func (e *Engine) SaveGame() ([]byte, error) {
	return json.MarshalIndent(e.state, "", "  ")
}

// LoadGame 从JSON快照恢复状态
// 解析失败或快照不合法返回false，当前状态保持不变
func (e *Engine) LoadGame(data []byte) bool {
	var loaded GameState
	if err := json.Unmarshal(data, &loaded); err != nil {
		e.logger.Warn("save data unreadable", zap.Error(err))
		return false
	}
	if !validState(loaded) {
		e.logger.Warn("save data rejected", zap.String("phase", string(loaded.Phase)))
		return false
	}

	// 旧快照可能缺少统计容器
	if loaded.Stats.HandTypeCounts == nil {
		loaded.Stats.HandTypeCounts = NewRunStats().HandTypeCounts
	}
	if loaded.Stats.JokerContributions == nil {
		loaded.Stats.JokerContributions = NewRunStats().JokerContributions
	}

	e.state = loaded
	e.logger.Info("game loaded",
		zap.String("phase", string(loaded.Phase)),
		zap.Int("round", loaded.Round))
	e.notify()
	return true
}

func validState(s GameState) bool {
	switch s.Phase {
	case PhaseMenu, PhasePlaying, PhaseShop, PhaseGameOver, PhaseGameCompleted:
	default:
		return false
	}
	if s.Round < 0 || s.HandsLeft < 0 || s.DiscardsLeft < 0 {
		return false
	}
	// 出牌中的快照必须带计分参数，否则无法继续计分
	if s.Phase == PhasePlaying || s.Phase == PhaseShop {
		if len(s.HandConfigs) == 0 {
			return false
		}
		for _, cfg := range s.HandConfigs {
			if cfg == nil || cfg.BaseMultiplier <= 0 {
				return false
			}
		}
		if !coversAllHandTypes(s.HandConfigs) {
			return false
		}
	}
	return true
}

func coversAllHandTypes(configs map[evaluator.HandType]*score.HandTypeConfig) bool {
	for _, ht := range evaluator.AllHandTypes() {
		if _, ok := configs[ht]; !ok {
			return false
		}
	}
	return true
}
