package game

import (
	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// Suggestion 表示一组推荐出牌
type Suggestion struct {
	CardIDs  []string           // 推荐选中的牌
	HandType evaluator.HandType // 对应牌型
	Score    int                // 预估得分（按预览口径）
}

// BestHandSuggestion 枚举当前手牌的所有组合，返回牌型最强的一组
// 出牌阶段之外或手牌为空返回 (Suggestion{}, false)
func (e *Engine) BestHandSuggestion() (Suggestion, bool) {
	if e.state.Phase != PhasePlaying || len(e.state.Hand) == 0 {
		return Suggestion{}, false
	}

	best, result, err := score.FindBestHand(e.state.Hand, e.balance.MaxSelected)
	if err != nil {
		return Suggestion{}, false
	}

	ids := make([]string, len(best))
	for i, c := range best {
		ids[i] = c.ID
	}

	preview, perr := score.Preview(best, e.state.Jokers, e.state.HandConfigs)
	estimated := 0
	if perr == nil {
		estimated = preview.FinalScore
	}

	return Suggestion{
		CardIDs:  ids,
		HandType: result.HandType,
		Score:    estimated,
	}, true
}

// ApplyAdvice 清空当前选中并按给定顺序选中指定的牌
// 任何一张选不上（不在手牌、超上限）都返回false，已生效的选择保留
func (e *Engine) ApplyAdvice(cardIDs []string) bool {
	if e.state.Phase != PhasePlaying {
		return false
	}

	e.ClearSelection()
	for _, id := range cardIDs {
		if !e.SelectCard(id) {
			return false
		}
	}
	return true
}
