package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// RunStats 累计一局游戏的统计数据
type RunStats struct {
	HandsPlayed        int                        `json:"hands_played"`         // 出牌次数
	CardsDiscarded     int                        `json:"cards_discarded"`      // 弃掉的牌数
	BestHandScore      int                        `json:"best_hand_score"`      // 单次最高得分
	BestHandType       evaluator.HandType         `json:"best_hand_type"`       // 最高得分对应牌型
	TotalScore         int                        `json:"total_score"`          // 累计得分
	HandTypeCounts     map[evaluator.HandType]int `json:"hand_type_counts"`     // 各牌型出现次数
	JokerContributions map[string]int             `json:"joker_contributions"`  // 各小丑牌的累计贡献值
}

// NewRunStats 创建空统计
func NewRunStats() RunStats {
	return RunStats{
		HandTypeCounts:     make(map[evaluator.HandType]int),
		JokerContributions: make(map[string]int),
	}
}

// RecordHand 记录一次出牌的结果
func (s *RunStats) RecordHand(result score.Result) {
	s.HandsPlayed++
	s.TotalScore += result.FinalScore
	s.HandTypeCounts[result.HandType]++
	if result.FinalScore > s.BestHandScore {
		s.BestHandScore = result.FinalScore
		s.BestHandType = result.HandType
	}
	for _, effect := range result.JokerEffects {
		s.JokerContributions[effect.JokerName] += effect.Value
	}
}

// RecordDiscard 记录一次弃牌
func (s *RunStats) RecordDiscard(n int) {
	s.CardsDiscarded += n
}

// Report 生成可读的统计报告
func (s *RunStats) Report() string {
	var b strings.Builder
	b.WriteString("===== 本局统计 =====\n")
	fmt.Fprintf(&b, "出牌次数: %d\n", s.HandsPlayed)
	fmt.Fprintf(&b, "弃牌张数: %d\n", s.CardsDiscarded)
	fmt.Fprintf(&b, "累计得分: %d\n", s.TotalScore)
	if s.HandsPlayed > 0 {
		fmt.Fprintf(&b, "最高单次: %d (%s)\n", s.BestHandScore, s.BestHandType.Name())
	}

	if len(s.HandTypeCounts) > 0 {
		b.WriteString("牌型分布:\n")
		for _, ht := range evaluator.AllHandTypes() {
			if n := s.HandTypeCounts[ht]; n > 0 {
				fmt.Fprintf(&b, "  %s: %d次\n", ht.Name(), n)
			}
		}
	}

	if len(s.JokerContributions) > 0 {
		b.WriteString("小丑牌贡献:\n")
		names := make([]string, 0, len(s.JokerContributions))
		for name := range s.JokerContributions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %d\n", name, s.JokerContributions[name])
		}
	}
	return b.String()
}

func (s RunStats) clone() RunStats {
	c := s
	c.HandTypeCounts = make(map[evaluator.HandType]int, len(s.HandTypeCounts))
	for k, v := range s.HandTypeCounts {
		c.HandTypeCounts[k] = v
	}
	c.JokerContributions = make(map[string]int, len(s.JokerContributions))
	for k, v := range s.JokerContributions {
		c.JokerContributions[k] = v
	}
	return c
}
