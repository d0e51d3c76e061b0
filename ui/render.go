package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/joker"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// 颜色定义
var (
	suitRed        = lipgloss.Color("196") // 红桃、方块 - 亮红色
	suitBlack      = lipgloss.Color("15")  // 黑桃、梅花 - 亮白色
	borderColor    = lipgloss.Color("240") // 边框
	highlightColor = lipgloss.Color("214") // 高亮
	selectedColor  = lipgloss.Color("39")  // 选中状态
	moneyColor     = lipgloss.Color("226") // 金钱 - 黄色
	scoreColor     = lipgloss.Color("50")  // 得分 - 亮绿色
)

var (
	// 标题样式
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228")) // 亮黄色

	// 副标题样式
	styleSubtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Faint(true)

	// 高亮样式
	styleHighlight = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	// 得分样式
	styleScore = lipgloss.NewStyle().
			Foreground(scoreColor).
			Bold(true)

	// 金钱样式
	styleMoney = lipgloss.NewStyle().
			Foreground(moneyColor).
			Bold(true)

	// 警告样式
	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// RenderCard 渲染单张牌（带颜色）
func RenderCard(c card.Card, selected, cursor bool) string {
	suitColor := suitBlack
	if c.IsRed() {
		suitColor = suitRed
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if selected {
		style = style.BorderForeground(selectedColor)
	}
	if cursor {
		style = style.BorderForeground(highlightColor)
	}

	inner := lipgloss.NewStyle().
		Foreground(suitColor).
		Bold(true).
		Render(fmt.Sprintf("%s\n%s", c.Rank.String(), c.Suit.String()))

	return style.Render(inner)
}

// RenderHand 渲染整行手牌，cursorIdx 为光标位置（-1表示无光标）
func RenderHand(hand []card.Card, selectedIDs []string, cursorIdx int) string {
	if len(hand) == 0 {
		return styleSubtitle.Render("（手牌为空）")
	}

	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	var rendered []string
	for i, c := range hand {
		rendered = append(rendered, RenderCard(c, selected[c.ID], i == cursorIdx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderCardCompact 紧凑模式渲染单张牌
func RenderCardCompact(c card.Card) string {
	suitColor := suitBlack
	if c.IsRed() {
		suitColor = suitRed
	}
	return lipgloss.NewStyle().
		Foreground(suitColor).
		Render(fmt.Sprintf("[%s]", c.String()))
}

// RenderCardsCompact 紧凑模式渲染多张牌
func RenderCardsCompact(cards []card.Card) string {
	var parts []string
	for _, c := range cards {
		parts = append(parts, RenderCardCompact(c))
	}
	return strings.Join(parts, " ")
}

// RenderJoker 渲染一张小丑牌的信息行
func RenderJoker(j *joker.Joker, cursor bool) string {
	line := fmt.Sprintf("%s [%s] %s (售价:%d)",
		j.Name, j.Rarity.Name(), j.Description, j.SellValue)
	if cursor {
		return styleHighlight.Render("▸ " + line)
	}
	return "  " + line
}

// RenderShopItem 渲染商店中的一件商品
func RenderShopItem(index int, j *joker.Joker, cursor bool) string {
	line := fmt.Sprintf("[%d] %s [%s] %s - %s",
		index+1, j.Name, j.Rarity.Name(), j.Description,
		styleMoney.Render(fmt.Sprintf("%d金", j.Cost)))
	if cursor {
		return styleHighlight.Render("▸ ") + line
	}
	return "  " + line
}

// RenderScoreResult 渲染一次计分的明细
func RenderScoreResult(result *score.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  筹码 %d × 倍数 %d = %s\n",
		result.HandType.Name(),
		result.Chips,
		result.Multiplier,
		styleScore.Render(fmt.Sprintf("%d", result.FinalScore)))
	for _, effect := range result.JokerEffects {
		fmt.Fprintf(&b, "  %s: %s\n", effect.JokerName, effect.Description)
	}
	return b.String()
}

// RenderStatus 渲染回合状态行
func RenderStatus(round, roundScore, targetScore, money, handsLeft, discardsLeft int) string {
	return fmt.Sprintf("第%d关  得分 %s/%d  %s  出牌×%d 弃牌×%d",
		round,
		styleScore.Render(fmt.Sprintf("%d", roundScore)),
		targetScore,
		styleMoney.Render(fmt.Sprintf("%d金", money)),
		handsLeft,
		discardsLeft)
}
