package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amazing-duo/Balatro-DEMO/pkg/game"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// Model 是bubbletea的顶层模型，只通过引擎的导出方法驱动游戏
type Model struct {
	engine *game.Engine

	cursor     int // 手牌光标
	shopCursor int // 商店光标

	lastResult *score.Result // 最近一次出牌结果
	message    string        // 一次性提示信息
}

// NewModel 创建TUI模型
func NewModel(engine *game.Engine) Model {
	return Model{engine: engine}
}

// Init 实现tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update 实现tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	state := m.engine.GetState()
	switch state.Phase {
	case game.PhaseMenu:
		return m.updateMenu(key)
	case game.PhasePlaying:
		return m.updatePlaying(key)
	case game.PhaseShop:
		return m.updateShop(key)
	case game.PhaseGameOver, game.PhaseGameCompleted:
		return m.updateEnded(key)
	}
	return m, nil
}

func (m Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	if key == "enter" || key == " " {
		m.engine.StartNewGame()
		m.cursor = 0
		m.lastResult = nil
		m.message = ""
	}
	return m, nil
}

func (m Model) updatePlaying(key string) (tea.Model, tea.Cmd) {
	state := m.engine.GetState()
	m.message = ""

	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(state.Hand)-1 {
			m.cursor++
		}
	case " ", "enter":
		if m.cursor < len(state.Hand) {
			id := state.Hand[m.cursor].ID
			if !m.engine.DeselectCard(id) && !m.engine.SelectCard(id) {
				m.message = "最多选择5张牌"
			}
		}
	case "c":
		m.engine.ClearSelection()
	case "p":
		result, ok := m.engine.PlayHand()
		if !ok {
			m.message = "无法出牌：请先选牌"
			break
		}
		m.lastResult = result
		m.cursor = 0
	case "d":
		if !m.engine.DiscardCards() {
			m.message = "无法弃牌：没有选牌或弃牌次数用完"
			break
		}
		m.cursor = 0
	case "a":
		suggestion, ok := m.engine.BestHandSuggestion()
		if ok && m.engine.ApplyAdvice(suggestion.CardIDs) {
			m.message = fmt.Sprintf("推荐: %s（预计 %d 分）",
				suggestion.HandType.Name(), suggestion.Score)
		}
	}
	return m, nil
}

func (m Model) updateShop(key string) (tea.Model, tea.Cmd) {
	state := m.engine.GetState()
	m.message = ""

	switch key {
	case "left", "h":
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case "right", "l":
		if m.shopCursor < len(state.Shop)-1 {
			m.shopCursor++
		}
	case " ", "enter", "b":
		if !m.engine.BuyShopItem(m.shopCursor) {
			m.message = "买不起或槽位已满"
		} else if m.shopCursor > 0 {
			m.shopCursor--
		}
	case "r":
		if !m.engine.RefreshShop() {
			m.message = "金钱不足，无法刷新"
		}
	case "s":
		if len(state.Jokers) > 0 {
			m.engine.SellJoker(state.Jokers[len(state.Jokers)-1].ID)
		}
	case "e", "x":
		m.engine.ExitShop()
		m.cursor = 0
		m.shopCursor = 0
		m.lastResult = nil
	}
	return m, nil
}

func (m Model) updateEnded(key string) (tea.Model, tea.Cmd) {
	if key == "enter" || key == " " {
		m.engine.StartNewGame()
		m.cursor = 0
		m.shopCursor = 0
		m.lastResult = nil
		m.message = ""
	}
	return m, nil
}

// View 实现tea.Model
func (m Model) View() string {
	state := m.engine.GetState()

	switch state.Phase {
	case game.PhaseMenu:
		return m.viewMenu()
	case game.PhasePlaying:
		return m.viewPlaying(state)
	case game.PhaseShop:
		return m.viewShop(state)
	case game.PhaseGameOver:
		return m.viewEnded(state, styleWarning.Render("本局失败"))
	case game.PhaseGameCompleted:
		return m.viewEnded(state, styleScore.Render("恭喜通关！"))
	}
	return ""
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("小丑扑克") + "\n\n")
	b.WriteString("选牌组成牌型得分，达到目标分数过关，\n")
	b.WriteString("用金钱购买小丑牌强化你的计分。\n\n")
	b.WriteString(styleSubtitle.Render("回车开始，q退出") + "\n")
	return b.String()
}

func (m Model) viewPlaying(state game.GameState) string {
	var b strings.Builder
	b.WriteString(RenderStatus(state.Round, state.RoundScore, state.TargetScore,
		state.Money, state.HandsLeft, state.DiscardsLeft) + "\n\n")

	b.WriteString(RenderHand(state.Hand, state.SelectedIDs, m.cursor) + "\n")

	if preview, ok := m.engine.PreviewScore(); ok {
		b.WriteString(fmt.Sprintf("预览: %s  %d × %d = %s\n",
			preview.HandType.Name(), preview.Chips, preview.Multiplier,
			styleScore.Render(fmt.Sprintf("%d", preview.FinalScore))))
	}

	if len(state.Jokers) > 0 {
		b.WriteString("\n小丑牌:\n")
		for _, j := range state.Jokers {
			b.WriteString(RenderJoker(j, false) + "\n")
		}
	}

	if m.lastResult != nil {
		b.WriteString("\n上次出牌:\n" + RenderScoreResult(m.lastResult))
	}
	if m.message != "" {
		b.WriteString("\n" + styleWarning.Render(m.message) + "\n")
	}

	b.WriteString("\n" + styleSubtitle.Render(
		"←→移动 空格选牌 p出牌 d弃牌 a推荐 c清空 q退出") + "\n")
	return b.String()
}

func (m Model) viewShop(state game.GameState) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("商店（第%d关通过）", state.Round)) + "\n")
	b.WriteString(styleMoney.Render(fmt.Sprintf("金钱: %d", state.Money)) + "\n\n")

	if len(state.Shop) == 0 {
		b.WriteString(styleSubtitle.Render("（货架已空）") + "\n")
	}
	for i, j := range state.Shop {
		b.WriteString(RenderShopItem(i, j, i == m.shopCursor) + "\n")
	}

	if len(state.Jokers) > 0 {
		b.WriteString("\n持有:\n")
		for _, j := range state.Jokers {
			b.WriteString(RenderJoker(j, false) + "\n")
		}
	}
	if m.message != "" {
		b.WriteString("\n" + styleWarning.Render(m.message) + "\n")
	}

	b.WriteString("\n" + styleSubtitle.Render(
		fmt.Sprintf("←→选择 回车购买 r刷新(%d金) s出售 e进入下一关", m.engine.Balance().ShopRefreshCost)) + "\n")
	return b.String()
}

func (m Model) viewEnded(state game.GameState, headline string) string {
	var b strings.Builder
	b.WriteString(headline + "\n\n")
	b.WriteString(fmt.Sprintf("到达第%d关，最终得分 %d/%d\n\n",
		state.Round, state.RoundScore, state.TargetScore))
	b.WriteString(state.Stats.Report())
	b.WriteString("\n" + styleSubtitle.Render("回车再来一局，q退出") + "\n")
	return b.String()
}
