package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Amazing-duo/Balatro-DEMO/internal/card"
	"github.com/Amazing-duo/Balatro-DEMO/internal/config"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/joker"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

// Phase 表示游戏所处阶段
type Phase string

const (
	PhaseMenu          Phase = "menu"          // 菜单
	PhasePlaying       Phase = "playing"       // 出牌阶段
	PhaseShop          Phase = "shop"          // 商店阶段
	PhaseGameOver      Phase = "gameOver"      // 失败
	PhaseGameCompleted Phase = "gameCompleted" // 通关
)

// GameState 保存一局游戏的全部状态，可整体序列化
type GameState struct {
	Phase        Phase                                        `json:"phase"`
	Round        int                                          `json:"round"`
	TargetScore  int                                          `json:"target_score"`
	RoundScore   int                                          `json:"round_score"`
	Money        int                                          `json:"money"`
	HandsLeft    int                                          `json:"hands_left"`
	DiscardsLeft int                                          `json:"discards_left"`
	Deck         []card.Card                                  `json:"deck"`
	Hand         []card.Card                                  `json:"hand"`
	DiscardPile  []card.Card                                  `json:"discard_pile"`
	SelectedIDs  []string                                     `json:"selected_ids"`
	Jokers       []*joker.Joker                               `json:"jokers"`
	Shop         []*joker.Joker                               `json:"shop"`
	HandConfigs  map[evaluator.HandType]*score.HandTypeConfig `json:"hand_configs"`
	Stats        RunStats                                     `json:"stats"`
}

// Engine 驱动整局游戏的状态机
// 不做内部加锁，调用方自行保证单线程访问
type Engine struct {
	state    GameState
	balance  config.Balance
	registry *joker.Registry
	r        *rand.Rand
	logger   *zap.Logger

	onStateChange func(GameState)
	onScore       func(score.Result)
}

// NewEngine 用时间种子创建引擎
func NewEngine(balance config.Balance) *Engine {
	return NewEngineWithSeed(balance, time.Now().UnixNano())
}

// NewEngineWithSeed 用指定种子创建引擎，同种子下整局可复现
func NewEngineWithSeed(balance config.Balance, seed int64) *Engine {
	r := rand.New(rand.NewSource(seed))
	return &Engine{
		state:    GameState{Phase: PhaseMenu},
		balance:  balance,
		registry: joker.NewRegistry(r),
		r:        r,
		logger:   zap.NewNop(),
	}
}

// SetLogger 注入日志器，不注入时保持静默
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// SetOnStateChange 注册状态变化回调，回调收到的是状态副本
func (e *Engine) SetOnStateChange(fn func(GameState)) {
	e.onStateChange = fn
}

// SetOnScore 注册计分回调
func (e *Engine) SetOnScore(fn func(score.Result)) {
	e.onScore = fn
}

// Registry 返回引擎使用的小丑牌注册表
func (e *Engine) Registry() *joker.Registry {
	return e.registry
}

// Balance 返回引擎使用的平衡参数
func (e *Engine) Balance() config.Balance {
	return e.balance
}

// StartNewGame 开始新的一局
func (e *Engine) StartNewGame() {
	deck := card.Shuffle(card.NewStandardDeck(), e.r)
	hand, rest, _ := card.Deal(deck, e.balance.HandSize)

	e.state = GameState{
		Phase:        PhasePlaying,
		Round:        1,
		TargetScore:  e.balance.BaseAnteScore,
		Money:        e.balance.InitialMoney,
		HandsLeft:    e.balance.InitialHands,
		DiscardsLeft: e.balance.InitialDiscards,
		Deck:         rest,
		Hand:         card.SortByRankDesc(hand, true),
		HandConfigs:  score.DefaultHandTypeConfigs(),
		Stats:        NewRunStats(),
	}

	e.logger.Info("new game started",
		zap.Int("round", e.state.Round),
		zap.Int("target", e.state.TargetScore))
	e.notify()
}

// SelectCard 选中一张手牌，超出上限或不在手牌中返回false
func (e *Engine) SelectCard(cardID string) bool {
	if e.state.Phase != PhasePlaying {
		return false
	}
	if len(e.state.SelectedIDs) >= e.balance.MaxSelected {
		return false
	}
	for _, id := range e.state.SelectedIDs {
		if id == cardID {
			return false
		}
	}
	if e.findInHand(cardID) < 0 {
		return false
	}

	e.state.SelectedIDs = append(e.state.SelectedIDs, cardID)
	e.notify()
	return true
}

// DeselectCard 取消选中
func (e *Engine) DeselectCard(cardID string) bool {
	for i, id := range e.state.SelectedIDs {
		if id == cardID {
			e.state.SelectedIDs = append(e.state.SelectedIDs[:i], e.state.SelectedIDs[i+1:]...)
			e.notify()
			return true
		}
	}
	return false
}

// ClearSelection 清空选中
func (e *Engine) ClearSelection() {
	if len(e.state.SelectedIDs) == 0 {
		return
	}
	e.state.SelectedIDs = nil
	e.notify()
}

// SelectedCards 按选中顺序解析出当前选中的牌
func (e *Engine) SelectedCards() []card.Card {
	cards := make([]card.Card, 0, len(e.state.SelectedIDs))
	for _, id := range e.state.SelectedIDs {
		if i := e.findInHand(id); i >= 0 {
			cards = append(cards, e.state.Hand[i])
		}
	}
	return cards
}

// PlayHand 打出当前选中的牌并计分
// 未选牌、出牌次数耗尽或阶段不对时返回 (nil, false)
func (e *Engine) PlayHand() (*score.Result, bool) {
	if e.state.Phase != PhasePlaying || e.state.HandsLeft <= 0 {
		return nil, false
	}
	selected := e.SelectedCards()
	if len(selected) == 0 {
		return nil, false
	}

	result, err := score.Calculate(selected, e.state.Jokers, e.state.HandConfigs, e.r)
	if err != nil {
		e.logger.Error("scoring failed", zap.Error(err))
		return nil, false
	}

	e.state.RoundScore += result.FinalScore
	e.state.HandsLeft--
	e.removeSelectedFromHand()
	e.refillHand()
	e.state.Stats.RecordHand(result)

	e.logger.Info("hand played",
		zap.String("hand_type", string(result.HandType)),
		zap.Int("score", result.FinalScore),
		zap.Int("round_score", e.state.RoundScore),
		zap.Int("hands_left", e.state.HandsLeft))

	if e.onScore != nil {
		e.onScore(result)
	}

	if e.state.RoundScore >= e.state.TargetScore {
		e.enterShop()
	} else if e.state.HandsLeft == 0 {
		e.state.Phase = PhaseGameOver
		e.logger.Info("game over",
			zap.Int("round", e.state.Round),
			zap.Int("round_score", e.state.RoundScore),
			zap.Int("target", e.state.TargetScore))
	}

	e.notify()
	return &result, true
}

// DiscardCards 弃掉当前选中的牌并补牌
func (e *Engine) DiscardCards() bool {
	if e.state.Phase != PhasePlaying || e.state.DiscardsLeft <= 0 {
		return false
	}
	if len(e.state.SelectedIDs) == 0 {
		return false
	}

	n := len(e.SelectedCards())
	e.state.DiscardsLeft--
	e.removeSelectedFromHand()
	e.refillHand()
	e.state.Stats.RecordDiscard(n)

	e.logger.Debug("cards discarded",
		zap.Int("count", n),
		zap.Int("discards_left", e.state.DiscardsLeft))
	e.notify()
	return true
}

// PreviewScore 预览当前选中牌的得分，不产生副作用
func (e *Engine) PreviewScore() (*score.Result, bool) {
	selected := e.SelectedCards()
	if len(selected) == 0 {
		return nil, false
	}
	result, err := score.Preview(selected, e.state.Jokers, e.state.HandConfigs)
	if err != nil {
		return nil, false
	}
	return &result, true
}

// BuyShopItem 购买商店中指定位置的小丑牌
// 钱不够、位置非法或槽位已满都返回false，不发生任何扣款
func (e *Engine) BuyShopItem(index int) bool {
	if e.state.Phase != PhaseShop {
		return false
	}
	if index < 0 || index >= len(e.state.Shop) {
		return false
	}
	item := e.state.Shop[index]
	if e.state.Money < item.Cost {
		return false
	}
	if len(e.state.Jokers) >= e.balance.MaxJokers {
		return false
	}

	e.state.Money -= item.Cost
	e.state.Jokers = append(e.state.Jokers, item)
	e.state.Shop = append(e.state.Shop[:index], e.state.Shop[index+1:]...)

	e.logger.Info("joker bought",
		zap.String("joker", item.Name),
		zap.Int("cost", item.Cost),
		zap.Int("money", e.state.Money))
	e.notify()
	return true
}

// RefreshShop 付费刷新商店
func (e *Engine) RefreshShop() bool {
	if e.state.Phase != PhaseShop || e.state.Money < e.balance.ShopRefreshCost {
		return false
	}

	e.state.Money -= e.balance.ShopRefreshCost
	e.state.Shop = e.registry.GenerateShopJokers(e.balance.ShopSize)
	e.notify()
	return true
}

// SellJoker 出售持有的小丑牌，按出售价格回收金钱
func (e *Engine) SellJoker(jokerID string) bool {
	for i, j := range e.state.Jokers {
		if j.ID == jokerID {
			e.state.Money += j.SellValue
			e.state.Jokers = append(e.state.Jokers[:i], e.state.Jokers[i+1:]...)
			e.logger.Info("joker sold",
				zap.String("joker", j.Name),
				zap.Int("value", j.SellValue))
			e.notify()
			return true
		}
	}
	return false
}

// UpgradeHandType 付费升级一种牌型的计分参数
func (e *Engine) UpgradeHandType(handType evaluator.HandType) bool {
	cfg, ok := e.state.HandConfigs[handType]
	if !ok || e.state.Money < cfg.UpgradeCost {
		return false
	}

	e.state.Money -= cfg.UpgradeCost
	score.UpgradeConfig(cfg, e.balance.UpgradeGrowth)

	e.logger.Info("hand type upgraded",
		zap.String("hand_type", string(handType)),
		zap.Int("level", cfg.Level))
	e.notify()
	return true
}

// ExitShop 离开商店进入下一轮
func (e *Engine) ExitShop() bool {
	if e.state.Phase != PhaseShop {
		return false
	}
	e.startNextRound()
	e.notify()
	return true
}

// GetState 返回当前状态的深拷贝
func (e *Engine) GetState() GameState {
	return cloneState(e.state)
}

// IsGameOver 判断本局是否已结束（失败或通关）
func (e *Engine) IsGameOver() bool {
	return e.state.Phase == PhaseGameOver || e.state.Phase == PhaseGameCompleted
}

// enterShop 过关结算：发放过关奖励与被动收入，生成商店
func (e *Engine) enterShop() {
	income := e.balance.RoundReward
	for _, j := range e.state.Jokers {
		income += j.Effect.MoneyPerRound
	}
	e.state.Money += income
	e.state.Phase = PhaseShop
	e.state.SelectedIDs = nil
	e.state.Shop = e.registry.GenerateShopJokers(e.balance.ShopSize)

	e.logger.Info("round cleared",
		zap.Int("round", e.state.Round),
		zap.Int("income", income),
		zap.Int("money", e.state.Money))
}

// startNextRound 推进到下一轮：提高目标分数，收拢全部牌重洗重发
func (e *Engine) startNextRound() {
	e.state.Round++
	if e.state.Round > e.balance.MaxLevels {
		e.state.Phase = PhaseGameCompleted
		e.logger.Info("game completed", zap.Int("rounds", e.balance.MaxLevels))
		return
	}

	all := make([]card.Card, 0, len(e.state.Deck)+len(e.state.Hand)+len(e.state.DiscardPile))
	all = append(all, e.state.Deck...)
	all = append(all, e.state.Hand...)
	all = append(all, e.state.DiscardPile...)
	shuffled := card.Shuffle(all, e.r)
	hand, rest, _ := card.Deal(shuffled, e.balance.HandSize)

	e.state.Phase = PhasePlaying
	e.state.TargetScore = e.balance.BaseAnteScore + (e.state.Round-1)*e.balance.ScoreIncrement
	e.state.RoundScore = 0
	e.state.HandsLeft = e.balance.InitialHands
	e.state.DiscardsLeft = e.balance.InitialDiscards
	e.state.Deck = rest
	e.state.Hand = card.SortByRankDesc(hand, true)
	e.state.DiscardPile = nil
	e.state.SelectedIDs = nil
	e.state.Shop = nil

	e.logger.Info("round started",
		zap.Int("round", e.state.Round),
		zap.Int("target", e.state.TargetScore))
}

// removeSelectedFromHand 把选中的牌从手牌移入弃牌堆并清空选中
func (e *Engine) removeSelectedFromHand() {
	selected := make(map[string]bool, len(e.state.SelectedIDs))
	for _, id := range e.state.SelectedIDs {
		selected[id] = true
	}

	var kept []card.Card
	for _, c := range e.state.Hand {
		if selected[c.ID] {
			e.state.DiscardPile = append(e.state.DiscardPile, c)
		} else {
			kept = append(kept, c)
		}
	}
	e.state.Hand = kept
	e.state.SelectedIDs = nil
}

// refillHand 从牌堆补牌到手牌上限，保持手牌降序
func (e *Engine) refillHand() {
	need := e.balance.HandSize - len(e.state.Hand)
	if need <= 0 || len(e.state.Deck) == 0 {
		return
	}
	if need > len(e.state.Deck) {
		need = len(e.state.Deck)
	}

	dealt, rest, _ := card.Deal(e.state.Deck, need)
	e.state.Deck = rest
	e.state.Hand = card.SortByRankDesc(append(e.state.Hand, dealt...), true)
}

func (e *Engine) findInHand(cardID string) int {
	for i, c := range e.state.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

func (e *Engine) notify() {
	if e.onStateChange != nil {
		e.onStateChange(e.GetState())
	}
}

// cloneState 深拷贝状态，调用方拿到的副本与引擎内部互不影响
func cloneState(s GameState) GameState {
	clone := s
	clone.Deck = append([]card.Card(nil), s.Deck...)
	clone.Hand = append([]card.Card(nil), s.Hand...)
	clone.DiscardPile = append([]card.Card(nil), s.DiscardPile...)
	clone.SelectedIDs = append([]string(nil), s.SelectedIDs...)

	if s.Jokers != nil {
		clone.Jokers = make([]*joker.Joker, len(s.Jokers))
		for i, j := range s.Jokers {
			copied := *j
			clone.Jokers[i] = &copied
		}
	}
	if s.Shop != nil {
		clone.Shop = make([]*joker.Joker, len(s.Shop))
		for i, j := range s.Shop {
			copied := *j
			clone.Shop[i] = &copied
		}
	}
	if s.HandConfigs != nil {
		clone.HandConfigs = make(map[evaluator.HandType]*score.HandTypeConfig, len(s.HandConfigs))
		for ht, cfg := range s.HandConfigs {
			copied := *cfg
			clone.HandConfigs[ht] = &copied
		}
	}
	clone.Stats = s.Stats.clone()
	return clone
}
