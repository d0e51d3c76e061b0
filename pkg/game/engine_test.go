package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amazing-duo/Balatro-DEMO/internal/config"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/joker"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/score"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()
	return e
}

func TestStartNewGame(t *testing.T) {
	e := newTestEngine(t)
	state := e.GetState()

	assert.Equal(t, PhasePlaying, state.Phase)
	assert.Equal(t, 1, state.Round)
	assert.Equal(t, 300, state.TargetScore)
	assert.Equal(t, 0, state.RoundScore)
	assert.Equal(t, 4, state.Money)
	assert.Equal(t, 4, state.HandsLeft)
	assert.Equal(t, 3, state.DiscardsLeft)
	assert.Len(t, state.Hand, 8)
	assert.Len(t, state.Deck, 44)
	assert.Empty(t, state.SelectedIDs)
	assert.Len(t, state.HandConfigs, 10)
}

func TestStartNewGame_HandSortedDescending(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand

	for i := 1; i < len(hand); i++ {
		prev := hand[i-1].StraightValue(true)
		cur := hand[i].StraightValue(true)
		assert.GreaterOrEqual(t, prev, cur, "hand must stay sorted high to low")
	}
}

func TestStartNewGame_SameSeedSameDeal(t *testing.T) {
	a := NewEngineWithSeed(config.Default(), 7)
	b := NewEngineWithSeed(config.Default(), 7)
	a.StartNewGame()
	b.StartNewGame()

	ha, hb := a.GetState().Hand, b.GetState().Hand
	require.Len(t, hb, len(ha))
	for i := range ha {
		assert.Equal(t, ha[i].ID, hb[i].ID)
	}
}

func TestSelectCard(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand

	assert.True(t, e.SelectCard(hand[0].ID))
	assert.False(t, e.SelectCard(hand[0].ID), "double select must fail")
	assert.False(t, e.SelectCard("no-such-card"))

	for i := 1; i < 5; i++ {
		assert.True(t, e.SelectCard(hand[i].ID))
	}
	assert.False(t, e.SelectCard(hand[5].ID), "sixth selection exceeds the limit")
	assert.Len(t, e.GetState().SelectedIDs, 5)
}

func TestDeselectCard(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand

	e.SelectCard(hand[0].ID)
	assert.True(t, e.DeselectCard(hand[0].ID))
	assert.False(t, e.DeselectCard(hand[0].ID))
	assert.Empty(t, e.GetState().SelectedIDs)
}

func TestSelectedCards_PreservesOrder(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand

	e.SelectCard(hand[3].ID)
	e.SelectCard(hand[0].ID)

	selected := e.SelectedCards()
	require.Len(t, selected, 2)
	assert.Equal(t, hand[3].ID, selected[0].ID)
	assert.Equal(t, hand[0].ID, selected[1].ID)
}

func TestPlayHand_NoSelection(t *testing.T) {
	e := newTestEngine(t)
	result, ok := e.PlayHand()
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestPlayHand_BasicFlow(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	e.SelectCard(hand[1].ID)

	result, ok := e.PlayHand()
	require.True(t, ok)
	require.NotNil(t, result)
	assert.Greater(t, result.FinalScore, 0)

	state := e.GetState()
	assert.Equal(t, result.FinalScore, state.RoundScore)
	assert.Equal(t, 3, state.HandsLeft)
	assert.Len(t, state.Hand, 8, "hand must refill to its limit")
	assert.Len(t, state.DiscardPile, 2)
	assert.Empty(t, state.SelectedIDs)
	assert.Equal(t, 1, state.Stats.HandsPlayed)
}

func TestPlayHand_ReachTargetEntersShop(t *testing.T) {
	bal := config.Default()
	bal.BaseAnteScore = 1 // 任何一次出牌都能过关
	e := NewEngineWithSeed(bal, 42)
	e.StartNewGame()

	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	_, ok := e.PlayHand()
	require.True(t, ok)

	state := e.GetState()
	assert.Equal(t, PhaseShop, state.Phase)
	assert.Equal(t, 4+4, state.Money, "clearing a round pays the round reward")
	assert.Len(t, state.Shop, bal.ShopSize)
}

func TestPlayHand_ExhaustedHandsIsGameOver(t *testing.T) {
	bal := config.Default()
	bal.BaseAnteScore = 1000000
	e := NewEngineWithSeed(bal, 42)
	e.StartNewGame()

	for i := 0; i < bal.InitialHands; i++ {
		hand := e.GetState().Hand
		require.True(t, e.SelectCard(hand[0].ID))
		_, ok := e.PlayHand()
		require.True(t, ok, "play %d", i)
	}

	assert.Equal(t, PhaseGameOver, e.GetState().Phase)
	assert.True(t, e.IsGameOver())

	// 结束后不能再出牌
	_, ok := e.PlayHand()
	assert.False(t, ok)
}

func TestDiscardCards(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	e.SelectCard(hand[1].ID)

	require.True(t, e.DiscardCards())

	state := e.GetState()
	assert.Equal(t, 2, state.DiscardsLeft)
	assert.Len(t, state.Hand, 8)
	assert.Len(t, state.DiscardPile, 2)
	assert.Equal(t, 0, state.RoundScore, "discarding never scores")
	assert.Equal(t, 2, state.Stats.CardsDiscarded)
}

func TestDiscardCards_Exhausted(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 3; i++ {
		hand := e.GetState().Hand
		e.SelectCard(hand[0].ID)
		require.True(t, e.DiscardCards())
	}

	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	assert.False(t, e.DiscardCards(), "no discards left")
}

func TestDiscardCards_NoSelection(t *testing.T) {
	e := newTestEngine(t)
	assert.False(t, e.DiscardCards())
}

func TestPreviewScore_NoSideEffects(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)

	before := e.GetState()
	result, ok := e.PreviewScore()
	require.True(t, ok)
	require.NotNil(t, result)

	after := e.GetState()
	assert.Equal(t, before.RoundScore, after.RoundScore)
	assert.Equal(t, before.HandsLeft, after.HandsLeft)
	assert.Len(t, after.Hand, len(before.Hand))

	again, ok := e.PreviewScore()
	require.True(t, ok)
	assert.Equal(t, result.FinalScore, again.FinalScore, "preview must be repeatable")
}

func enterShopWith(t *testing.T, e *Engine, money int, shop ...*joker.Joker) {
	t.Helper()
	e.state.Phase = PhaseShop
	e.state.Money = money
	e.state.Shop = shop
}

func TestBuyShopItem(t *testing.T) {
	e := newTestEngine(t)
	item := e.Registry().Create("joker_basic_mult") // 价格2
	enterShopWith(t, e, 10, item)

	require.True(t, e.BuyShopItem(0))

	state := e.GetState()
	assert.Equal(t, 8, state.Money)
	require.Len(t, state.Jokers, 1)
	assert.Equal(t, "joker_basic_mult", state.Jokers[0].TemplateID)
	assert.Empty(t, state.Shop)
}

func TestBuyShopItem_InsufficientFunds(t *testing.T) {
	e := newTestEngine(t)
	item := e.Registry().Create("joker_chaos_multiplier") // 价格25
	enterShopWith(t, e, 10, item)

	assert.False(t, e.BuyShopItem(0))
	state := e.GetState()
	assert.Equal(t, 10, state.Money, "failed purchase must not charge")
	assert.Empty(t, state.Jokers)
	assert.Len(t, state.Shop, 1)
}

func TestBuyShopItem_FullRosterLeavesMoneyUnchanged(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < e.Balance().MaxJokers; i++ {
		e.state.Jokers = append(e.state.Jokers, e.Registry().Create("joker_basic_chips"))
	}
	item := e.Registry().Create("joker_basic_mult")
	enterShopWith(t, e, 10, item)

	assert.False(t, e.BuyShopItem(0))
	state := e.GetState()
	assert.Equal(t, 10, state.Money)
	assert.Len(t, state.Jokers, e.Balance().MaxJokers)
}

func TestBuyShopItem_BadIndex(t *testing.T) {
	e := newTestEngine(t)
	enterShopWith(t, e, 10)
	assert.False(t, e.BuyShopItem(0))
	assert.False(t, e.BuyShopItem(-1))
}

func TestRefreshShop(t *testing.T) {
	e := newTestEngine(t)
	enterShopWith(t, e, 10)

	require.True(t, e.RefreshShop())
	state := e.GetState()
	assert.Equal(t, 8, state.Money)
	assert.Len(t, state.Shop, e.Balance().ShopSize)
}

func TestRefreshShop_InsufficientFunds(t *testing.T) {
	e := newTestEngine(t)
	enterShopWith(t, e, 1)
	assert.False(t, e.RefreshShop())
	assert.Equal(t, 1, e.GetState().Money)
}

func TestSellJoker(t *testing.T) {
	e := newTestEngine(t)
	j := e.Registry().Create("joker_flush_master") // 出售价7
	e.state.Jokers = append(e.state.Jokers, j)
	e.state.Money = 0

	require.True(t, e.SellJoker(j.ID))
	state := e.GetState()
	assert.Equal(t, 7, state.Money)
	assert.Empty(t, state.Jokers)

	assert.False(t, e.SellJoker(j.ID), "selling twice must fail")
}

func TestUpgradeHandType(t *testing.T) {
	e := newTestEngine(t)
	e.state.Money = 10

	require.True(t, e.UpgradeHandType(evaluator.Pair)) // 费用3

	state := e.GetState()
	assert.Equal(t, 7, state.Money)
	cfg := state.HandConfigs[evaluator.Pair]
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, 13, cfg.BaseChips)
	assert.Equal(t, 3, cfg.BaseMultiplier)
}

func TestUpgradeHandType_MoneyGated(t *testing.T) {
	e := newTestEngine(t)
	e.state.Money = 0

	assert.False(t, e.UpgradeHandType(evaluator.Pair))
	assert.Equal(t, 1, e.GetState().HandConfigs[evaluator.Pair].Level)
}

func TestExitShop_StartsNextRound(t *testing.T) {
	bal := config.Default()
	bal.BaseAnteScore = 1
	e := NewEngineWithSeed(bal, 42)
	e.StartNewGame()

	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	_, ok := e.PlayHand()
	require.True(t, ok)
	require.Equal(t, PhaseShop, e.GetState().Phase)

	require.True(t, e.ExitShop())

	state := e.GetState()
	assert.Equal(t, PhasePlaying, state.Phase)
	assert.Equal(t, 2, state.Round)
	assert.Equal(t, 1+bal.ScoreIncrement, state.TargetScore)
	assert.Equal(t, 0, state.RoundScore)
	assert.Equal(t, bal.InitialHands, state.HandsLeft)
	assert.Equal(t, bal.InitialDiscards, state.DiscardsLeft)
	assert.Len(t, state.Hand, bal.HandSize)
	assert.Empty(t, state.DiscardPile)
	assert.Empty(t, state.Shop)
	// 全部牌收拢重发，总数不变
	assert.Equal(t, 52, len(state.Deck)+len(state.Hand))
}

func TestExitShop_OutsideShopPhase(t *testing.T) {
	e := newTestEngine(t)
	assert.False(t, e.ExitShop())
}

func TestGameCompleted_AfterLastRound(t *testing.T) {
	bal := config.Default()
	bal.MaxLevels = 1
	e := NewEngineWithSeed(bal, 42)
	e.StartNewGame()

	e.state.Phase = PhaseShop
	require.True(t, e.ExitShop())

	assert.Equal(t, PhaseGameCompleted, e.GetState().Phase)
	assert.True(t, e.IsGameOver())
}

func TestGoldenTicket_PaysEachRound(t *testing.T) {
	bal := config.Default()
	bal.BaseAnteScore = 1
	e := NewEngineWithSeed(bal, 42)
	e.StartNewGame()
	e.state.Jokers = append(e.state.Jokers, e.Registry().Create("joker_golden_ticket"))

	moneyBefore := e.GetState().Money
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	_, ok := e.PlayHand()
	require.True(t, ok)
	require.Equal(t, PhaseShop, e.GetState().Phase)

	// 过关奖励4 + 黄金门票1
	assert.Equal(t, moneyBefore+bal.RoundReward+1, e.GetState().Money)
}

func TestBestHandSuggestion(t *testing.T) {
	e := newTestEngine(t)

	suggestion, ok := e.BestHandSuggestion()
	require.True(t, ok)
	assert.NotEmpty(t, suggestion.CardIDs)
	assert.Greater(t, suggestion.Score, 0)

	// 推荐必须可以原样执行
	require.True(t, e.ApplyAdvice(suggestion.CardIDs))
	assert.Equal(t, suggestion.CardIDs, e.GetState().SelectedIDs)

	preview, ok := e.PreviewScore()
	require.True(t, ok)
	assert.Equal(t, suggestion.Score, preview.FinalScore)
}

func TestApplyAdvice_BadID(t *testing.T) {
	e := newTestEngine(t)
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)

	assert.False(t, e.ApplyAdvice([]string{"no-such-card"}))
	assert.Empty(t, e.GetState().SelectedIDs, "advice clears the previous selection first")
}

func TestGetState_DeepCopy(t *testing.T) {
	e := newTestEngine(t)
	e.state.Jokers = append(e.state.Jokers, e.Registry().Create("joker_basic_mult"))

	state := e.GetState()
	state.Hand[0].Selected = true
	state.Jokers[0].TimesTriggered = 99
	state.HandConfigs[evaluator.Pair].Level = 99
	state.Stats.HandTypeCounts[evaluator.Pair] = 99

	fresh := e.GetState()
	assert.False(t, fresh.Hand[0].Selected)
	assert.Equal(t, 0, fresh.Jokers[0].TimesTriggered)
	assert.Equal(t, 1, fresh.HandConfigs[evaluator.Pair].Level)
	assert.Equal(t, 0, fresh.Stats.HandTypeCounts[evaluator.Pair])
}

func TestOnStateChange_Callback(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	var calls int
	e.SetOnStateChange(func(GameState) { calls++ })

	e.StartNewGame()
	assert.Equal(t, 1, calls)

	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	assert.Equal(t, 2, calls)
}

func TestOnScore_Callback(t *testing.T) {
	e := newTestEngine(t)
	var got *score.Result
	e.SetOnScore(func(r score.Result) { got = &r })

	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	result, ok := e.PlayHand()
	require.True(t, ok)

	require.NotNil(t, got)
	assert.Equal(t, result.FinalScore, got.FinalScore)
}
