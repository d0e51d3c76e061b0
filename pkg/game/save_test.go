package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amazing-duo/Balatro-DEMO/internal/config"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/evaluator"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()

	// 制造一些非初始状态
	e.state.Jokers = append(e.state.Jokers, e.Registry().Create("joker_basic_mult"))
	hand := e.GetState().Hand
	e.SelectCard(hand[0].ID)
	e.SelectCard(hand[1].ID)
	_, ok := e.PlayHand()
	require.True(t, ok)
	e.UpgradeHandType(evaluator.Pair)

	saved := e.GetState()
	data, err := e.SaveGame()
	require.NoError(t, err)

	// 恢复到另一台引擎
	other := NewEngineWithSeed(config.Default(), 1)
	other.StartNewGame()
	require.True(t, other.LoadGame(data))

	loaded := other.GetState()
	assert.Equal(t, saved.Phase, loaded.Phase)
	assert.Equal(t, saved.Round, loaded.Round)
	assert.Equal(t, saved.RoundScore, loaded.RoundScore)
	assert.Equal(t, saved.Money, loaded.Money)
	assert.Equal(t, saved.HandsLeft, loaded.HandsLeft)
	assert.Equal(t, saved.DiscardsLeft, loaded.DiscardsLeft)

	require.Len(t, loaded.Hand, len(saved.Hand))
	for i := range saved.Hand {
		assert.Equal(t, saved.Hand[i].ID, loaded.Hand[i].ID)
	}
	require.Len(t, loaded.Jokers, 1)
	assert.Equal(t, saved.Jokers[0].ID, loaded.Jokers[0].ID)
	assert.Equal(t, saved.Jokers[0].TimesTriggered, loaded.Jokers[0].TimesTriggered)
	assert.Equal(t, saved.HandConfigs[evaluator.Pair].Level, loaded.HandConfigs[evaluator.Pair].Level)
	assert.Equal(t, saved.Stats.HandsPlayed, loaded.Stats.HandsPlayed)
}

func TestLoadGame_InvalidJSON(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()
	before := e.GetState()

	assert.False(t, e.LoadGame([]byte("{not json")))

	after := e.GetState()
	assert.Equal(t, before.Round, after.Round)
	assert.Equal(t, before.Money, after.Money)
	require.Len(t, after.Hand, len(before.Hand))
}

func TestLoadGame_UnknownPhase(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()

	assert.False(t, e.LoadGame([]byte(`{"phase":"teleporting"}`)))
	assert.Equal(t, PhasePlaying, e.GetState().Phase)
}

func TestLoadGame_MissingHandConfigs(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()

	// 出牌中的快照缺少计分参数，不可恢复
	assert.False(t, e.LoadGame([]byte(`{"phase":"playing","round":2}`)))
	assert.Equal(t, 1, e.GetState().Round)
}

func TestLoadGame_ContinuesPlayable(t *testing.T) {
	e := NewEngineWithSeed(config.Default(), 42)
	e.StartNewGame()
	data, err := e.SaveGame()
	require.NoError(t, err)

	other := NewEngineWithSeed(config.Default(), 99)
	require.True(t, other.LoadGame(data))

	// 载入后应当能正常继续出牌
	hand := other.GetState().Hand
	require.NotEmpty(t, hand)
	require.True(t, other.SelectCard(hand[0].ID))
	result, ok := other.PlayHand()
	require.True(t, ok)
	assert.Greater(t, result.FinalScore, 0)
}
