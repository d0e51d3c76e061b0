package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Amazing-duo/Balatro-DEMO/internal/config"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/game"
)

// 简单控制台演示：自动选最优牌打完一局
func main() {
	seed := flag.Int64("seed", 2024, "随机种子")
	configPath := flag.String("config", "", "平衡参数YAML，留空用默认值")
	verbose := flag.Bool("v", false, "输出引擎日志")
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║       小丑扑克 - 控制台演示版       ║")
	fmt.Println("╚══════════════════════════════════════╝")
	fmt.Println()

	balance := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			os.Exit(1)
		}
		balance = loaded
	}

	engine := game.NewEngineWithSeed(balance, *seed)
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			defer logger.Sync()
			engine.SetLogger(logger)
		}
	}

	fmt.Println("游戏配置:")
	fmt.Printf("  目标分数: 第1关 %d，每关 +%d\n", balance.BaseAnteScore, balance.ScoreIncrement)
	fmt.Printf("  出牌次数: %d  弃牌次数: %d  手牌: %d张\n",
		balance.InitialHands, balance.InitialDiscards, balance.HandSize)
	fmt.Println()

	engine.StartNewGame()
	playGame(engine)

	fmt.Println("\n游戏演示完成！")
}

// 自动打完一局：每次出推荐的最优牌，过关后买得起就买
func playGame(engine *game.Engine) {
	for !engine.IsGameOver() {
		state := engine.GetState()
		switch state.Phase {
		case game.PhasePlaying:
			playRound(engine)
		case game.PhaseShop:
			visitShop(engine)
		default:
			return
		}
	}

	state := engine.GetState()
	fmt.Println()
	if state.Phase == game.PhaseGameCompleted {
		fmt.Println("========== 恭喜通关 ==========")
	} else {
		fmt.Printf("========== 第%d关失败 ==========\n", state.Round)
		fmt.Printf("最终得分: %d / %d\n", state.RoundScore, state.TargetScore)
	}
	fmt.Println()
	fmt.Print(state.Stats.Report())
}

// 打一次牌：用推荐选牌
func playRound(engine *game.Engine) {
	state := engine.GetState()
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("第 %d 关  目标 %d  当前 %d  出牌×%d\n",
		state.Round, state.TargetScore, state.RoundScore, state.HandsLeft)

	fmt.Print("【手牌】: ")
	showCards(engine)

	suggestion, ok := engine.BestHandSuggestion()
	if !ok || !engine.ApplyAdvice(suggestion.CardIDs) {
		// 退化：选第一张
		hand := engine.GetState().Hand
		engine.ClearSelection()
		engine.SelectCard(hand[0].ID)
	} else {
		fmt.Printf("【推荐】: %s（预计 %d 分）\n", suggestion.HandType.Name(), suggestion.Score)
	}

	result, played := engine.PlayHand()
	if !played {
		fmt.Println("出牌失败")
		os.Exit(1)
	}

	fmt.Printf("【出牌】: %s  筹码 %d × 倍数 %d = %d 分\n",
		result.HandType.Name(), result.Chips, result.Multiplier, result.FinalScore)
	for _, effect := range result.JokerEffects {
		fmt.Printf("    %s: %s\n", effect.JokerName, effect.Description)
	}
}

// 逛商店：买得起就从便宜的开始买，然后进下一关
func visitShop(engine *game.Engine) {
	state := engine.GetState()
	fmt.Println("\n---------- 商店 ----------")
	fmt.Printf("金钱: %d\n", state.Money)
	for i, j := range state.Shop {
		fmt.Printf("  [%d] %s (%s) %s - %d金\n",
			i+1, j.Name, j.Rarity.Name(), j.Description, j.Cost)
	}

	// 反复尝试买第一件买得起的
	for {
		state = engine.GetState()
		bought := false
		for i := range state.Shop {
			if engine.BuyShopItem(i) {
				fmt.Printf("  购入: %s\n", state.Shop[i].Name)
				bought = true
				break
			}
		}
		if !bought {
			break
		}
	}

	engine.ExitShop()
	fmt.Println("进入下一关…")
	fmt.Println()
}

// 显示当前手牌
func showCards(engine *game.Engine) {
	hand := engine.GetState().Hand
	for i, c := range hand {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(c.String())
	}
	fmt.Println()
}
