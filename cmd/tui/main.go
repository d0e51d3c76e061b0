package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Amazing-duo/Balatro-DEMO/internal/config"
	"github.com/Amazing-duo/Balatro-DEMO/pkg/game"
	"github.com/Amazing-duo/Balatro-DEMO/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "随机种子，0表示取当前时间")
	configPath := flag.String("config", "", "平衡参数YAML，留空用默认值")
	logPath := flag.String("log", "", "日志文件路径，留空不记日志")
	flag.Parse()

	balance := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
		balance = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	engine := game.NewEngineWithSeed(balance, *seed)

	// TUI占用终端，日志只写文件
	if *logPath != "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{*logPath}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	program := tea.NewProgram(ui.NewModel(engine), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "程序异常退出: %v\n", err)
		os.Exit(1)
	}
}
