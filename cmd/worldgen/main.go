package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/metrics"
	"github.com/annel0/voxel-world/internal/physics"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/mesh"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $VOXEL_CONFIG)")
	seed := flag.Int64("seed", 0, "сид мира, перекрывает конфигурацию")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	if err := setupLogging(cfg.Logging); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	// === ТАБЛИЦА БЛОКОВ ===
	table := block.DefaultTable()
	if cfg.BlocksFile != "" {
		table, err = block.LoadTableFile(cfg.BlocksFile)
		if err != nil {
			logging.Error("❌ Ошибка загрузки таблицы блоков: %v", err)
			os.Exit(1)
		}
	}
	logging.Info("Таблица блоков: %d типов", table.Len())

	// === МЕТРИКИ ===
	m := metrics.NewWorld(nil)
	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("❌ Ошибка HTTP сервера метрик: %v", err)
			}
		}()
		logging.Info("📊 Метрики: http://localhost%s/metrics", cfg.Metrics.Addr)
	}

	// === ГЕНЕРАЦИЯ ===
	logging.Info("🌍 Генерация мира: сид=%d, радиус=%d, регионы по Y [%d, %d)",
		cfg.World.Seed, cfg.World.Radius, cfg.World.MinRegionY, cfg.World.MaxRegionY)

	uploader := mesh.NewMemoryUploader()
	w := world.New(cfg.World, table, uploader, world.WithMetrics(m))

	faces := 0
	for _, r := range w.Renderables() {
		faces += r.Faces
	}
	logging.Info("✅ Мир %s: регионов=%d, с сеткой=%d, граней=%d, буферов=%d",
		w.ID(), len(w.Regions()), len(w.Renderables()), faces, uploader.Live())
	logging.Info("Регионов с отложенными изменениями: %d", len(w.PendingRegions()))

	player := physics.NewBoxCollider(1, 2, 1)
	if pos, ok := w.FindSpawn(0, 0, player); ok {
		logging.Info("Точка появления: %v", pos)
	} else {
		logging.Warn("Не найдено места для появления в столбце (0, 0)")
	}

	if srv == nil {
		return
	}

	// Метрики доступны до получения сигнала завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("❌ Ошибка остановки сервера метрик: %v", err)
	}
}

func setupLogging(c config.LoggingConfig) error {
	consoleLevel, err := logging.ParseLevel(c.ConsoleLevel)
	if err != nil {
		return err
	}
	fileLevel, err := logging.ParseLevel(c.FileLevel)
	if err != nil {
		return err
	}
	logging.Configure(logging.Settings{
		Dir:          c.Dir,
		ConsoleLevel: consoleLevel,
		FileLevel:    fileLevel,
	})
	return logging.InitDefaultLogger("worldgen")
}
