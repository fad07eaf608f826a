package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/kelm/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Info("collated", slog.String("artifact", "Main.elm"))
	logger.Debug("hidden below the default level")

	// Output:
	// level=INFO msg=collated artifact=Main.elm
}

func Example_context() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelDebug),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.With(slog.String("lang", "css")).
		DebugContext(context.Background(), "block", slog.Int("index", 2))

	// Output:
	// {"level":"DEBUG","msg":"block","lang":"css","index":2}
}
