// Command lumen is a small smoke client: it discovers the backend, lists
// the topic catalogue and prints each topic with its progress for the
// given user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/derived"
	"github.com/lumenlearn/lumen-go/gateway"
	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/resolver"
	"github.com/lumenlearn/lumen-go/session"
	"github.com/lumenlearn/lumen-go/synthetic"
)

func main() {
	userID := flag.Int("user", 2, "user id for progress lookups")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.New(cfg.Debug)
	res := resolver.FromConfig(cfg, logger)
	gw := gateway.New(res, synthetic.NewProvider(), session.Static(os.Getenv("API_TOKEN")), logger)
	tracker := derived.NewProgressTracker(gw)

	ctx := context.Background()
	verdict := res.Resolve(ctx)
	if verdict.Reachable {
		fmt.Printf("backend: %s\n", verdict.Origin)
	} else {
		fmt.Println("backend: unreachable, showing demo data")
	}

	topics, err := gw.ListTopics(ctx)
	if err != nil {
		log.Fatalf("Error listing topics: %v", err)
	}

	for _, topic := range topics {
		progress, err := tracker.Load(ctx, *userID, topic.ID)
		if err != nil {
			logger.Printf("progress for topic %d unavailable: %v", topic.ID, err)
		}
		fmt.Printf("%3d  %-35s %-12s %3d%% (%d/%d lessons)\n",
			topic.ID, topic.Title, topic.Difficulty,
			progress.Percentage, progress.Completed, progress.Total)
	}
}
