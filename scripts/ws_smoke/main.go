package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/gateway/wirechat"
	logpkg "github.com/vovakirdan/wirechat-client/internal/log"
)

// ws_smoke drives the client gateway against a running server: guest login,
// channel creation, listing, then one message round trip over the socket.
func main() {
	server := flag.String("server", "http://localhost:8080", "wirechat server URL")
	user := flag.String("user", "tester", "guest username")
	channel := flag.String("channel", "smoke", "name of the channel to create")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *server, *user, *channel, *text, *level); err != nil {
		log.Fatalf("smoke test failed: %v", err)
	}
	fmt.Println("smoke test passed")
}

func run(ctx context.Context, server, user, channel, text, level string) error {
	logger := logpkg.New(level, os.Stderr)

	client, err := wirechat.New(wirechat.Options{
		ServerURL:      server,
		RequestTimeout: 5 * time.Second,
		RetryMax:       1,
		Realtime:       true,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	login := core.NewLoginMediator(client, core.DefaultMinUsernameLength, logger)
	loginEvents := login.Subscribe()
	defer loginEvents.Close()

	login.SubmitLogin(ctx, user, nil)
	select {
	case ev := <-loginEvents.Events():
		if ev.Kind != core.LoginSuccess {
			return fmt.Errorf("login: %s %s", ev.Kind, ev.Error)
		}
	case <-ctx.Done():
		return fmt.Errorf("login: %w", ctx.Err())
	}
	fmt.Printf("Logged in as guest %s\n", user)

	channels := core.NewChannelMediator(client, logger)
	createEvents := channels.Subscribe()
	defer createEvents.Close()

	channels.SubmitChannelCreation(ctx, channel, core.DefaultChannelType)
	var created gateway.Channel
	select {
	case ev := <-createEvents.Events():
		if ev.Kind != core.CreateChannelSuccess {
			return fmt.Errorf("create channel: %s", ev.Error)
		}
		created = ev.Channel
	case <-ctx.Done():
		return fmt.Errorf("create channel: %w", ctx.Err())
	}
	fmt.Printf("Created channel %s\n", created.CID())

	listed, err := client.QueryChannels(gateway.ChannelFilter{Types: []string{created.Type}}).Execute(ctx)
	if err != nil {
		return fmt.Errorf("query channels: %w", err)
	}
	fmt.Printf("Listed %d channels\n", len(listed))

	sub := client.Subscribe()
	defer sub.Close()

	if _, err := client.WatchChannel(created.CID()).Execute(ctx); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if _, err := client.SendMessage(created.CID(), text).Execute(ctx); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	for {
		select {
		case ev := <-sub.Events():
			switch ev.Kind {
			case gateway.ChannelEventMessage:
				fmt.Printf("Message: cid=%s user=%s text=%q\n", ev.CID, ev.Message.User, ev.Message.Text)
				return nil
			case gateway.ChannelEventUserJoined:
				fmt.Printf("Join: cid=%s user=%s\n", ev.CID, ev.User)
			case gateway.ChannelEventError:
				return fmt.Errorf("server error: %w", ev.Err)
			}
		case <-ctx.Done():
			return fmt.Errorf("waiting for message: %w", ctx.Err())
		}
	}
}
