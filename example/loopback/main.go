package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/assert"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
	"github.com/oomph-ac/playersim/player/component"
	"github.com/oomph-ac/playersim/session"
	"github.com/oomph-ac/playersim/settings"
	"github.com/oomph-ac/playersim/simulation"
	"github.com/oomph-ac/playersim/transport"
	oworld "github.com/oomph-ac/playersim/world"
	"github.com/sirupsen/logrus"
)

const entityID = 1

// The following program runs both sides of the simulation in one process: an authoritative player walks
// across a stone floor while the presentation side mirrors it through the configured transport.
func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	conf, err := settings.Load(*configPath)
	if err != nil {
		logger.Fatalf("unable to load settings: %v", err)
	}
	logger.SetLevel(conf.Level())
	assert.SetStrict(conf.Simulation.Strict)

	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         conf.Sentry.DSN,
			Environment: conf.Sentry.Environment,
		}); err != nil {
			logger.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if conf.Debug.StatsView {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Debug.StatsViewAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	authConn, presConn, err := connect(ctx, logger, conf)
	if err != nil {
		logger.Fatalf("unable to connect: %v", err)
	}

	w := oworld.New()
	for x := -64; x <= 64; x++ {
		for z := -4; z <= 4; z++ {
			w.SetBlock(df_cube.Pos{x, 0, z}, block.Stone{}, nil)
		}
	}

	authLoop := simulation.NewLoop(logger, conf.Simulation.TickRate)
	presLoop := simulation.NewLoop(logger, conf.Simulation.TickRate)
	authSession := session.New(logger, authConn, authLoop.Player)
	presSession := session.New(logger, presConn, presLoop.Player)

	auth := player.New(player.Config{
		RuntimeID: entityID,
		Name:      "walker",
		Side:      player.SideAuthoritative,
		Profile:   player.DefaultProfile(),
		World:     w,
		Sender:    authSession.Sender(),
		Log:       logger,
	})
	auth.AddComponent(&script{p: auth})
	component.Register(auth)
	auth.Handle(footstepLogger{})
	authLoop.Add(auth)

	pres := player.New(player.Config{
		RuntimeID: entityID,
		UUID:      auth.UUID(),
		Name:      "walker",
		Side:      player.SidePresentation,
		Profile:   player.DefaultProfile(),
		World:     w,
		Sender:    presSession.Sender(),
		Log:       logger,
	})
	pres.SetPreferences(player.Preferences{
		ViewBobbing: conf.Presentation.ViewBobbing,
		FirstPerson: conf.Presentation.FirstPerson,
	})
	component.Register(pres)
	presLoop.Add(pres)

	for _, s := range []*session.Session{authSession, presSession} {
		go func() {
			if err := s.Serve(ctx); err != nil {
				logger.Errorf("session stopped: %v", err)
				cancel()
			}
		}()
	}
	presDone := make(chan struct{})
	go func() {
		presLoop.Run(ctx)
		close(presDone)
	}()
	authLoop.Run(ctx)
	<-presDone

	authLoop.Remove(entityID)
	presLoop.Remove(entityID)
	_ = authSession.Close()
	_ = presSession.Close()
}

// connect returns the connections of the authoritative and the presentation side.
func connect(ctx context.Context, log *logrus.Logger, conf settings.Settings) (transport.Conn, transport.Conn, error) {
	if conf.Network.Transport == settings.TransportPipe {
		a, b := transport.Pipe()
		return a, b, nil
	}

	accepted := make(chan *transport.WSConn, 1)
	srv := &http.Server{
		Addr: conf.Network.Address,
		Handler: transport.NewHandler(log, func(conn *transport.WSConn) {
			accepted <- conn
		}),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("websocket server stopped: %v", err)
		}
	}()
	context.AfterFunc(ctx, func() {
		_ = srv.Close()
	})

	var (
		client *transport.WSConn
		err    error
	)
	for range 10 {
		if client, err = transport.Dial(ctx, "ws://"+conf.Network.Address); err == nil {
			break
		}
		time.Sleep(time.Millisecond * 100)
	}
	if err != nil {
		return nil, nil, err
	}
	select {
	case server := <-accepted:
		return server, client, nil
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
}

// script stands in for the physics and input of the authoritative player: it walks back and forth and
// runs through a death and revival.
type script struct {
	p     *player.Player
	ticks int
}

func (*script) Name() string { return "script" }

func (s *script) Tick(float32) {
	s.ticks++
	body, controls := s.p.Body(), s.p.Controls()
	body.OnGround = true

	switch s.ticks % 400 {
	case 100:
		s.p.Emote("wave")
	case 200:
		s.p.Die("demo")
	case 240:
		s.p.Revive()
	case 300:
		s.p.Teleport(mgl32.Vec3{0, 1, 0.5})
	}

	controls.TriesToMove = s.p.Alive()
	controls.Sprint = s.ticks%400 > 300
	if !controls.TriesToMove {
		body.Motion = mgl32.Vec3{}
		return
	}
	speed := float32(0.1)
	if controls.Sprint {
		speed *= 1.3
	}
	if (s.ticks/50)%2 == 1 {
		speed = -speed
	}
	body.Motion = mgl32.Vec3{speed, 0, 0}
	body.Position = body.Position.Add(body.Motion)
	body.Yaw = game.Pi / 2
}

type footstepLogger struct {
	player.NopHandler
}

func (footstepLogger) HandleFootStep(p *player.Player, b world.Block) {
	p.Log().Debugf("footstep on %s at %v", oworld.BlockName(b), p.Position())
}

func (footstepLogger) HandleImpact(p *player.Player, motionY float32) {
	p.Log().Infof("landed with a vertical motion of %.2f", motionY)
}
