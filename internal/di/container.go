package di

import (
	"context"
	"fmt"

	"page-helper/internal/application/port/input"
	"page-helper/internal/application/port/output"
	"page-helper/internal/infrastructure/browser/rodsession"
	"page-helper/internal/infrastructure/logger"
	"page-helper/internal/usecase/interact"
)

type Container struct {
	Session    output.SessionPort
	Logger     output.LoggerPort
	Interactor input.Interactor
}

func NewContainer(ctx context.Context, env output.ConfigPort) (*Container, error) {
	logCfg := logger.DefaultConfig()
	if lvl := env.Get("LOG_LEVEL"); lvl != "" {
		logCfg.Level = lvl
	}
	logCfg.File = env.Get("LOG_FILE")
	log := logger.NewLoggerAdapter(logCfg)

	sessCfg := rodsession.DefaultConfig()
	sessCfg.Headless = env.GetBool("BROWSER_HEADLESS", sessCfg.Headless)
	sessCfg.NoSandbox = env.GetBool("BROWSER_NO_SANDBOX", sessCfg.NoSandbox)
	sessCfg.DevTools = env.GetBool("BROWSER_DEVTOOLS", sessCfg.DevTools)
	sessCfg.Trace = env.GetBool("BROWSER_TRACE", sessCfg.Trace)
	sessCfg.SlowMotion = env.GetDuration("BROWSER_SLOW_MOTION", sessCfg.SlowMotion)
	sessCfg.IdleWait = env.GetDuration("BROWSER_IDLE_WAIT", sessCfg.IdleWait)

	session, err := rodsession.New(ctx, sessCfg)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create browser session: %w", err)
	}

	intCfg := interact.DefaultConfig()
	intCfg.LocateTimeout = env.GetDuration("LOCATE_TIMEOUT", intCfg.LocateTimeout)
	intCfg.PollInterval = env.GetDuration("POLL_INTERVAL", intCfg.PollInterval)
	intCfg.SafeClickRetries = env.GetInt("SAFE_CLICK_RETRIES", intCfg.SafeClickRetries)
	intCfg.SafeClickDelay = env.GetDuration("SAFE_CLICK_DELAY", intCfg.SafeClickDelay)
	intCfg.ForceClickRetries = env.GetInt("FORCE_CLICK_RETRIES", intCfg.ForceClickRetries)
	intCfg.ForceClickDelay = env.GetDuration("FORCE_CLICK_DELAY", intCfg.ForceClickDelay)
	intCfg.OverlayTimeout = env.GetDuration("OVERLAY_TIMEOUT", intCfg.OverlayTimeout)
	intCfg.ConsentProbeTimeout = env.GetDuration("CONSENT_PROBE_TIMEOUT", intCfg.ConsentProbeTimeout)

	uc := interact.New(session, log, intCfg)

	return &Container{
		Session:    session,
		Logger:     log,
		Interactor: uc,
	}, nil
}

func (c *Container) Close() {
	if c.Session != nil {
		c.Session.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}
