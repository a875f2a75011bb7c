package interact

import (
	"context"

	"page-helper/internal/domain/entity"
)

// AcceptCookieConsentIfPresent probes for the configured consent-accept
// control and clicks it when displayed. Absence, a dismissed banner or any
// click failure is logged only, so the call is safe to repeat.
func (i *Interactor) AcceptCookieConsentIfPresent(ctx context.Context) {
	loc := i.cfg.ConsentLocator
	if loc.Expr == "" {
		return
	}
	el, err := i.LocateVisible(ctx, loc, i.cfg.ConsentProbeTimeout)
	if err != nil {
		i.log.Debug("no cookie consent control displayed",
			"locator", loc.String(), "outcome", entity.OutcomeOf(err))
		return
	}
	if err := el.Click(); err != nil {
		i.log.Warn("cookie consent click failed",
			"locator", loc.String(), "error", err)
		return
	}
	i.log.Info("cookie consent accepted", "locator", loc.String())
}
