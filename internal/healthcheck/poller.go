// Package healthcheck polls the RStudio sign-in page until the cluster
// answers, with a bounded attempt budget.
package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// AddressResolver looks up the DNS name of the ingress public IP.
// Satisfied by azure.Client.
type AddressResolver interface {
	PublicIPFQDN(ctx context.Context, resourceGroup, name string) (string, error)
}

// Poller checks a fixed HTTP path at fixed intervals until it answers
// with the expected status or the attempt budget runs out. Attempts are
// independent: no backoff growth, no state besides the counter.
type Poller struct {
	Resolver AddressResolver
	Observer provisioning.Observer

	ResourceGroup  string
	PublicIPName   string
	Path           string
	ExpectedStatus int
	MaxAttempts    int
	Interval       time.Duration

	// Client bounds each request; a hung connection must not stall
	// the loop past its timeout.
	Client *http.Client
}

// TimeoutError reports an exhausted attempt budget.
type TimeoutError struct {
	URL      string
	Attempts int
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("endpoint %s not ready after %d attempts", e.URL, e.Attempts)
}

// NewPoller builds a poller from the deployment configuration.
func NewPoller(resolver AddressResolver, cfg *config.Config, observer provisioning.Observer) *Poller {
	return &Poller{
		Resolver:       resolver,
		Observer:       observer,
		ResourceGroup:  cfg.NetworkResourceGroup,
		PublicIPName:   cfg.PublicIPName,
		Path:           cfg.Health.Path,
		ExpectedStatus: cfg.Health.ExpectedStatus,
		MaxAttempts:    cfg.Health.MaxAttempts,
		Interval:       cfg.Health.Interval(),
		Client:         &http.Client{Timeout: cfg.Health.RequestTimeout()},
	}
}

// Wait blocks until the endpoint is ready, the budget is exhausted, or
// the context is cancelled.
//
// The DNS name is resolved once up front. A public IP without a DNS
// label is a provisioning defect, so that failure is immediate and no
// HTTP request is ever made.
func (p *Poller) Wait(ctx context.Context) error {
	fqdn, err := p.Resolver.PublicIPFQDN(ctx, p.ResourceGroup, p.PublicIPName)
	if err != nil {
		return err
	}

	// The RStudio ingress terminates plain HTTP; only the status line
	// matters here.
	url := "http://" + fqdn + p.Path
	p.Observer.Infof("Waiting for %s (max %d attempts, %v apart)", url, p.MaxAttempts, p.Interval)

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		status, err := p.probe(ctx, url)
		if err == nil && status == p.ExpectedStatus {
			p.Observer.Infof("RStudio is ready at %s (attempt %d)", url, attempt)
			return nil
		}

		if err != nil {
			p.Observer.Warnf("Attempt %d/%d: %v", attempt, p.MaxAttempts, err)
		} else {
			p.Observer.Warnf("Attempt %d/%d: got HTTP %d, want %d", attempt, p.MaxAttempts, status, p.ExpectedStatus)
		}

		if attempt < p.MaxAttempts {
			if err := provisioning.Sleep(ctx, p.Interval); err != nil {
				return err
			}
		}
	}

	return &TimeoutError{URL: url, Attempts: p.MaxAttempts}
}

// probe issues one GET and reports only the status code.
func (p *Poller) probe(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
