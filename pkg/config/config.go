package config

import "github.com/amirasaad/dodopayments-go/pkg/endpoint"

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[dodo]"`
}

//revive:disable
type DodoPayments struct {
	ApiKey      string `envconfig:"API_KEY"`
	Environment string `envconfig:"ENVIRONMENT" default:"live_mode"`
	BaseURL     string `envconfig:"BASE_URL"`
}

//revive:enable

// Endpoint converts the settings into an endpoint config. The result is not
// validated.
func (d *DodoPayments) Endpoint() endpoint.Config {
	return endpoint.Config{
		BearerToken: d.ApiKey,
		Environment: endpoint.Environment(d.Environment),
		BaseURL:     d.BaseURL,
	}
}

type App struct {
	Env          string        `envconfig:"APP_ENV" default:"development"`
	Log          *Log          `envconfig:"LOG"`
	DodoPayments *DodoPayments `envconfig:"DODO_PAYMENTS"`
}
